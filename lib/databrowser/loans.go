package databrowser

import (
	"context"

	"go.opentelemetry.io/otel/codes"
)

// GetLoans fetches individual loan level records as CSV. The upstream
// endpoint requires at least one action or race filter.
func (c *Client) GetLoans(ctx context.Context, q Query) (Table, error) {
	ctx, span := tracer.Start(ctx, "client:GetLoans")
	defer span.End()

	body, err := c.get(ctx, "/view/csv", q, true)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch loans")
		return Table{}, err
	}

	result, err := tableFromCSV(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode loans csv")
		return Table{}, err
	}
	return result, nil
}
