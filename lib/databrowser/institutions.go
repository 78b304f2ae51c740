package databrowser

import (
	"context"

	"go.opentelemetry.io/otel/codes"
)

// GetInstitutions fetches the institutions that filed HMDA data
// matching the query. Action and race filters are optional here.
func (c *Client) GetInstitutions(ctx context.Context, q Query) (Table, error) {
	ctx, span := tracer.Start(ctx, "client:GetInstitutions")
	defer span.End()

	body, err := c.get(ctx, "/view/filers", q, false)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch institutions")
		return Table{}, err
	}

	result, err := tableFromObjects("institutions", body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode institutions")
		return Table{}, err
	}
	return result, nil
}
