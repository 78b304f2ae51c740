package databrowser

import (
	"context"

	"go.opentelemetry.io/otel/codes"
)

// GetAggregations fetches aggregate loan level statistics. The upstream
// endpoint requires at least one action or race filter.
func (c *Client) GetAggregations(ctx context.Context, q Query) (Table, error) {
	ctx, span := tracer.Start(ctx, "client:GetAggregations")
	defer span.End()

	body, err := c.get(ctx, "/view/aggregations", q, true)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch aggregations")
		return Table{}, err
	}

	result, err := tableFromObjects("aggregations", body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode aggregations")
		return Table{}, err
	}
	return result, nil
}
