package logs

import (
	"context"
	"fmt"
)

type Span string

type spanKey struct{}

var SpanKey spanKey

func SpanFrom(ctx context.Context) Span {
	v, _ := ctx.Value(SpanKey).(Span)
	return v
}

// WrapSpan annotates err with the span of ctx, so a failure printed far from
// its run can be matched with the run's log records.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span := SpanFrom(ctx)
	if span == "" {
		return err
	}
	return fmt.Errorf("%w (span %s)", err, span)
}
