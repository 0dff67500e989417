package arma

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sartorproj/goarma/timeseries"
)

// TrainAll trains one ARMA model of the given order per series, running
// independent series concurrently. The returned models are in input order.
// The first failure cancels the remaining work and is returned.
func TrainAll(ctx context.Context, order Order, series []*timeseries.Series, opts ...Option) ([]*Model, error) {
	if _, err := New(order.P, order.Q, opts...); err != nil {
		return nil, err
	}
	for i, s := range series {
		if s == nil {
			return nil, fmt.Errorf("series %d is nil: %w", i, timeseries.ErrTooShort)
		}
	}

	models := make([]*Model, len(series))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, s := range series {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := New(order.P, order.Q, opts...)
			if err != nil {
				return err
			}
			if err := m.Train(s); err != nil {
				return fmt.Errorf("series %d %q: %w", i, s.Name, err)
			}
			models[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return models, nil
}
