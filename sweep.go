// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/petenewcomb/stepsched-go"

// Sweep simulates g under each of cfgs and returns the schedules in the same
// order as cfgs. At most limit simulations run concurrently; a limit of zero
// or less means no limit. Each simulation owns its own state and g is never
// modified, so the schedules are identical to those that calling [Simulate]
// on each configuration in turn would produce.
//
// Sweep stops launching simulations once ctx is canceled or any simulation
// fails, and returns the first error encountered. The sweep and each
// simulation are recorded as OpenTelemetry spans; see [WithTracerProvider].
func Sweep(ctx context.Context, g *Graph, cfgs []Config, limit int, opts ...Option) ([]*Schedule, error) {
	o := newOptions(opts)
	tracer := o.tracerProvider.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "stepsched.Sweep")
	defer span.End()
	span.SetAttributes(
		attribute.Int("stepsched.steps", g.Len()),
		attribute.Int("stepsched.configs", len(cfgs)),
	)

	schedules := make([]*Schedule, len(cfgs))
	group, groupCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}
	for i, cfg := range cfgs {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			_, runSpan := tracer.Start(groupCtx, "stepsched.Simulate")
			defer runSpan.End()
			runSpan.SetAttributes(
				attribute.Int("stepsched.index", i),
				attribute.Int("stepsched.workers", cfg.Workers),
				attribute.Int("stepsched.base_duration", cfg.BaseDuration),
			)

			s, err := Simulate(g, cfg, WithLogger(o.logger.With(zap.Int("config", i))))
			if err != nil {
				runSpan.RecordError(err)
				runSpan.SetStatus(codes.Error, err.Error())
				return fmt.Errorf("config %d: %w", i, err)
			}
			runSpan.SetAttributes(attribute.Int("stepsched.makespan", s.Makespan))
			schedules[i] = s
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.logger.Debug("sweep failed", zap.Error(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return schedules, nil
}
