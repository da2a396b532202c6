package draw

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/medxops/grand/internal/render"
	"github.com/medxops/grand/internal/telemetry"
	"github.com/medxops/grand/pkg/grand"
)

// Summary describes a finished run.
type Summary struct {
	RunID   string
	Draws   int64
	Workers int
	Elapsed time.Duration
}

type instruments struct {
	draws  metric.Int64Counter
	values metric.Float64Histogram
}

func newInstruments(m metric.Meter) (*instruments, error) {
	draws, err := m.Int64Counter("grand.draws",
		metric.WithUnit("{draw}"),
		metric.WithDescription("Number of values drawn"),
	)
	if err != nil {
		return nil, fmt.Errorf("create draws counter: %w", err)
	}
	values, err := m.Float64Histogram("grand.draw.value",
		metric.WithDescription("Distribution of drawn numeric values"),
	)
	if err != nil {
		return nil, fmt.Errorf("create value histogram: %w", err)
	}
	return &instruments{draws: draws, values: values}, nil
}

// lockedEncoder serialises writes from all workers.
type lockedEncoder struct {
	mu  sync.Mutex
	enc render.Encoder
}

func (l *lockedEncoder) Encode(r render.Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enc.Encode(r)
}

type worker struct {
	id     int
	cfg    *Config
	source *grand.Source
	limit  rate.Limit
	out    *lockedEncoder
	tracer trace.Tracer
	inst   *instruments
	attrs  metric.MeasurementOption
	logger *zap.Logger
	drawn  int64
}

// Run starts c.Workers workers and blocks until each has drawn c.Count
// values, c.TotalDuration has passed or ctx is done.
func Run(ctx context.Context, c *Config, enc render.Encoder, tel *telemetry.Telemetry, logger *zap.Logger) (*Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tel == nil {
		tel = telemetry.Noop()
	}
	if err := c.Validate(); err != nil {
		logger.Error("invalid config", zap.Error(err))
		return nil, err
	}

	if c.Count == 0 && c.TotalDuration == 0 {
		logger.Warn("no count or duration specified, drawing until interrupted")
	}

	limit := rate.Limit(c.Rate)
	if c.Rate == 0 {
		limit = rate.Inf
		logger.Debug("draws aren't being throttled")
	} else {
		logger.Info("draws are limited", zap.Float64("per-second", float64(limit)))
	}

	var cancel context.CancelFunc
	if c.TotalDuration > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.TotalDuration)
		defer cancel()
	}

	inst, err := newInstruments(tel.Meter())
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger = logger.With(zap.String("run", runID))
	out := &lockedEncoder{enc: enc}
	start := time.Now()

	var (
		wg    sync.WaitGroup
		total atomic.Int64
		errs  = make([]error, c.Workers)
	)
	for i := 0; i < c.Workers; i++ {
		w := &worker{
			id:     i,
			cfg:    c,
			source: newSource(c, i),
			limit:  limit,
			out:    out,
			tracer: tel.Tracer(),
			inst:   inst,
			attrs: metric.WithAttributes(
				attribute.String("kind", string(c.Kind)),
				attribute.Int("worker", i),
			),
			logger: logger.With(zap.Int("worker", i)),
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[w.id] = w.run(ctx, runID)
			total.Add(w.drawn)
		}()
	}
	wg.Wait()

	s := &Summary{
		RunID:   runID,
		Draws:   total.Load(),
		Workers: c.Workers,
		Elapsed: time.Since(start),
	}
	emitSummary(context.WithoutCancel(ctx), tel.Logger(), c, s)
	logger.Info("draws completed",
		zap.Int64("draws", s.Draws),
		zap.Int("workers", s.Workers),
		zap.Duration("elapsed", s.Elapsed),
	)
	return s, errors.Join(errs...)
}

func newSource(c *Config, i int) *grand.Source {
	if c.HasSeed {
		return grand.NewSeeded(c.Seed + int64(i))
	}
	return grand.New()
}

func (w *worker) run(ctx context.Context, runID string) error {
	ctx, span := w.tracer.Start(ctx, "draw.worker", trace.WithAttributes(
		attribute.String("run.id", runID),
		attribute.String("kind", string(w.cfg.Kind)),
		attribute.Int("worker", w.id),
	))
	defer span.End()

	limiter := rate.NewLimiter(w.limit, 1)
	for i := 0; w.cfg.Count == 0 || i < w.cfg.Count; i++ {
		if err := limiter.Wait(ctx); err != nil {
			w.logger.Debug("stopping worker", zap.Int("index", i), zap.Error(err))
			break
		}

		value, numeric, ok := w.draw()
		if err := w.out.Encode(render.Record{Worker: w.id, Index: i, Value: value}); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "encode failed")
			span.SetAttributes(attribute.Int64("draws", w.drawn))
			return fmt.Errorf("worker %d: encode draw %d: %w", w.id, i, err)
		}
		w.drawn++
		w.inst.draws.Add(ctx, 1, w.attrs)
		if ok {
			w.inst.values.Record(ctx, numeric, w.attrs)
		}
	}

	span.SetAttributes(attribute.Int64("draws", w.drawn))
	w.logger.Debug("worker completed", zap.Int64("draws", w.drawn))
	return nil
}

// draw returns the next value for the configured kind and, for numeric
// kinds, its value as a float64.
func (w *worker) draw() (value any, numeric float64, ok bool) {
	s := w.source
	switch w.cfg.Kind {
	case KindInt:
		v := s.Int(w.cfg.N)
		return v, float64(v), true
	case KindDouble:
		v := s.Double(w.cfg.Bound)
		return v, v, true
	case KindBool:
		return s.Bool(w.cfg.Probability), 0, false
	case KindWord:
		v := s.Uint32()
		return v, float64(v), true
	default:
		items := append([]string(nil), w.cfg.Items...)
		grand.Shuffle(s, items)
		return items, 0, false
	}
}

func emitSummary(ctx context.Context, l otellog.Logger, c *Config, s *Summary) {
	var rec otellog.Record
	rec.SetTimestamp(time.Now())
	rec.SetSeverity(otellog.SeverityInfo)
	rec.SetSeverityText("INFO")
	rec.SetBody(otellog.StringValue("draws completed"))
	rec.AddAttributes(
		otellog.String("run.id", s.RunID),
		otellog.String("kind", string(c.Kind)),
		otellog.Int64("draws", s.Draws),
		otellog.Int("workers", s.Workers),
		otellog.Int64("elapsed_ms", s.Elapsed.Milliseconds()),
	)
	l.Emit(ctx, rec)
}
