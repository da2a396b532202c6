package bench

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
	gometrics "github.com/rcrowley/go-metrics"
	"go.uber.org/zap"

	"github.com/medxops/grand/internal/entropy"
	"github.com/medxops/grand/pkg/grand"
)

// markBatch is how many draws a worker makes between meter updates and
// context checks.
const markBatch = 4096

// Sample is a snapshot of the draw meter.
type Sample struct {
	Time     time.Time
	Count    int64
	RateMean float64
	Rate1    float64
	Rate5    float64
	Rate15   float64
}

// Report is the result of a benchmark run.
type Report struct {
	Seed    int64
	Bound   int
	Draws   int64
	Elapsed time.Duration
	Counts  []int64
	Samples []Sample

	ChiSquare        float64
	DegreesOfFreedom int

	FloatMean   float64
	FloatStdDev float64
}

// Throughput returns draws per second over the whole run.
func (r *Report) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Draws) / r.Elapsed.Seconds()
}

// Run draws c.Count values of Int(c.Bound) on each of c.Workers sources
// and reports throughput and bucket uniformity.
func Run(ctx context.Context, c *Config, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := c.Validate(); err != nil {
		logger.Error("invalid config", zap.Error(err))
		return nil, err
	}

	seed := c.Seed
	if !c.HasSeed {
		var err error
		if seed, err = entropy.Seed64(); err != nil {
			return nil, fmt.Errorf("draw benchmark seed: %w", err)
		}
		logger.Info("using random seed", zap.Int64("seed", seed))
	}

	meter := gometrics.NewMeter()
	defer meter.Stop()

	r := &Report{Seed: seed, Bound: c.Bound}
	snapshot := func(t time.Time) Sample {
		m := meter.Snapshot()
		return Sample{Time: t, Count: m.Count(), RateMean: m.RateMean(), Rate1: m.Rate1(), Rate5: m.Rate5(), Rate15: m.Rate15()}
	}

	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()
	done := make(chan struct{})
	var tickerWG sync.WaitGroup
	tickerWG.Add(1)
	go func() {
		defer tickerWG.Done()
		for {
			select {
			case t := <-ticker.C:
				s := snapshot(t)
				logger.Info("progress",
					zap.Int64("draws", s.Count),
					zap.Float64("mean_rate", s.RateMean),
					zap.Float64("m1_rate", s.Rate1),
				)
				r.Samples = append(r.Samples, s)
			case <-done:
				return
			}
		}
	}()

	counts := make([][]int64, c.Workers)
	floats := make([][]float64, c.Workers)
	start := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < c.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counts[i], floats[i] = work(ctx, grand.NewSeeded(seed+int64(i)), c, meter)
		}()
	}
	wg.Wait()
	r.Elapsed = time.Since(start)

	close(done)
	tickerWG.Wait()
	r.Samples = append(r.Samples, snapshot(time.Now()))

	r.Counts = make([]int64, c.Bound)
	for _, wc := range counts {
		for b, n := range wc {
			r.Counts[b] += n
			r.Draws += n
		}
	}
	r.ChiSquare, r.DegreesOfFreedom = ChiSquare(r.Counts)

	var sample stats.Float64Data
	for _, f := range floats {
		sample = append(sample, f...)
	}
	if len(sample) > 0 {
		var err error
		if r.FloatMean, err = stats.Mean(sample); err != nil {
			return nil, fmt.Errorf("float sample mean: %w", err)
		}
		if r.FloatStdDev, err = stats.StandardDeviation(sample); err != nil {
			return nil, fmt.Errorf("float sample standard deviation: %w", err)
		}
	}

	logger.Info("benchmark completed",
		zap.Int64("draws", r.Draws),
		zap.Duration("elapsed", r.Elapsed),
		zap.Float64("chi_square", r.ChiSquare),
		zap.Int("dof", r.DegreesOfFreedom),
	)
	return r, ctx.Err()
}

func work(ctx context.Context, s *grand.Source, c *Config, meter gometrics.Meter) ([]int64, []float64) {
	counts := make([]int64, c.Bound)
	floats := make([]float64, 0, min(c.FloatSamples, c.Count))
	pending := int64(0)
	for j := 0; j < c.Count; j++ {
		counts[s.Int(c.Bound)]++
		if j < c.FloatSamples {
			floats = append(floats, s.Float64())
		}
		pending++
		if pending == markBatch {
			meter.Mark(pending)
			pending = 0
			if ctx.Err() != nil {
				break
			}
		}
	}
	meter.Mark(pending)
	return counts, floats
}

// ChiSquare returns Pearson's chi-square statistic of counts against a
// uniform distribution, and its degrees of freedom.
func ChiSquare(counts []int64) (float64, int) {
	if len(counts) < 2 {
		return 0, 0
	}
	var total int64
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return 0, len(counts) - 1
	}
	expected := float64(total) / float64(len(counts))
	chi := 0.0
	for _, n := range counts {
		d := float64(n) - expected
		chi += d * d / expected
	}
	return chi, len(counts) - 1
}

// WriteCSV writes the throughput samples in the same columns as the
// meter: time, count, mean rate and the 1, 5 and 15 minute rates.
func (r *Report) WriteCSV(w io.Writer) error {
	records := [][]string{{"t", "count", "mean_rate", "m1_rate", "m5_rate", "m15_rate"}}
	for _, s := range r.Samples {
		records = append(records, []string{
			fmt.Sprintf("%d", s.Time.Unix()),
			fmt.Sprintf("%d", s.Count),
			fmt.Sprintf("%.6f", s.RateMean),
			fmt.Sprintf("%.6f", s.Rate1),
			fmt.Sprintf("%.6f", s.Rate5),
			fmt.Sprintf("%.6f", s.Rate15),
		})
	}
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("write benchmark csv: %w", err)
	}
	return nil
}
