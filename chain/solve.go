package chain

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/StantStantov/rps/swamp/atomic"
	"github.com/StantStantov/rps/swamp/logging"
	"github.com/StantStantov/rps/swamp/logging/logfmt"

	"github.com/katalvlaran/padchain/keypad"
)

// Options configures Solve.
type Options struct {
	// Workers bounds the number of codes scored in parallel.
	Workers int
	// Logger receives per-code debug events and a final info event.
	// Nil disables logging.
	Logger *logging.Logger
	// Metrics, when set, accumulates solver counters.
	Metrics *Metrics
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns one worker per CPU, no logger and no metrics.
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}

// WithWorkers sets the worker count; values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = max(n, 1)
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// Solve returns the sum of Score over codes for a chain of layers
// directional robots. Codes are scored concurrently on a shared Chain.
//
// The first failing code aborts the batch and its error is returned.
// Cancelling ctx stops dispatch and returns ctx.Err().
func Solve(ctx context.Context, codes []keypad.Code, layers int, opts ...Option) (uint64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c, err := NewChain(layers)
	if err != nil {
		return 0, err
	}
	c.metrics = o.Metrics

	var logger *logging.Logger
	if o.Logger != nil {
		logger = logging.NewChildLogger(o.Logger, func(event *logging.Event) {
			logfmt.String(event, "from", "chain_solver")
		})
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	total := atomic.NewUint64(0)
	jobs := make(chan keypad.Code)
	for range min(o.Workers, len(codes)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for code := range jobs {
				if err := solveOne(c, code, total, logger, o.Metrics); err != nil {
					fail(err)
				}
			}
		}()
	}

dispatch:
	for _, code := range codes {
		select {
		case <-runCtx.Done():
			break dispatch
		case jobs <- code:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return 0, firstErr
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	sum := atomic.LoadUint64(total)
	if logger != nil {
		logging.GetThenSendInfo(
			logger,
			"solved codes",
			func(event *logging.Event, level logging.Level) error {
				logfmt.Integer(event, "codes.amount", len(codes))
				logfmt.Integer(event, "layers", layers)
				logfmt.Unsigned(event, "score.total", sum)

				return nil
			},
		)
	}
	if o.Metrics != nil {
		LogMetrics(o.Metrics)
	}

	return sum, nil
}

func solveOne(c *Chain, code keypad.Code, total *atomic.Uint64, logger *logging.Logger, m *Metrics) error {
	n, err := c.Length(code)
	if err != nil {
		return fmt.Errorf("chain: code %s: %w", code, err)
	}
	score := code.Numeric() * n
	atomic.AddUint64(total, score)

	if m != nil {
		AddToMetric(m, CodesSolvedCounter, 1)
		AddToMetric(m, PressesCounter, n)
	}
	if logger != nil {
		logging.GetThenSendDebug(
			logger,
			"solved code",
			func(event *logging.Event, level logging.Level) error {
				logfmt.String(event, "code", code.String())
				logfmt.Unsigned(event, "presses", n)
				logfmt.Unsigned(event, "score", score)

				return nil
			},
		)
	}

	return nil
}
