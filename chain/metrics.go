package chain

import (
	"github.com/StantStantov/rps/swamp/atomic"
	"github.com/StantStantov/rps/swamp/logging"
	"github.com/StantStantov/rps/swamp/logging/logfmt"
)

type MetricType uint8

const (
	CodesSolvedCounter MetricType = iota
	PressesCounter
	MemoMissesCounter
)

var MetricTypesNames = []string{
	"codes_solved_total",
	"presses_total",
	"memo_misses_total",
}

// Metrics holds solver counters. It is safe for concurrent use and may be
// shared across Solve calls to accumulate totals.
type Metrics struct {
	Values []*atomic.Uint64

	Logger *logging.Logger
}

type Metric struct {
	Name  string
	Value uint64
}

// NewMetrics returns zeroed counters. A nil logger disables LogMetrics.
func NewMetrics(logger *logging.Logger) *Metrics {
	m := &Metrics{}

	m.Values = make([]*atomic.Uint64, len(MetricTypesNames))
	for i := range m.Values {
		m.Values[i] = atomic.NewUint64(0)
	}

	if logger != nil {
		m.Logger = logging.NewChildLogger(logger, func(event *logging.Event) {
			logfmt.String(event, "from", "chain_metrics")
		})
	}

	return m
}

func GetMetrics(m *Metrics, setMetricBuffer []Metric) []Metric {
	minLength := min(len(setMetricBuffer), len(MetricTypesNames), len(m.Values))
	for i := range minLength {
		setMetricBuffer[i] = Metric{
			Name:  MetricTypesNames[i],
			Value: atomic.LoadUint64(m.Values[i]),
		}
	}

	return setMetricBuffer[:minLength]
}

func LoadMetric(m *Metrics, metric MetricType) uint64 {
	return atomic.LoadUint64(m.Values[metric])
}

func AddToMetric(m *Metrics, metric MetricType, value uint64) {
	atomic.AddUint64(m.Values[metric], value)
}

// LogMetrics sends the current counter values as one info event.
func LogMetrics(m *Metrics) {
	if m.Logger == nil {
		return
	}
	metrics := GetMetrics(m, make([]Metric, len(MetricTypesNames)))
	logging.GetThenSendInfo(
		m.Logger,
		"saved new metrics values",
		func(event *logging.Event, level logging.Level) error {
			for _, metric := range metrics {
				logfmt.Unsigned(event, "metrics."+metric.Name, metric.Value)
			}

			return nil
		},
	)
}
