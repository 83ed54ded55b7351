package forest

// Metrics is the optional instrumentation surface a Forest reports to.
// All methods are no-ops on a nil Metrics (Forest always calls through
// noopMetrics when the caller doesn't supply one), so instrumentation
// costs nothing when unused.
type Metrics interface {
	TableCreated()
	AnswerProduced(conditional bool)
	QuantumYielded()
	CycleResolved()
	Floundered()
}

type noopMetrics struct{}

func (noopMetrics) TableCreated()       {}
func (noopMetrics) AnswerProduced(bool) {}
func (noopMetrics) QuantumYielded()     {}
func (noopMetrics) CycleResolved()      {}
func (noopMetrics) Floundered()         {}

// PrometheusMetrics is a Metrics implementation backed by six
// caller-supplied counters (prometheus/client_golang counters, or
// anything else with an Inc method). Creating and registering them is
// left to the caller, so multiple forests in one process can share one
// set of counters, or each get their own for isolated tests.
type PrometheusMetrics struct {
	tablesCreated   prometheusCounter
	answersTotal    prometheusCounter
	conditionalTotal prometheusCounter
	quantaYielded   prometheusCounter
	cyclesResolved  prometheusCounter
	flounderedTotal prometheusCounter
}

// prometheusCounter is the minimal surface this package needs from
// prometheus.Counter, kept narrow so metrics.go doesn't have to import
// the client library's full API surface just to increment counters.
type prometheusCounter interface {
	Inc()
}

// NewPrometheusMetrics wraps six already-created counters, one per
// Metrics event (answers produced and conditional answers produced are
// counted separately). Pass any type satisfying the prometheus.Counter
// interface (e.g. from promauto.With(registerer).NewCounter) for each
// argument — this package does not import prometheus directly so
// pkg/forest has no hard dependency on the exact registerer API a caller
// chooses.
func NewPrometheusMetrics(tablesCreated, answersTotal, conditionalTotal, quantaYielded, cyclesResolved, flounderedTotal prometheusCounter) *PrometheusMetrics {
	return &PrometheusMetrics{
		tablesCreated:    tablesCreated,
		answersTotal:     answersTotal,
		conditionalTotal: conditionalTotal,
		quantaYielded:    quantaYielded,
		cyclesResolved:   cyclesResolved,
		flounderedTotal:  flounderedTotal,
	}
}

func (m *PrometheusMetrics) TableCreated() { m.tablesCreated.Inc() }

func (m *PrometheusMetrics) AnswerProduced(conditional bool) {
	m.answersTotal.Inc()
	if conditional {
		m.conditionalTotal.Inc()
	}
}

func (m *PrometheusMetrics) QuantumYielded() { m.quantaYielded.Inc() }
func (m *PrometheusMetrics) CycleResolved()  { m.cyclesResolved.Inc() }
func (m *PrometheusMetrics) Floundered()     { m.flounderedTotal.Inc() }
