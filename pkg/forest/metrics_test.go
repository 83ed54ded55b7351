package forest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCounter struct{ count int }

func (c *fakeCounter) Inc() { c.count++ }

func TestPrometheusMetricsIncrementsExpectedCounters(t *testing.T) {
	tables := &fakeCounter{}
	answers := &fakeCounter{}
	conditional := &fakeCounter{}
	quanta := &fakeCounter{}
	cycles := &fakeCounter{}
	floundered := &fakeCounter{}

	m := NewPrometheusMetrics(tables, answers, conditional, quanta, cycles, floundered)

	m.TableCreated()
	m.AnswerProduced(false)
	m.AnswerProduced(true)
	m.QuantumYielded()
	m.CycleResolved()
	m.Floundered()

	assert.Equal(t, 1, tables.count)
	assert.Equal(t, 2, answers.count)
	assert.Equal(t, 1, conditional.count)
	assert.Equal(t, 1, quanta.count)
	assert.Equal(t, 1, cycles.count)
	assert.Equal(t, 1, floundered.count)
}

func TestNoopMetricsNeverPanics(t *testing.T) {
	var m Metrics = noopMetrics{}
	m.TableCreated()
	m.AnswerProduced(true)
	m.QuantumYielded()
	m.CycleResolved()
	m.Floundered()
}
