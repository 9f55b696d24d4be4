package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorderCountsSaves(t *testing.T) {
	r := NewRecorder(prom.NewRegistry())

	r.IncSave(OutcomeCommitted)
	r.IncSave(OutcomeCommitted)
	r.IncSave(OutcomeNoChanges)

	assert.Equal(t, float64(2), testutil.ToFloat64(r.saves.WithLabelValues(OutcomeCommitted)))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.saves.WithLabelValues(OutcomeNoChanges)))
	assert.Equal(t, float64(0), testutil.ToFloat64(r.saves.WithLabelValues(OutcomeWriteFailed)))
}

func TestNilRecorderIsNoOp(t *testing.T) {
	var r *Recorder

	assert.NotPanics(t, func() {
		r.IncSave(OutcomeCommitted)
		r.ObserveSaveDuration(time.Millisecond)
	})
}
