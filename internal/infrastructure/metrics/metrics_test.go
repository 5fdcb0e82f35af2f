package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.ObserveMutation("add_leaf", "ok")
	r.ObserveMutation("add_leaf", "ok")
	r.ObserveMutation("add_leaf", "conflict")
	r.ObserveTransition("approve", "error")
	r.ObserveTransition("", "ok")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.mutations.WithLabelValues("add_leaf", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.mutations.WithLabelValues("add_leaf", "conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.transitions.WithLabelValues("approve", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.transitions.WithLabelValues("unknown", "ok")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.transitions))
}
