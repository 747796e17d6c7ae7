package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.TeamCreated()
	m.TeamCreated()
	m.InviteResponded("accepted")
	m.InviteResponded("declined")
	m.InviteResponded("accepted")
	m.NotificationFailed()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.TeamsCreatedTotal))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.InviteResponsesTotal.WithLabelValues("accepted")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.InviteResponsesTotal.WithLabelValues("declined")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.NotificationFailuresTotal))
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest("GET", "/teams/mine", "200", 15*time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/teams/mine", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPRequestDuration))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.TeamCreated()
		m.InviteResponded("accepted")
		m.NotificationFailed()
		m.ObserveRequest("GET", "/", "200", time.Second)
	})
}
