package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAuthRejectionsTotal(t *testing.T) {
	before := testutil.ToFloat64(AuthRejectionsTotal.WithLabelValues(ReasonExpired))
	AuthRejectionsTotal.WithLabelValues(ReasonExpired).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(AuthRejectionsTotal.WithLabelValues(ReasonExpired)))
}

func TestHTTPRequestsTotal(t *testing.T) {
	c := HTTPRequestsTotal.WithLabelValues("GET", "/species", "200")
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
