package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CountersAndHandler(t *testing.T) {
	r := New()

	r.ObserveRequest(http.MethodGet, "/api/v1/jobs", http.StatusOK, 5*time.Millisecond)
	r.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)
	r.ModerationDecision("job", "Approved")
	r.ModerationDecision("job", "Approved")
	r.UsersRemoved("cleanup", 3)
	r.UsersRemoved("cleanup", 0)
	r.CheckoutsSettled(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.moderationDecisions.WithLabelValues("job", "Approved")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.usersRemoved.WithLabelValues("cleanup")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.checkoutsSettled))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("GET", "unmatched", "404")))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "nexus_http_requests_total"))
}

func TestRegistry_NilSafe(t *testing.T) {
	var r *Registry
	r.ObserveRequest("GET", "/", 200, time.Millisecond)
	r.ModerationDecision("job", "Rejected")
	r.UsersRemoved("ban", 1)
	r.CheckoutsSettled(1)
}
