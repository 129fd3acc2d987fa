package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorCounters(t *testing.T) {
	c := NewCollector("postboard")

	c.UserRegistered()
	c.PostCreated()
	c.PostCreated()
	c.LikeChanged("like")
	c.LikeChanged("unlike")
	c.LikeChanged("like")
	c.PostPageServed()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.UsersRegistered))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.PostsCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Likes.WithLabelValues("like")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Likes.WithLabelValues("unlike")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.PagesServed))
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := NewCollector("postboard")
	b := NewCollector("postboard")

	a.PostCreated()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.PostsCreated))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.PostsCreated))
}

func TestCollectorHandler(t *testing.T) {
	c := NewCollector("postboard")
	c.ObserveHTTP(http.MethodGet, "/api/posts", http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `postboard_http_requests_total{method="GET",route="/api/posts",status="200"} 1`)
	assert.Contains(t, body, "postboard_http_request_duration_seconds_bucket")
}
