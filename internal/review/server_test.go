package review

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/rehearse/internal/catalog"
)

type interviewBody struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Company  string  `json:"company"`
	Duration string  `json:"duration"`
	Rating   float64 `json:"rating"`
}

type listBody struct {
	Interviews    []interviewBody `json:"interviews"`
	Total         int             `json:"total"`
	AverageRating float64         `json:"average_rating"`
}

func get(t *testing.T, srv *httptest.Server, path string, v any) int {
	t.Helper()

	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.NoError(t, json.Unmarshal(b, v), string(b))

	return resp.StatusCode
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(NewRouter(catalog.Default()))
	t.Cleanup(srv.Close)

	return srv
}

func TestListInterviews(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name  string
		query string
		ids   []string
	}{
		{name: "all", query: "", ids: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "search", query: "?search=meta", ids: []string{"2"}},
		{name: "type", query: "?type=behavioral", ids: []string{"2", "6"}},
		{name: "since", query: "?since=2024-01-09", ids: []string{"1", "2", "3"}},
		{name: "no match", query: "?search=nowhere", ids: []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var body listBody

			status := get(t, srv, "/api/interviews"+tc.query, &body)
			assert.Equal(t, http.StatusOK, status)

			ids := []string{}
			for _, iv := range body.Interviews {
				ids = append(ids, iv.ID)
			}

			assert.Equal(t, tc.ids, ids)
			assert.Equal(t, len(tc.ids), body.Total)
		})
	}
}

func TestListInterviewsBadSince(t *testing.T) {
	srv := newTestServer(t)

	var body errorResponse

	status := get(t, srv, "/api/interviews?since=notadate", &body)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body.Error, "invalid since value")
}

func TestGetInterview(t *testing.T) {
	srv := newTestServer(t)

	var iv interviewBody

	status := get(t, srv, "/api/interviews/1", &iv)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Senior Software Engineer", iv.Title)
	assert.Equal(t, "Google", iv.Company)
	assert.Equal(t, "45 min", iv.Duration)
	assert.InDelta(t, 4.5, iv.Rating, 0.001)
}

func TestGetTranscript(t *testing.T) {
	srv := newTestServer(t)

	var body transcriptResponse

	status := get(t, srv, "/api/interviews/1/transcript", &body)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1", body.ID)
	require.Len(t, body.Lines, 7)
	assert.Equal(t, "02:15", body.Lines[4].Time)
}

func TestUnknownInterview(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/interviews/99", "/api/interviews/99/transcript"} {
		var body errorResponse

		status := get(t, srv, path, &body)

		assert.Equal(t, http.StatusNotFound, status, path)
		assert.Equal(t, "interview 99 not found", body.Error, path)
	}
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	var body errorResponse

	status := get(t, srv, "/api/nothing", &body)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "route not found", body.Error)
}

func TestTemplates(t *testing.T) {
	srv := newTestServer(t)

	var body []catalog.Template

	status := get(t, srv, "/api/templates", &body)

	assert.Equal(t, http.StatusOK, status)
	require.Len(t, body, len(catalog.Default().Templates))
	assert.Equal(t, "frontend", body[0].ID)
}

func TestServeShutsDown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	addrCh := make(chan net.Addr, 1)
	errCh := make(chan error, 1)

	go func() {
		errCh <- Serve(ctx, "127.0.0.1:0", catalog.Default(), func(a net.Addr) {
			addrCh <- a
		})
	}()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + addr.String() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServeBadAddress(t *testing.T) {
	err := Serve(context.Background(), "256.0.0.1:bad", catalog.Default(), nil)

	assert.ErrorIs(t, err, errListen)
}
