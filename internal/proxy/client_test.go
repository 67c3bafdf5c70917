package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/omen/internal/apperror"
	"github.com/sakif/omen/internal/model"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

const owlReply = `{"info":{"name":"Owl","interpretations":{"indigenous":"a","cultural":"b","psychological":"c"},"history":"d"},"imageUrl":"https://img.example/owl.png"}`

func TestFetch_Success(t *testing.T) {
	var gotBody map[string]json.RawMessage
	var gotMethod, gotType string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = io.WriteString(w, owlReply)
	})

	res, err := c.Fetch(context.Background(), "owl", &model.Geolocation{Latitude: 1.5, Longitude: 2}, model.PracticeTaoism)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotType)
	assert.JSONEq(t, `"owl"`, string(gotBody["query"]))
	assert.JSONEq(t, `{"latitude":1.5,"longitude":2}`, string(gotBody["location"]))
	assert.JSONEq(t, `"Taoism"`, string(gotBody["spiritualPractice"]))

	assert.Equal(t, "Owl", res.Info.Name)
	require.NotNil(t, res.Info.Interpretations)
	assert.Equal(t, "c", res.Info.Interpretations.Psychological)
	assert.Equal(t, "https://img.example/owl.png", res.ImageURL)
}

func TestFetch_AbsentContextSentAsNull(t *testing.T) {
	var gotBody map[string]json.RawMessage
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = io.WriteString(w, owlReply)
	})

	_, err := c.Fetch(context.Background(), "owl", nil, "")
	require.NoError(t, err)

	assert.Equal(t, "null", string(gotBody["location"]))
	assert.Equal(t, "null", string(gotBody["spiritualPractice"]))
}

func TestFetch_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "non-success status uses body text",
			status:  http.StatusInternalServerError,
			body:    `{"error":"HF API error: loading"}`,
			wantMsg: `{"error":"HF API error: loading"}`,
		},
		{
			name:    "non-success status with empty body",
			status:  http.StatusBadGateway,
			body:    "",
			wantMsg: "Failed to fetch symbol info from backend.",
		},
		{
			name:    "explicit error field",
			status:  http.StatusOK,
			body:    `{"error":"quota exceeded"}`,
			wantMsg: "quota exceeded",
		},
		{
			name:    "missing info",
			status:  http.StatusOK,
			body:    `{"imageUrl":"https://img.example/x.png"}`,
			wantMsg: "Backend did not return the expected symbol info or image.",
		},
		{
			name:    "null info",
			status:  http.StatusOK,
			body:    `{"info":null,"imageUrl":"https://img.example/x.png"}`,
			wantMsg: "Backend did not return the expected symbol info or image.",
		},
		{
			name:    "false info",
			status:  http.StatusOK,
			body:    `{"info":false,"imageUrl":"https://img.example/x.png"}`,
			wantMsg: "Backend did not return the expected symbol info or image.",
		},
		{
			name:    "null imageUrl",
			status:  http.StatusOK,
			body:    `{"info":{"name":"Owl","history":"d"},"imageUrl":null}`,
			wantMsg: "Backend did not return the expected symbol info or image.",
		},
		{
			name:    "empty imageUrl",
			status:  http.StatusOK,
			body:    `{"info":{"name":"Owl","history":"d"},"imageUrl":""}`,
			wantMsg: "Backend did not return the expected symbol info or image.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.Fetch(context.Background(), "owl", nil, "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperror.ErrUpstream), "error = %v, want ErrUpstream", err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestFetch_MistypedInfoKeptAsText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"info":{"name":"Owl","history":1887,"interpretations":{"indigenous":"a","cultural":"b","psychological":["c1","c2"]}},"imageUrl":"https://img.example/owl.png"}`)
	})

	res, err := c.Fetch(context.Background(), "owl", nil, "")
	require.NoError(t, err)

	assert.Equal(t, "Owl", res.Info.Name)
	assert.Equal(t, "1887", res.Info.History)
	require.NotNil(t, res.Info.Interpretations)
	assert.Equal(t, "a", res.Info.Interpretations.Indigenous)
	assert.Equal(t, `["c1","c2"]`, res.Info.Interpretations.Psychological)
	assert.Equal(t, "https://img.example/owl.png", res.ImageURL)
}

func TestFetch_NonObjectInfo(t *testing.T) {
	tests := []struct {
		name        string
		info        string
		wantName    string
		wantMeaning string
	}{
		{name: "string info", info: `"an omen of change"`, wantMeaning: "an omen of change"},
		{name: "string interpretations", info: `{"name":"Raven","interpretations":"a messenger"}`, wantName: "Raven", wantMeaning: "a messenger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"info":`+tt.info+`,"imageUrl":"https://img.example/x.png"}`)
			})

			res, err := c.Fetch(context.Background(), "raven", nil, "")
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, res.Info.Name)
			assert.Nil(t, res.Info.Interpretations)
			assert.Equal(t, tt.wantMeaning, res.Info.Meaning)
		})
	}
}

func TestFetch_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := c.Fetch(context.Background(), "owl", nil, "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrTransport))
	assert.NotEmpty(t, err.Error())
}

func TestFetch_NoRetry(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Fetch(context.Background(), "owl", nil, "")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
