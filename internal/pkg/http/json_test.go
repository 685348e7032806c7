package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		check      func(t *testing.T, err error)
	}{
		{
			name:       "validation with message key",
			statusCode: http.StatusBadRequest,
			body:       `{"message":"Amount must be positive"}`,
			check: func(t *testing.T, err error) {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "Amount must be positive", ve.Message)
				assert.Equal(t, http.StatusBadRequest, ve.StatusCode)
			},
		},
		{
			name:       "validation with error key",
			statusCode: http.StatusUnauthorized,
			body:       `{"error":"Invalid credentials"}`,
			check: func(t *testing.T, err error) {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "Invalid credentials", ve.Message)
			},
		},
		{
			name:       "not found",
			statusCode: http.StatusNotFound,
			body:       `{"message":"Geofence not found"}`,
			check: func(t *testing.T, err error) {
				var nf *NotFoundError
				require.ErrorAs(t, err, &nf)
				assert.Equal(t, "Geofence not found", nf.Message)
			},
		},
		{
			name:       "server error falls through to transport",
			statusCode: http.StatusInternalServerError,
			body:       `{"message":"boom"}`,
			check: func(t *testing.T, err error) {
				var te *TransportError
				require.ErrorAs(t, err, &te)
				assert.Equal(t, http.StatusInternalServerError, te.StatusCode)
			},
		},
		{
			name:       "unparseable 4xx body is transport",
			statusCode: http.StatusBadRequest,
			body:       `<html>bad gateway</html>`,
			check: func(t *testing.T, err error) {
				var te *TransportError
				require.ErrorAs(t, err, &te)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, classifyError(tt.statusCode, []byte(tt.body)))
		})
	}
}

func TestGetJSONDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/user/info", r.URL.Path)
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	var out struct {
		Message string `json:"message"`
	}
	require.NoError(t, client.GetJSON(context.Background(), "/user/info", &out))
	assert.Equal(t, "ok", out.Message)
}

func TestPostJSONSendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	body := map[string]string{"email": "ravi@example.com"}
	require.NoError(t, client.PostJSON(context.Background(), "/user/login", body, nil))
}

func TestDoJSONMalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": `))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	var out struct{}
	err := client.GetJSON(context.Background(), "/geofence/show", &out)

	var te *TransportError
	require.ErrorAs(t, err, &te)
}

func TestDoJSONNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second)
	err := client.GetJSON(context.Background(), "/geofence/show", nil)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.NotNil(t, te.Err)
}

func TestDoJSONContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL, time.Second)
	err := client.GetJSON(ctx, "/geofence/show", nil)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.True(t, errors.Is(err, context.Canceled))
}
