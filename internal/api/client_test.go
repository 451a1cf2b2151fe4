package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_BearerHeaderInjected(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("tok-123"))
	_, err := client.Request(context.Background(), http.MethodGet, "companies", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestRequest_EmptyTokenStillSendsHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken(""))
	_, err := client.Request(context.Background(), http.MethodGet, "companies", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer ", gotAuth)
}

func TestRequest_GetEncodesDataAsQueryParams(t *testing.T) {
	var gotQuery string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("t"))
	_, err := client.Request(context.Background(), http.MethodGet, "jobs", map[string]any{"title": "engineer"})
	require.NoError(t, err)
	assert.Equal(t, "title=engineer", gotQuery)
	assert.Empty(t, gotBody)
}

func TestRequest_PostEncodesDataAsBody(t *testing.T) {
	var gotQuery string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("t"))
	_, err := client.Request(context.Background(), http.MethodPost, "auth/token", map[string]any{
		"username": "u1",
		"password": "pw",
	})
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
	assert.Equal(t, map[string]any{"username": "u1", "password": "pw"}, gotBody)
}

func TestRequest_SingleErrorMessageWrappedInSequence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"bad","status":400}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("t"))
	_, err := client.Request(context.Background(), http.MethodGet, "companies", nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []string{"bad"}, apiErr.Messages)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestRequest_MessageSequencePassedThroughUnchanged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":["a","b"],"status":400}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("t"))
	_, err := client.Request(context.Background(), http.MethodGet, "companies", nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []string{"a", "b"}, apiErr.Messages)
}

func TestRequest_MalformedErrorBodyFallsBackToStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("t"))
	_, err := client.Request(context.Background(), http.MethodGet, "companies", nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Len(t, apiErr.Messages, 1)
	assert.Contains(t, apiErr.Messages[0], "500")
}

func TestRequest_TransportErrorBecomesGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	server.Close() // closed before use: connection refused

	client := NewClient(server.URL, StaticToken("t"))
	_, err := client.Request(context.Background(), http.MethodGet, "companies", nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Len(t, apiErr.Messages, 1)
	assert.Contains(t, apiErr.Messages[0], "network error")
	assert.Error(t, apiErr.Unwrap())
}

func TestRequest_TraceEmitted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	var trace bytes.Buffer
	client := NewClient(server.URL, StaticToken("t"), WithTrace(&trace))
	_, err := client.Request(context.Background(), http.MethodGet, "jobs", nil)
	require.NoError(t, err)
	assert.Contains(t, trace.String(), "GET jobs")
}

func TestNewClient_EmptyBaseURLUsesDefault(t *testing.T) {
	client := NewClient("", StaticToken(""))
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}

func TestMessages(t *testing.T) {
	assert.Nil(t, Messages(nil))
	assert.Equal(t, []string{"a", "b"}, Messages(&Error{Messages: []string{"a", "b"}}))
	assert.Equal(t, []string{"plain failure"}, Messages(errors.New("plain failure")))
}
