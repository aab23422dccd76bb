package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backendStub struct {
	requests []*url.URL
	handler  func(w http.ResponseWriter, r *http.Request)
}

func newBackend(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*backendStub, Client) {
	stub := &backendStub{handler: handler}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.requests = append(stub.requests, r.URL)
		stub.handler(w, r)
	}))
	t.Cleanup(server.Close)
	return stub, NewClient(server.URL+"/api/", 5*time.Second)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func Test_Query_Values(t *testing.T) {
	scenarios := []struct {
		name     string
		query    Query
		expected string
	}{
		{name: "paging only", query: Query{Page: 0, Size: 1000, Days: 7}, expected: "days=7&page=0&size=1000"},
		{name: "partial search is not sent", query: Query{Size: 10, Days: 1, UserName: "jdoe", JobName: "import"}, expected: "days=1&page=0&size=10"},
		{name: "full search", query: Query{Page: 2, Size: 10, UserName: "jdoe", JobName: "import", FileName: "import", Status: "FAILED"},
			expected: "days=0&fileName=import&jobName=import&page=2&size=10&status=FAILED&username=jdoe"},
	}
	for _, ts := range scenarios {
		t.Run(ts.name, func(t *testing.T) {
			assert.Equal(t, ts.expected, ts.query.Values().Encode())
		})
	}
}

func Test_GetJobs(t *testing.T) {
	t.Run("returns records", func(t *testing.T) {
		stub, client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `[{"id":"1","status":"success","progress":12.5},{"id":"2"}, "junk"]`)
		})
		records, err := client.GetJobs(context.Background(), Query{Page: 1, Size: 50, Days: 7})
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "1", records[0]["id"])
		assert.Equal(t, json.Number("12.5"), records[0]["progress"])
		assert.Nil(t, records[2])
		require.Len(t, stub.requests, 1)
		assert.Equal(t, "/api/jobs", stub.requests[0].Path)
		assert.Equal(t, "days=7&page=1&size=50", stub.requests[0].RawQuery)
	})

	t.Run("non array payload is empty", func(t *testing.T) {
		_, client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"content":[]}`)
		})
		records, err := client.GetJobs(context.Background(), Query{})
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("error status", func(t *testing.T) {
		_, client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadGateway, `upstream down`)
		})
		_, err := client.GetJobs(context.Background(), Query{})
		var responseError *ResponseError
		require.True(t, errors.As(err, &responseError))
		assert.Equal(t, http.StatusBadGateway, responseError.StatusCode)
		assert.Equal(t, "upstream down", responseError.Body)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `[{"id":`)
		})
		_, err := client.GetJobs(context.Background(), Query{})
		assert.Error(t, err)
	})
}

func Test_GetActions(t *testing.T) {
	stub, client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"actionId":"a1","type":"upload"}]`)
	})
	records, err := client.GetActions(context.Background(), Query{Size: 1000, Days: 30})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "upload", records[0]["type"])
	assert.Equal(t, "/api/actions", stub.requests[0].Path)
}

func Test_GetStatistics(t *testing.T) {
	stub, client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[["k","SUCCESS",5]]`)
	})
	statistics, err := client.GetStatistics(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{[]interface{}{"k", "SUCCESS", json.Number("5")}}, statistics)
	assert.Equal(t, "/api/jobs/stats", stub.requests[0].Path)
	assert.Equal(t, "days=0", stub.requests[0].RawQuery)
}

func Test_CanceledContext(t *testing.T) {
	_, client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.GetStatistics(ctx, 7)
	assert.ErrorIs(t, err, context.Canceled)
}
