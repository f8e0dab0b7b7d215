package diagnose_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Umaima-s-pathan/VR-final/internal/diagnose"
	"github.com/Umaima-s-pathan/VR-final/sdk/net"
)

func healthyBackendServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})
	mux.HandleFunc("/api/upload", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
	mux.HandleFunc("/api/status/test", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Palace VR180 backend"))
	})
	return httptest.NewServer(mux)
}

func TestRunAllChecksPass(t *testing.T) {
	server := healthyBackendServer()
	defer server.Close()

	report := diagnose.Run(context.Background(), net.NewBackend(server.URL, nil))

	require.Len(t, report.Checks, 4)
	assert.True(t, report.Healthy())
	for _, check := range report.Checks {
		assert.True(t, check.OK, "check %q should pass", check.Name)
		assert.NoError(t, check.Err)
	}
}

func TestRunFlagsDeployingBackend(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Service is deploying, please wait..."))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	report := diagnose.Run(context.Background(), net.NewBackend(server.URL, nil))

	var rootCheck *diagnose.Check
	for i := range report.Checks {
		if report.Checks[i].Name == "root endpoint" {
			rootCheck = &report.Checks[i]
		}
	}
	require.NotNil(t, rootCheck)
	assert.True(t, rootCheck.OK)
	assert.Equal(t, "backend is still deploying", rootCheck.Detail)
}

func TestRunContinuesPastFailingChecks(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		// Health falls back here; preflight and status API 404 below.
		if r.URL.Path == "/" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	report := diagnose.Run(context.Background(), net.NewBackend(server.URL, nil))

	require.Len(t, report.Checks, 4)
	assert.False(t, report.Healthy())

	results := map[string]bool{}
	for _, check := range report.Checks {
		results[check.Name] = check.OK
	}
	assert.True(t, results["health endpoint"], "health should pass via root fallback")
	assert.True(t, results["root endpoint"])
	assert.False(t, results["CORS preflight"])
	assert.False(t, results["status API"])
}

func TestRunReportsUnreachableBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	report := diagnose.Run(context.Background(), net.NewBackend(server.URL, nil))

	assert.False(t, report.Healthy())
	for _, check := range report.Checks {
		assert.False(t, check.OK)
		assert.Error(t, check.Err)
	}
}
