package diagnose

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Umaima-s-pathan/VR-final/sdk/net"
)

// checkTimeout bounds each individual diagnostic request.
const checkTimeout = 10 * time.Second

// Check is the outcome of one diagnostic probe.
type Check struct {
	Name   string
	OK     bool
	Status int
	Detail string
	Err    error
}

// Report is the full diagnostic run against a backend.
type Report struct {
	BackendURL string
	Checks     []Check
}

// Healthy reports whether every check passed.
func (r *Report) Healthy() bool {
	for _, c := range r.Checks {
		if !c.OK {
			return false
		}
	}
	return true
}

// Run exercises the backend's diagnostic surface: the health endpoint
// (with root fallback), the root page, the CORS preflight on the upload
// endpoint, and the job-status API. Each probe is independent; one
// failing never skips the rest.
func Run(ctx context.Context, backend net.Backend) *Report {
	report := &Report{BackendURL: backend.BaseURL()}

	report.Checks = append(report.Checks,
		checkHealth(ctx, backend),
		checkRoot(ctx, backend),
		checkPreflight(ctx, backend),
		checkStatusAPI(ctx, backend),
	)

	return report
}

func checkHealth(ctx context.Context, backend net.Backend) Check {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	check := Check{Name: "health endpoint"}
	status, err := backend.Health(ctx)
	if err != nil {
		check.Err = err
		check.Detail = "backend unreachable"
		return check
	}

	check.OK = status.OK
	check.Status = status.StatusCode
	if status.ViaFallback {
		check.Detail = "health path unavailable, liveness confirmed via root endpoint"
	} else {
		check.Detail = strings.TrimSpace(string(status.Body))
	}
	return check
}

func checkRoot(ctx context.Context, backend net.Backend) Check {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	check := Check{Name: "root endpoint"}
	resp, err := backend.Root(ctx)
	if err != nil {
		check.Err = err
		check.Detail = "backend unreachable"
		return check
	}

	check.Status = resp.StatusCode
	check.OK = resp.StatusCode == http.StatusOK
	// A hosting platform serves a placeholder page while the service is
	// still rolling out; flag it so the operator waits instead of
	// debugging a healthy deploy.
	if strings.Contains(strings.ToLower(string(resp.Body)), "deploying") {
		check.Detail = "backend is still deploying"
	}
	return check
}

func checkPreflight(ctx context.Context, backend net.Backend) Check {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	check := Check{Name: "CORS preflight"}
	status, err := backend.Preflight(ctx)
	if err != nil {
		check.Err = err
		check.Detail = "preflight request failed"
		return check
	}

	check.Status = status
	check.OK = status == http.StatusOK
	if !check.OK {
		check.Detail = fmt.Sprintf("preflight answered %d, browser uploads may be blocked", status)
	}
	return check
}

func checkStatusAPI(ctx context.Context, backend net.Backend) Check {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	check := Check{Name: "status API"}
	status, err := backend.ProbeStatusAPI(ctx)
	if err != nil {
		check.Err = err
		check.Detail = "status API unreachable"
		return check
	}

	check.Status = status
	check.OK = status == http.StatusOK
	if !check.OK {
		check.Detail = fmt.Sprintf("status API answered %d", status)
	}
	return check
}
