package reporting

import (
	"errors"
	"testing"
)

func TestNewWithoutDSNIsDisabled(t *testing.T) {
	reporter := New("", "test")
	if reporter.Enabled() {
		t.Fatal("expected reporter to be disabled without a DSN")
	}

	reporter.CaptureRequestError("GET", "/health", 500, errors.New("boom"))
	reporter.CapturePanic("boom")
	reporter.Close()
}

func TestNilReporterIsDisabled(t *testing.T) {
	var reporter *Reporter
	if reporter.Enabled() {
		t.Fatal("expected nil reporter to be disabled")
	}
	reporter.CaptureRequestError("GET", "/", 500, errors.New("boom"))
}
