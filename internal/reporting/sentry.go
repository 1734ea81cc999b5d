package reporting

import (
	"log"
	"time"

	"github.com/getsentry/sentry-go"
)

const flushTimeout = 2 * time.Second

// Reporter forwards server-side failures to Sentry. A Reporter built without
// a DSN drops everything.
type Reporter struct {
	initialized bool
}

func New(dsn, environment string) *Reporter {
	if dsn == "" {
		log.Println("SENTRY_DSN not set, Sentry disabled")
		return &Reporter{}
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	})
	if err != nil {
		log.Printf("Sentry initialization failed: %v", err)
		return &Reporter{}
	}

	log.Println("Sentry initialized successfully")
	return &Reporter{initialized: true}
}

func (r *Reporter) Enabled() bool {
	return r != nil && r.initialized
}

// CaptureRequestError reports err tagged with the request that produced it.
func (r *Reporter) CaptureRequestError(method, path string, status int, err error) {
	if !r.Enabled() || err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("method", method)
		scope.SetTag("path", path)
		scope.SetExtra("status", status)
		scope.SetLevel(sentry.LevelError)
		sentry.CaptureException(err)
	})
}

func (r *Reporter) CapturePanic(value any) {
	if !r.Enabled() {
		return
	}
	sentry.CurrentHub().Recover(value)
	sentry.Flush(flushTimeout)
}

func (r *Reporter) Close() {
	if !r.Enabled() {
		return
	}
	sentry.Flush(flushTimeout)
}
