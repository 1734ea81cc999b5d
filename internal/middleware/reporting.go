package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorLocalKey is where handlers leave the underlying error of a 5xx
// response for ReportServerErrors.
const ErrorLocalKey = "error"

type errorReporter interface {
	CaptureRequestError(method, path string, status int, err error)
}

// ReportServerErrors reports every response with a 5xx status.
func ReportServerErrors(reporter errorReporter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		if status < fiber.StatusInternalServerError {
			return err
		}

		reported := err
		if reported == nil {
			if cause, ok := c.Locals(ErrorLocalKey).(error); ok {
				reported = cause
			} else {
				reported = fmt.Errorf("%s %s responded %d", c.Method(), c.Path(), status)
			}
		}
		reporter.CaptureRequestError(c.Method(), c.Path(), status, reported)
		return err
	}
}
