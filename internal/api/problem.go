package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/blog-crud-api/internal/config"
	"github.com/blog-crud-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const problemContentType = "application/problem+json"

// genericProblemTitle is the stable title for every translated failure
const genericProblemTitle = "An error occurred while processing your request."

// genericProblemDetail hides error internals outside development mode
const genericProblemDetail = "An unexpected error occurred. Please try again later."

// Problem is the standardized error payload written for any failure that
// escapes a handler
type Problem struct {
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
}

// errorMiddleware translates errors recorded on the context into a single
// problem+json response. Handlers record storage failures with c.Error and
// return; they never write error responses for them directly.
func errorMiddleware(cfg *config.Config, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		writeProblem(c, cfg, log, c.Errors.Last().Err)
	}
}

// recoveryMiddleware converts panics into the same problem payload
func recoveryMiddleware(cfg *config.Config, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				writeProblem(c, cfg, log, fmt.Errorf("panic: %v", r))
			}
		}()
		c.Next()
	}
}

// writeProblem classifies the error, logs it and writes exactly one
// problem+json response. Missing-resource errors map to 404 with the error
// message as detail; everything else is a 500 whose detail is only exposed
// in development mode.
func writeProblem(c *gin.Context, cfg *config.Config, log zerolog.Logger, err error) {
	status := http.StatusInternalServerError
	detail := genericProblemDetail

	if errors.Is(err, service.ErrNotFound) {
		status = http.StatusNotFound
		detail = err.Error()
	} else if cfg.IsDevelopment() {
		detail = err.Error()
	}

	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Msg("Request failed")

	c.Header("Content-Type", problemContentType)
	c.AbortWithStatusJSON(status, Problem{
		Title:    genericProblemTitle,
		Status:   status,
		Detail:   detail,
		Instance: c.Request.URL.Path,
	})
}
