package middleware

import (
	"errors"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/yigit/salesweb/internal/app/models/dto"
	"github.com/yigit/salesweb/internal/pkg/apperrors"
	"github.com/yigit/salesweb/internal/pkg/dberrors"
)

// ErrorView is the template rendered for every error page
const ErrorView = "home/error"

// Offered response formats, HTML first so browsers get pages by default
var offeredFormats = []string{gin.MIMEHTML, gin.MIMEJSON}

// Render writes data as the HTML view name or as JSON, depending on what
// the client accepts
func Render(c *gin.Context, code int, name string, data interface{}) {
	negotiate(c, code, name, data, data)
}

// negotiate picks JSON only when the client prefers it. Any other Accept
// header, including one matching no offered format, gets the HTML page.
func negotiate(c *gin.Context, code int, name string, htmlData, jsonData interface{}) {
	if c.NegotiateFormat(offeredFormats...) == gin.MIMEJSON {
		c.JSON(code, jsonData)
		return
	}
	c.HTML(code, name, htmlData)
}

// NoCache marks the response as never cacheable
func NoCache(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store")
	c.Header("Pragma", "no-cache")
}

// HandleError maps err to a status code and renders the error view.
// Details are only shown while gin runs in debug mode.
func HandleError(c *gin.Context, err error) {
	status, detail := classifyError(err)

	lgr := GetLogger(c)
	if status >= http.StatusInternalServerError {
		lgr.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	} else {
		lgr.Debug().Err(err).Int("status", status).Msg("Request rejected")
	}

	if gin.IsDebugging() {
		detail = detail.WithDebugInfo("%v", err)
	}
	RenderError(c, status, detail)
}

// classifyError picks the status code and public message for err
func classifyError(err error) (int, *dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "The requested resource was not found.")
	case apperrors.Is(err, apperrors.ErrIDMismatch, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeBadRequest, "The request could not be processed.")
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed.")
	case dberrors.IsForeignKeyViolation(err):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceInUse, "The operation could not be completed.")
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An error occurred while processing your request.")
	}
}

// RenderError renders the error view with the request correlation id and
// headers that keep the page out of caches
func RenderError(c *gin.Context, status int, detail *dto.ErrorDetail) {
	requestID := GetRequestID(c)
	NoCache(c)

	view := dto.ErrorViewModel{
		Title:      "Error",
		RequestID:  requestID,
		StatusCode: status,
		Message:    detail.Message,
		Detail:     detail.DebugInfo,
	}

	negotiate(c, status, ErrorView, view, dto.NewErrorResponse(requestID, detail))
	c.Abort()
}

// NotFound renders the error view for routes that do not exist
func NotFound(c *gin.Context) {
	HandleError(c, apperrors.ErrResourceNotFound)
}

// Recovery turns a panic in a handler into the 500 error page
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		lgr := GetLogger(c)
		lgr.Error().
			Interface("panic", recovered).
			Bytes("stack", debug.Stack()).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")

		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An error occurred while processing your request.")
		if gin.IsDebugging() {
			detail = detail.WithDebugInfo("panic: %v", recovered)
		}
		RenderError(c, http.StatusInternalServerError, detail)
	})
}
