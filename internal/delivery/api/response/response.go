// Package response writes the JSON envelopes and navigation responses of the API.
package response

import (
	"net/http"

	deliverycontext "pixorva/internal/delivery/context"
	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/errors"

	"github.com/labstack/echo/v4"
)

// retryAfterSeconds is sent with the loading interstitial.
const retryAfterSeconds = "1"

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-facing message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// RedirectPayload is the body of a navigation response.
type RedirectPayload struct {
	RedirectTo string `json:"redirect_to"`
	Result     any    `json:"result,omitempty"`
}

// LoadingPayload is the body of the loading interstitial.
type LoadingPayload struct {
	State string `json:"state"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Redirect sends the client to target with 303 See Other and names the target in the body.
func Redirect(c echo.Context, target string) error {
	return RedirectWithResult(c, target, nil)
}

// RedirectWithResult is Redirect carrying the result of the action that led to it.
func RedirectWithResult(c echo.Context, target string, result any) error {
	c.Response().Header().Set(echo.HeaderLocation, target)

	return c.JSON(http.StatusSeeOther, SuccessResponse{
		Data: RedirectPayload{RedirectTo: target, Result: result},
		Meta: meta(c),
	})
}

// Loading answers 202 with a retry hint while the session view is still settling.
func Loading(c echo.Context) error {
	c.Response().Header().Set("Retry-After", retryAfterSeconds)
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.JSON(http.StatusAccepted, SuccessResponse{
		Data: LoadingPayload{State: "loading"},
		Meta: meta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError converts domain errors to HTTP responses and passes anything else to the error handler
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		var details any
		if appErr.Details() != "" {
			details = appErr.Details()
		}

		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
	}

	return errors.WithStack(err)
}
