package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/guestportal/internal/pkg/models"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// PortalError is the body guest-facing endpoints return on failure
type PortalError struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// PortalErrorResponse sends {"ok":false,"error":code}
func PortalErrorResponse(c echo.Context, statusCode int, code string) error {
	return c.JSON(statusCode, PortalError{OK: false, Error: code})
}

// DomainErrorStatus maps a domain error to its HTTP status and public code
func DomainErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrRateLimited):
		return http.StatusTooManyRequests, "rate_limited"
	case errors.Is(err, models.ErrInvalidOrExpired):
		return http.StatusBadRequest, "invalid_or_expired"
	case errors.Is(err, models.ErrInvalidVoucher):
		return http.StatusBadRequest, "invalid_voucher"
	case errors.Is(err, models.ErrInvalidMAC):
		return http.StatusBadRequest, "invalid_mac"
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, models.ErrSignatureMismatch):
		return http.StatusUnauthorized, "signature_mismatch"
	case errors.Is(err, models.ErrUnsignedEvent):
		return http.StatusUnauthorized, "signature_required"
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, models.ErrTenantInactive):
		return http.StatusForbidden, "tenant_inactive"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// DomainErrorResponse sends the portal error body for err
func DomainErrorResponse(c echo.Context, err error) error {
	status, code := DomainErrorStatus(err)
	return PortalErrorResponse(c, status, code)
}
