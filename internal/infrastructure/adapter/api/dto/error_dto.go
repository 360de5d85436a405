package dto

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Fields  []domainerr.FieldError `json:"fields,omitempty"`
}

// HTTPStatus maps a domain error to its HTTP status code
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsConflictError(err):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrProofTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domainerr.ErrUnsupportedProof):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, domainerr.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	case domainerr.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the response body for err. Server errors never leak their cause.
func NewErrorResponse(err error) ErrorResponse {
	status := HTTPStatus(err)
	switch {
	case status == http.StatusServiceUnavailable:
		return ErrorResponse{Code: domainerr.CodeDatabaseConnection, Message: "Service temporarily unavailable"}
	case status >= http.StatusInternalServerError:
		return ErrorResponse{Code: domainerr.CodeInternalServer, Message: "Internal server error"}
	}

	var verr *domainerr.ValidationError
	if errors.As(err, &verr) {
		return ErrorResponse{Code: domainerr.CodeValidation, Message: "Validation failed", Fields: verr.Fields}
	}
	return ErrorResponse{Code: domainerr.ErrorCode(err), Message: err.Error()}
}

// InvalidRequest builds a 400 body for a request that could not be decoded
func InvalidRequest(message string) ErrorResponse {
	return ErrorResponse{Code: domainerr.CodeValidation, Message: message}
}
