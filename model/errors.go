package model

import (
	"errors"
	"fmt"
)

var (
	ErrRateLimitReached = errors.New("RATE_LIMIT_REACHED")
	ErrRateLimiter      = errors.New("RATE_LIMITER_ERROR")
	ErrInvalidData      = errors.New("INVALID_DATA_FOUND")
	ErrFetch            = errors.New("FETCH_ERROR")
	ErrInvalidCatalog   = errors.New("INVALID_CATALOG")
)

// EmptyInputError reports an operation that is undefined on an empty input,
// such as the maximum of an empty series
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: empty input", e.Op)
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewAPIError(errReason error) APIError {
	var emptyInput *EmptyInputError

	switch {
	case errors.Is(errReason, ErrRateLimitReached):
		return APIError{
			Code:    ErrRateLimitReached.Error(),
			Message: "github rate limit reached. consider using a token to increase the limit or wait few minutes and try again",
		}

	case errors.Is(errReason, ErrInvalidCatalog):
		return APIError{
			Code:    ErrInvalidCatalog.Error(),
			Message: "the catalog source returned invalid data. the previous catalog is still served",
		}

	case errors.As(errReason, &emptyInput):
		return APIError{
			Code:    "EMPTY_SERIES",
			Message: "no commit activity available to chart",
		}

	case errors.Is(errReason, ErrRateLimiter), errors.Is(errReason, ErrInvalidData), errors.Is(errReason, ErrFetch):
		return APIError{
			Code:    rootCode(errReason),
			Message: "internal server error. contact our support with the reason code for assistance",
		}
	}

	return APIError{
		Code:    "GENERIC_ERROR",
		Message: "internal server error. contact our support with the reason code for assistance",
	}
}

func rootCode(err error) string {
	for _, sentinel := range []error{ErrRateLimiter, ErrInvalidData, ErrFetch} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
