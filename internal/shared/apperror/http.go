package apperror

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP resolves any error to the status/code/message triple handlers
// write out. Unknown errors become 500 carrying the underlying message.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		httpErr := HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
		if appErr.Err != nil {
			httpErr.Details = appErr.Err.Error()
		}
		return httpErr
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: err.Error(),
	}
}
