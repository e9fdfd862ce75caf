package employees

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidCommand = errors.New("invalid employee command")
	ErrStore          = errors.New("employee store failure")
)

// MapHTTPStatus maps domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidCommand) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
