package tmdb

import "fmt"

type (
	tmdbError struct {
		StatusCode    int    `json:"status_code"`
		StatusMessage string `json:"status_message"`
	}
	FailedRequestError struct {
		httpCode int
		tmdbCode int
		message  string
	}
	NoResultError       struct{}
	UnknownRequestError struct{ reason string }
	IllegalRequestError struct{ reason string }
)

func (err *UnknownRequestError) Error() string {
	return fmt.Sprintf("unknown error occurred while communicating with TMDB: %s", err.reason)
}
func (err *IllegalRequestError) Error() string {
	return fmt.Sprintf("illegal request because %s", err.reason)
}
func (err *FailedRequestError) Error() string {
	if err.tmdbCode >= 0 {
		return fmt.Sprintf("request failure (HTTP %d, TMDB %d): %s", err.httpCode, err.tmdbCode, err.message)
	}

	return fmt.Sprintf("request failure (HTTP %d): %s", err.httpCode, err.message)
}
func (err *FailedRequestError) StatusCode() int { return err.httpCode }
func (err *NoResultError) Error() string        { return "no results returned from TMDB" }
