package app

import "errors"

// NotFoundError is returned when the requested entity doesn't exist on github.
type NotFoundError string

// Error implements error interface.
func (e NotFoundError) Error() string {
	return string(e) + " not found"
}

// IsNotFoundError checks if given error is caused by a missing entity.
func IsNotFoundError(err error) bool {
	var nfe NotFoundError
	return errors.As(err, &nfe)
}

// RemoteAPIError is returned when github responds with an unexpected status.
// Value is the remote's status text.
type RemoteAPIError string

// Error implements error interface.
func (e RemoteAPIError) Error() string {
	return "github api error: " + string(e)
}

// IsRemoteAPIError checks if given error is caused by an unexpected remote response.
func IsRemoteAPIError(err error) bool {
	var rae RemoteAPIError
	return errors.As(err, &rae)
}

// InvalidRequestError is special error type returned when any request params are invalid.
type InvalidRequestError string

// Error implements error interface.
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequestError checks if given error is caused by invalid request.
func IsInvalidRequestError(err error) bool {
	var ire InvalidRequestError
	return errors.As(err, &ire)
}
