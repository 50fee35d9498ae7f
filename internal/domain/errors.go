package domain

import (
	"errors"
	"fmt"
)

// MinQueryLength is the shortest accepted search query
const MinQueryLength = 2

// Sentinel errors for domain operations
var (
	// ErrRemoteService matches any RemoteServiceError via errors.Is
	ErrRemoteService = errors.New("remote service error")

	// ErrServiceUnreachable indicates the metadata API could not be reached
	ErrServiceUnreachable = errors.New("metadata service is unreachable")

	// ErrAPIKeyMissing indicates no API credential is configured
	ErrAPIKeyMissing = errors.New("TMDB API key is not configured")

	// ErrQueryTooShort is returned for search queries under MinQueryLength
	ErrQueryTooShort = &MalformedInputError{Field: "query", Reason: "Au moins 2 caractères."}
)

// RemoteServiceError is a non-success HTTP status from the metadata API
type RemoteServiceError struct {
	StatusCode int
	URL        string
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("TMDB error %d", e.StatusCode)
}

// Is lets errors.Is(err, ErrRemoteService) match
func (e *RemoteServiceError) Is(target error) bool {
	return target == ErrRemoteService
}

// MalformedInputError is user input rejected before any network call
type MalformedInputError struct {
	Field  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	return e.Reason
}
