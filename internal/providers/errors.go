package providers

import (
	"errors"
	"fmt"
)

// SourceFetchError reports a failure reaching an upstream source.
type SourceFetchError struct {
	Source     string
	URL        string
	StatusCode int
	Err        error
}

func (e *SourceFetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: fetch %s: unexpected status %d", e.Source, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s: fetch %s: %v", e.Source, e.URL, e.Err)
}

func (e *SourceFetchError) Unwrap() error {
	return e.Err
}

// SourceParseError reports an upstream payload that could not be decoded or normalized.
type SourceParseError struct {
	Source string
	URL    string
	Err    error
}

func (e *SourceParseError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("%s: parse: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("%s: parse %s: %v", e.Source, e.URL, e.Err)
}

func (e *SourceParseError) Unwrap() error {
	return e.Err
}

// AsFetchError attempts to unwrap an error into a SourceFetchError.
func AsFetchError(err error) (*SourceFetchError, bool) {
	var fetchErr *SourceFetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}

// AsParseError attempts to unwrap an error into a SourceParseError.
func AsParseError(err error) (*SourceParseError, bool) {
	var parseErr *SourceParseError
	if errors.As(err, &parseErr) {
		return parseErr, true
	}
	return nil, false
}
