package peco

import (
	"errors"
	"fmt"
)

// InvalidCountyError is returned when a requested county is not one of the
// six codes in PECO's service territory. It is raised before any network
// call is made.
type InvalidCountyError struct {
	County string
}

func (e *InvalidCountyError) Error() string {
	return fmt.Sprintf("%s is not a valid county", e.County)
}

// FetchError is returned when the outage endpoint could not be reached or
// answered with a non-success status. The client never retries; callers that
// want retry behavior apply it themselves.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a response body was retrieved but did not
// contain the expected structure, either invalid JSON or a payload missing
// the section being queried. Usually this means the upstream format changed.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing outage data: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parsing outage data: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Meter check failures.
var (
	// ErrIncompatibleMeter is returned when the account's meter is not a
	// smart meter and cannot be pinged.
	ErrIncompatibleMeter = errors.New("meter is not compatible with the API")

	// ErrUnresponsiveMeter is returned when the meter exists but did not
	// answer the precheck ping.
	ErrUnresponsiveMeter = errors.New("meter is not responding")
)
