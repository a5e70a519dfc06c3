package triage

import (
	"errors"
	"fmt"
)

// ErrEmptyTranscript is returned by Assess when the transcript is empty or
// whitespace only. No outbound call is made in that case.
var ErrEmptyTranscript = errors.New("transcript cannot be empty")

// ServiceError indicates the outbound completion call failed (network, auth,
// rate limit, non-2xx). Assess does not retry; the caller owns retry policy.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("triage service call failed: %v", e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// ParseError indicates the completion call succeeded but the reply body was
// not a JSON object matching the assessment schema. RawBody carries the
// unparsed reply for diagnostics.
type ParseError struct {
	RawBody string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON in triage response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
