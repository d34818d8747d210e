package domain

import (
	"errors"
	"fmt"
)

// LookupMissError marks a reference-data miss (city, airport, route).
// Callers are expected to degrade to a default with a warning, not fail.
type LookupMissError struct {
	Kind string
	Name string
	Err  error
}

func (e LookupMissError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("%q not found", e.Name)
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func (e LookupMissError) Unwrap() error { return e.Err }

// RemoteUnavailableError covers timeouts, bad statuses and malformed
// payloads from the remote authority or geocoder. It is logged and
// silently replaced by the local fallback path.
type RemoteUnavailableError struct {
	Service string
	Err     error
}

func (e RemoteUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s unavailable", e.Service)
	}
	return fmt.Sprintf("%s unavailable: %v", e.Service, e.Err)
}

func (e RemoteUnavailableError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsLookupMiss(err error) bool {
	var target LookupMissError
	return errors.As(err, &target)
}

func IsRemoteUnavailable(err error) bool {
	var target RemoteUnavailableError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
