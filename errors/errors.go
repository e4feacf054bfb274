package errors

import (
	// Go Internal Packages
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies an error so boundaries can map it to a response
// class without inspecting messages.
type Kind uint8

const (
	Other        Kind = iota // unclassified, treated as internal
	Invalid                  // malformed or missing input
	Unauthorized             // missing credentials
	Forbidden                // authenticated but not allowed
	NotFound                 // entity does not exist
	Conflict                 // precondition on current state failed
	Internal                 // dependency or infrastructure failure
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case Internal:
		return "internal"
	}
	return "other"
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// E builds an *Error. A nil err is allowed when the message stands alone.
func E(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Msg, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf walks the error chain and returns the first classified kind.
// Unclassified errors report Other.
func KindOf(err error) Kind {
	for err != nil {
		var e *Error
		if errors.As(err, &e) {
			if e.Kind != Other {
				return e.Kind
			}
			err = e.Err
			continue
		}
		return Other
	}
	return Other
}

// Is reports whether err carries the given kind anywhere in its chain.
func Is(kind Kind, err error) bool {
	return KindOf(err) == kind
}

// ValidationErrors accumulates per-field validation failures so a caller
// can report all of them at once.
type ValidationErrors struct {
	fields map[string][]string
}

func ValidationErrs() *ValidationErrors {
	return &ValidationErrors{fields: make(map[string][]string)}
}

func (ve *ValidationErrors) Add(field, msg string) {
	ve.fields[field] = append(ve.fields[field], msg)
}

// Err returns nil when no failures were recorded, otherwise a single
// error listing every field deterministically.
func (ve *ValidationErrors) Err() error {
	if len(ve.fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(ve.fields))
	for name := range ve.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(ve.fields[name], ", ")))
	}
	return errors.New(strings.Join(parts, "; "))
}
