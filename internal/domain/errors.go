package domain

import (
	"errors"
	"sort"
	"strings"
)

// Domain errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrNotAuthenticated  = errors.New("no authenticated identity")
)

// ValidationErrors maps a field name to a user-facing message. All
// invalid fields are collected before the error is returned, so the
// form can show every problem at once.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
