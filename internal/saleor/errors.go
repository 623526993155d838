package saleor

import (
	"fmt"
	"strings"
)

// Error is a business-level validation error returned inside a mutation
// payload (duplicate slug, missing required field, ...).
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e Error) String() string {
	var b strings.Builder
	if e.Field != "" {
		fmt.Fprintf(&b, "[field: %s] ", e.Field)
	}
	b.WriteString(e.Message)
	if e.Code != "" {
		fmt.Fprintf(&b, " (%s)", e.Code)
	}
	return b.String()
}

// ErrorList is embedded by every mutation payload.
type ErrorList struct {
	Errors []Error `json:"errors"`
}

func (l ErrorList) UserErrors() []Error {
	return l.Errors
}

// GraphQLError is an entry of the response envelope's "errors" array:
// the server accepted the request but rejected it at the protocol layer.
type GraphQLError struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Code returns extensions.code when the server set one.
func (e GraphQLError) Code() string {
	if e.Extensions == nil {
		return ""
	}
	if code, ok := e.Extensions["exception"].(map[string]any); ok {
		if c, ok := code["code"].(string); ok {
			return c
		}
	}
	c, _ := e.Extensions["code"].(string)
	return c
}

// NetworkError reports that a request never produced a usable GraphQL
// response: the host was unreachable, the call timed out, or the server
// answered with a non-2xx status.
type NetworkError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *NetworkError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("network error [HTTP %d]: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("network error: %s", msg)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AuthError is returned by Authenticate when no bearer token could be
// obtained.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
