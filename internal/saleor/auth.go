package saleor

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

type AuthMode string

const (
	AuthAppToken AuthMode = "app token"
	AuthPassword AuthMode = "tokenCreate"
)

// Credentials holds either a pre-issued token or an account login.
// Token wins when both are set.
type Credentials struct {
	Token    string
	Email    string
	Password string
}

func (c Credentials) Mode() (AuthMode, bool) {
	switch {
	case c.Token != "":
		return AuthAppToken, true
	case c.Email != "" && c.Password != "":
		return AuthPassword, true
	default:
		return "", false
	}
}

// Authenticate obtains a bearer token and attaches it to the client.
func (c *Client) Authenticate(ctx context.Context, creds Credentials) (AuthMode, error) {
	mode, ok := creds.Mode()
	if !ok {
		return "", &AuthError{Reason: "no auth configured: set SALEOR_APP_TOKEN or both SALEOR_EMAIL and SALEOR_PASSWORD"}
	}

	if mode == AuthAppToken {
		c.SetToken(creds.Token)
		return mode, nil
	}

	resp, err := c.Do(ctx, TokenCreate, map[string]any{
		"email":    creds.Email,
		"password": creds.Password,
	})
	if err != nil {
		var netErr *NetworkError
		if errors.As(err, &netErr) {
			reason := "network error connecting to Saleor"
			if netErr.StatusCode == http.StatusMethodNotAllowed {
				reason += " (hint: SALEOR_API_URL must end with /graphql/)"
			}
			return "", &AuthError{Reason: reason, Err: err}
		}
		return "", &AuthError{Reason: "token request failed", Err: err}
	}

	if len(resp.Errors) > 0 {
		msgs := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			msgs = append(msgs, e.Message)
		}
		return "", &AuthError{Reason: "auth failed: " + strings.Join(msgs, ", ")}
	}

	payload, err := Decode[TokenCreatePayload](resp, TokenCreate)
	if err != nil {
		return "", &AuthError{Reason: "tokenCreate returned no payload", Err: err}
	}
	if errs := payload.UserErrors(); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Message)
		}
		return "", &AuthError{Reason: "tokenCreate failed: " + strings.Join(msgs, ", ")}
	}
	if payload.Token == "" {
		return "", &AuthError{Reason: "tokenCreate returned no token"}
	}

	c.SetToken(payload.Token)
	return mode, nil
}
