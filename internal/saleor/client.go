package saleor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Operation is a named GraphQL mutation. Field is the top-level selection
// the payload is read from.
type Operation struct {
	Name     string
	Field    string
	Document string
}

// Payload is implemented by every mutation result type.
type Payload interface {
	UserErrors() []Error
}

// Response is the decoded GraphQL envelope. Data keeps each top-level field
// raw so callers decode only the payload they asked for.
type Response struct {
	Data   map[string]jsoniter.RawMessage `json:"data"`
	Errors []GraphQLError                 `json:"errors"`
}

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

type Options struct {
	Endpoint string
	Timeout  time.Duration
	RunID    string
}

// Client sends mutations to a Saleor GraphQL endpoint.
type Client struct {
	endpoint string
	runID    string
	http     *resty.Client
}

func NewClient(opts Options) *Client {
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	http := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "saleor-seed/1.0").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)
	if opts.Timeout > 0 {
		http.SetTimeout(opts.Timeout)
	}

	return &Client{
		endpoint: opts.Endpoint,
		runID:    runID,
		http:     http,
	}
}

func (c *Client) RunID() string {
	return c.runID
}

// SetToken attaches the bearer token to every subsequent request.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

// Do executes one operation. Connectivity failures, including a 2xx body
// that is not a GraphQL envelope, come back as *NetworkError; protocol
// errors are left in Response.Errors for the caller to classify. The only
// other error is ctx's own.
func (c *Client) Do(ctx context.Context, op Operation, vars map[string]any) (*Response, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", c.runID+"/"+op.Name).
		SetBody(request{Query: op.Document, OperationName: op.Name, Variables: vars}).
		Post(c.endpoint)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &NetworkError{Err: err}
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		return nil, &NetworkError{
			StatusCode: status,
			Message:    statusMessage(resp),
		}
	}

	var out Response
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, &NetworkError{
			StatusCode: status,
			Message:    "invalid response body",
			Err:        fmt.Errorf("failed to decode %s response: %w", op.Name, err),
		}
	}
	return &out, nil
}

// statusMessage prefers the GraphQL error messages a non-2xx body may
// carry over the bare status text.
func statusMessage(resp *resty.Response) string {
	var body Response
	if err := json.Unmarshal(resp.Body(), &body); err == nil && len(body.Errors) > 0 {
		msgs := make([]string, 0, len(body.Errors))
		for _, e := range body.Errors {
			msgs = append(msgs, e.Message)
		}
		return strings.Join(msgs, ", ")
	}
	if text := strings.TrimSpace(resp.Status()); text != "" {
		return text
	}
	return fmt.Sprintf("unexpected status %d", resp.StatusCode())
}

// ErrMissingPayload is returned by Decode when the response has no data for
// the operation's field.
var ErrMissingPayload = errors.New("response has no payload")

// Decode extracts the operation's payload from a response.
func Decode[P Payload](resp *Response, op Operation) (P, error) {
	var p P
	if resp == nil {
		return p, ErrMissingPayload
	}
	raw, ok := resp.Data[op.Field]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return p, ErrMissingPayload
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("failed to decode %s payload: %w", op.Field, err)
	}
	return p, nil
}
