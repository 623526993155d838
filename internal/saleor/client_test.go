package saleor

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Header http.Header
	Body   request
}

func newTestServer(t *testing.T, status int, body string, seen *[]capturedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var req request
		assert.NoError(t, json.Unmarshal(raw, &req))
		if seen != nil {
			*seen = append(*seen, capturedRequest{Header: r.Header.Clone(), Body: req})
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDoSendsOperation(t *testing.T) {
	var seen []capturedRequest
	srv := newTestServer(t, http.StatusOK, `{"data":{"taxClassCreate":{"taxClass":{"id":"VGF4OjE=","name":"Standard"},"errors":[]}}}`, &seen)

	client := NewClient(Options{Endpoint: srv.URL, RunID: "run-1"})
	client.SetToken("secret")

	resp, err := client.Do(context.Background(), TaxClassCreate, map[string]any{
		"input": TaxClassCreateInput{Name: "Standard"},
	})
	require.NoError(t, err)
	require.Len(t, seen, 1)

	got := seen[0]
	assert.Equal(t, "TaxClassCreate", got.Body.OperationName)
	assert.Contains(t, got.Body.Query, "taxClassCreate(input: $input)")
	assert.Equal(t, map[string]any{"name": "Standard"}, got.Body.Variables["input"])
	assert.Equal(t, "Bearer secret", got.Header.Get("Authorization"))
	assert.Equal(t, "run-1/TaxClassCreate", got.Header.Get("X-Request-ID"))

	payload, err := Decode[TaxClassCreatePayload](resp, TaxClassCreate)
	require.NoError(t, err)
	require.NotNil(t, payload.TaxClass)
	assert.Equal(t, "VGF4OjE=", payload.TaxClass.ID)
	assert.Empty(t, payload.UserErrors())
}

func TestDoWithoutTokenSendsNoAuthorization(t *testing.T) {
	var seen []capturedRequest
	srv := newTestServer(t, http.StatusOK, `{"data":{}}`, &seen)

	client := NewClient(Options{Endpoint: srv.URL})
	_, err := client.Do(context.Background(), MenuCreate, nil)
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Empty(t, seen[0].Header.Get("Authorization"))
	assert.NotEmpty(t, client.RunID())
}

func TestDoNon2xxIsNetworkError(t *testing.T) {
	srv := newTestServer(t, http.StatusMethodNotAllowed, `{"errors":[{"message":"Method not allowed"}]}`, nil)

	client := NewClient(Options{Endpoint: srv.URL})
	_, err := client.Do(context.Background(), MenuCreate, nil)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.StatusMethodNotAllowed, netErr.StatusCode)
	assert.Equal(t, "Method not allowed", netErr.Message)
	assert.Contains(t, netErr.Error(), "HTTP 405")
}

func TestDoUnreachableIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(Options{Endpoint: url})
	_, err := client.Do(context.Background(), MenuCreate, nil)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Zero(t, netErr.StatusCode)
	assert.NotNil(t, errors.Unwrap(netErr))
}

func TestDoKeepsProtocolErrors(t *testing.T) {
	body := `{"data":{"menuCreate":null},"errors":[{"message":"You need one of the following permissions: MANAGE_MENUS","extensions":{"exception":{"code":"PermissionDenied"}}}]}`
	srv := newTestServer(t, http.StatusOK, body, nil)

	client := NewClient(Options{Endpoint: srv.URL})
	resp, err := client.Do(context.Background(), MenuCreate, nil)
	require.NoError(t, err)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "PermissionDenied", resp.Errors[0].Code())

	_, err = Decode[MenuCreatePayload](resp, MenuCreate)
	assert.ErrorIs(t, err, ErrMissingPayload)
}

func TestDoMalformedBody(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `<html>oops</html>`, nil)

	client := NewClient(Options{Endpoint: srv.URL})
	_, err := client.Do(context.Background(), MenuCreate, nil)
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr), "an unreadable 2xx body is a connectivity failure")
	assert.Equal(t, http.StatusOK, netErr.StatusCode)
	assert.Equal(t, "invalid response body", netErr.Message)
	assert.Contains(t, netErr.Unwrap().Error(), "failed to decode MenuCreate response")
	assert.Equal(t, "network error [HTTP 200]: invalid response body", err.Error())
}

func TestDoCancelledContext(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"data":{}}`, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(Options{Endpoint: srv.URL})
	_, err := client.Do(ctx, MenuCreate, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeUserErrors(t *testing.T) {
	resp := &Response{Data: map[string]jsoniter.RawMessage{
		"pageCreate": jsoniter.RawMessage(`{"page":null,"errors":[{"field":"slug","message":"Page with this Slug already exists.","code":"UNIQUE"}]}`),
	}}

	payload, err := Decode[PageCreatePayload](resp, PageCreate)
	require.NoError(t, err)
	assert.Nil(t, payload.Page)
	require.Len(t, payload.UserErrors(), 1)
	assert.Equal(t, `[field: slug] Page with this Slug already exists. (UNIQUE)`, payload.UserErrors()[0].String())
}

func TestGraphQLErrorCode(t *testing.T) {
	assert.Equal(t, "", GraphQLError{Message: "x"}.Code())
	assert.Equal(t, "GRAPHQL_VALIDATION_FAILED", GraphQLError{Extensions: map[string]any{"code": "GRAPHQL_VALIDATION_FAILED"}}.Code())
}

func TestOperationsAreComplete(t *testing.T) {
	ops := []Operation{
		TokenCreate, TaxClassCreate, WarehouseCreate, ChannelCreate,
		ShippingZoneCreate, ShippingPriceCreate, ShippingMethodChannelListingUpdate,
		AttributeCreate, ProductTypeCreate, ProductAttributeAssign, CategoryCreate,
		CollectionCreate, CollectionChannelListingUpdate, PageTypeCreate,
		PageAttributeAssign, PageCreate, MenuCreate, MenuItemCreate,
	}
	for _, op := range ops {
		assert.True(t, strings.Contains(op.Document, "mutation "+op.Name+"("), op.Name)
		assert.True(t, strings.Contains(op.Document, op.Field+"("), op.Name)
	}
}
