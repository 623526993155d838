package seeder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/saleor-seed/internal/saleor"
)

func runTaxClassCreate(t *testing.T, h *harness) (Result[saleor.TaxClassCreatePayload], error) {
	t.Helper()
	return execute[saleor.TaxClassCreatePayload](context.Background(), h.seeder, "Tax class", "Standard Rate", saleor.TaxClassCreate, map[string]any{
		"input": saleor.TaxClassCreateInput{Name: "Standard Rate"},
	})
}

func TestExecuteSuccess(t *testing.T) {
	h := newHarness(t, emptyData())

	res, err := runTaxClassCreate(t, h)
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Equal(t, FailureNone, res.Failure)
	require.NotNil(t, res.Payload.TaxClass)
	assert.Equal(t, "Standard Rate", res.Payload.TaxClass.Name)
	assert.Empty(t, h.stderr.String())
}

func TestExecuteClassifiesFailures(t *testing.T) {
	tests := []struct {
		name    string
		respond responder
		want    Failure
		logged  string
	}{
		{
			name:    "connectivity",
			respond: networkError(502),
			want:    FailureConnectivity,
			logged:  `Tax class: "Standard Rate" network error [HTTP 502]: Bad Gateway`,
		},
		{
			name:    "protocol",
			respond: protocolError("Cannot query field"),
			want:    FailureProtocol,
			logged:  "GraphQL error - Cannot query field (GRAPHQL_VALIDATION_FAILED)",
		},
		{
			name:    "business",
			respond: businessError("name", "Tax class with this Name already exists.", "UNIQUE"),
			want:    FailureBusiness,
			logged:  `"Standard Rate" failed - [field: name] Tax class with this Name already exists. (UNIQUE)`,
		},
		{
			name: "missing payload",
			respond: func(op saleor.Operation, vars map[string]any) (*saleor.Response, error) {
				return &saleor.Response{}, nil
			},
			want:   FailureProtocol,
			logged: "taxClassCreate returned no payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, emptyData())
			h.client.on("TaxClassCreate", "", tt.respond)

			res, err := runTaxClassCreate(t, h)
			require.NoError(t, err, "classified failures never surface as errors")
			assert.False(t, res.OK())
			assert.Equal(t, tt.want, res.Failure)
			assert.Contains(t, h.stderr.String(), tt.logged)
		})
	}
}

func TestExecuteReturnsUnexpectedErrors(t *testing.T) {
	h := newHarness(t, emptyData())
	h.client.on("TaxClassCreate", "", failWith(context.Canceled))

	_, err := runTaxClassCreate(t, h)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), `Tax class "Standard Rate"`)
}

func TestExecuteWrappedNetworkErrorIsConnectivity(t *testing.T) {
	h := newHarness(t, emptyData())
	wrapped := &saleor.NetworkError{Err: errors.New("dial tcp: connection refused")}
	h.client.on("TaxClassCreate", "", failWith(wrapped))

	res, err := runTaxClassCreate(t, h)
	require.NoError(t, err)
	assert.Equal(t, FailureConnectivity, res.Failure)
	assert.Contains(t, h.stderr.String(), "connection refused")
}

func TestFailureString(t *testing.T) {
	assert.Equal(t, "none", FailureNone.String())
	assert.Equal(t, "connectivity", FailureConnectivity.String())
	assert.Equal(t, "protocol", FailureProtocol.String())
	assert.Equal(t, "business", FailureBusiness.String())
	assert.Equal(t, "Failure(9)", Failure(9).String())
}
