package seeder

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rana718/saleor-seed/internal/saleor"
)

// Failure names the layer at which a mutation failed.
type Failure int

const (
	FailureNone Failure = iota
	FailureConnectivity
	FailureProtocol
	FailureBusiness
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureConnectivity:
		return "connectivity"
	case FailureProtocol:
		return "protocol"
	case FailureBusiness:
		return "business"
	default:
		return fmt.Sprintf("Failure(%d)", int(f))
	}
}

// Result is the outcome of one mutation. Runners branch on OK only; the
// failure has already been logged by the time they see it.
type Result[P saleor.Payload] struct {
	Payload P
	Failure Failure
}

func (r Result[P]) OK() bool {
	return r.Failure == FailureNone
}

// execute runs one mutation and classifies the outcome. Connectivity,
// protocol and business failures are logged against kind/name and come
// back as a failed Result with a nil error. Anything else is returned as
// an error for the section guard.
func execute[P saleor.Payload](ctx context.Context, s *Seeder, kind, name string, op saleor.Operation, vars map[string]any) (Result[P], error) {
	var res Result[P]

	resp, err := s.client.Do(ctx, op, vars)
	if err != nil {
		var netErr *saleor.NetworkError
		if errors.As(err, &netErr) {
			s.report.NetworkError(kind, name, netErr)
			res.Failure = FailureConnectivity
			return res, nil
		}
		return res, fmt.Errorf("%s %q: %w", kind, name, err)
	}

	if len(resp.Errors) > 0 {
		s.report.ProtocolErrors(kind, name, resp.Errors)
		res.Failure = FailureProtocol
		return res, nil
	}

	payload, err := saleor.Decode[P](resp, op)
	if err != nil {
		if errors.Is(err, saleor.ErrMissingPayload) {
			s.report.ProtocolErrors(kind, name, []saleor.GraphQLError{{Message: op.Field + " returned no payload"}})
			res.Failure = FailureProtocol
			return res, nil
		}
		return res, fmt.Errorf("%s %q: %w", kind, name, err)
	}
	res.Payload = payload

	if errs := payload.UserErrors(); len(errs) > 0 {
		s.report.UserErrors(kind, name, errs)
		res.Failure = FailureBusiness
	}
	return res, nil
}
