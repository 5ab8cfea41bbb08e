package simulation

import "fmt"

type FailureKind string

const (
	// FailureEngine means the engine answered and said the run failed.
	FailureEngine FailureKind = "engine"
	// FailureTransport means the engine could not be reached.
	FailureTransport FailureKind = "transport"
)

// Failure is the only error Run returns.
type Failure struct {
	Kind   FailureKind
	Detail string
	Err    error
}

func (f *Failure) Error() string {
	if f.Kind == FailureTransport {
		return fmt.Sprintf("could not reach simulation engine: %s", f.Detail)
	}
	return fmt.Sprintf("simulation engine reported failure: %s", f.Detail)
}

func (f *Failure) Unwrap() error { return f.Err }

func engineFailure(detail string, err error) *Failure {
	return &Failure{Kind: FailureEngine, Detail: detail, Err: err}
}

func transportFailure(err error) *Failure {
	return &Failure{Kind: FailureTransport, Detail: err.Error(), Err: err}
}
