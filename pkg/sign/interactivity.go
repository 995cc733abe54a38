package sign

import (
	"fmt"

	"github.com/keep-network/stark-signer/pkg/ecdsa"
)

// InteractivityKind distinguishes the situations a signature is requested in.
type InteractivityKind int

const (
	// Other covers every signing request not tied to a transaction execution,
	// such as signing an off-chain message.
	Other InteractivityKind = iota
	// Execution is a request to authorise the execution of contract calls.
	Execution
)

func (ik InteractivityKind) String() string {
	switch ik {
	case Other:
		return "other"
	case Execution:
		return "execution"
	default:
		return fmt.Sprintf("unknown(%d)", int(ik))
	}
}

// Call is a single contract invocation within a transaction execution.
type Call struct {
	To       ecdsa.Felt
	Selector ecdsa.Felt
	Calldata []ecdsa.Felt
}

// InteractivityContext describes what a signature is requested for. Signers
// may use it to decide whether the user has to approve the request.
type InteractivityContext struct {
	Kind  InteractivityKind
	Calls []Call
}

// ExecutionContext returns a context of a request to authorise the given
// calls.
func ExecutionContext(calls []Call) InteractivityContext {
	return InteractivityContext{Kind: Execution, Calls: calls}
}

// OtherContext returns a context of a request not tied to an execution.
func OtherContext() InteractivityContext {
	return InteractivityContext{Kind: Other}
}
