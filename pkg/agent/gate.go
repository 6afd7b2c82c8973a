package agent

import "context"

// ConfirmationGate asks the user whether a batch of requested tool calls may
// run. The decision is a single yes/no covering every name in the batch.
// Implementations block until the user answers; a dismissed prompt counts as
// declined.
type ConfirmationGate interface {
	Confirm(ctx context.Context, toolNames []string) (bool, error)
}

// AutoApprove is a ConfirmationGate that approves every request. Used when
// confirmation mode is disabled.
type AutoApprove struct{}

func (AutoApprove) Confirm(ctx context.Context, toolNames []string) (bool, error) {
	return true, nil
}

// GateFunc adapts a function to the ConfirmationGate interface.
type GateFunc func(ctx context.Context, toolNames []string) (bool, error)

func (f GateFunc) Confirm(ctx context.Context, toolNames []string) (bool, error) {
	return f(ctx, toolNames)
}
