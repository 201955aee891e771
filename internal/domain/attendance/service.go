package attendance

import "context"

// PolicyService decides whether a check-in or check-out may proceed from where the employee is standing.
type PolicyService interface {
	EvaluateCheckIn(ctx context.Context, req EvaluateRequest) (Decision, error)
	EvaluateCheckOut(ctx context.Context, req EvaluateRequest) (Decision, error)
}
