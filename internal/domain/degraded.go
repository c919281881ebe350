package domain

// Degraded records that a component substituted a fallback for its real
// result. The orchestrator collects these per outcome so a response can carry
// partial results while still telling the caller which sources failed.
type Degraded struct {
	Component string `json:"component"`
	Reason    string `json:"reason"`
}

// Result pairs a component output with an optional degradation note. A nil
// Note means the value is the component's genuine result.
type Result[T any] struct {
	Value T
	Note  *Degraded
}

// OK wraps a genuine result.
func OK[T any](v T) Result[T] { return Result[T]{Value: v} }

// Fallback wraps a substituted value with the component and reason that
// produced it.
func Fallback[T any](v T, component, reason string) Result[T] {
	return Result[T]{Value: v, Note: &Degraded{Component: component, Reason: reason}}
}
