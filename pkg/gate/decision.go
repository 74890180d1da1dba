package gate

import "strings"

// Status is the tagged outcome of a gate evaluation.
type Status int

const (
	// StatusLoading means the principal has not resolved yet; no
	// decision can be made and none is implied.
	StatusLoading Status = iota

	// StatusUnauthenticated means no principal is present.
	StatusUnauthenticated

	// StatusUnauthorized means a principal is present but failed the
	// configured conditions.
	StatusUnauthorized

	// StatusAuthorized means the principal passed.
	StatusAuthorized
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusUnauthorized:
		return "unauthorized"
	case StatusAuthorized:
		return "authorized"
	default:
		return "unknown"
	}
}

// Condition names a kind of gate requirement, used in denial
// explanations.
type Condition string

const (
	ConditionPermission   Condition = "permission"
	ConditionRole         Condition = "role"
	ConditionAnyRole      Condition = "any_role"
	ConditionOrganization Condition = "organization"
	ConditionPredicate    Condition = "predicate"
)

// Decision is the result of evaluating a gate for a principal.
type Decision struct {
	Status Status

	// Failed lists the condition kinds that did not pass. Empty unless
	// Status is StatusUnauthorized.
	Failed []Condition
}

// Allowed reports whether the gate passed.
func (d Decision) Allowed() bool {
	return d.Status == StatusAuthorized
}

// DenialMessage builds a generic denial explanation from the condition
// kinds that failed. It intentionally names only requirement kinds, not
// the specific roles or permissions involved.
func (d Decision) DenialMessage() string {
	if d.Status != StatusUnauthorized {
		return ""
	}
	if len(d.Failed) == 0 {
		return "access denied"
	}

	kinds := make([]string, len(d.Failed))
	for i, c := range d.Failed {
		kinds[i] = string(c)
	}
	return "access denied: unmet " + strings.Join(kinds, ", ") + " requirement(s)"
}
