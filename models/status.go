package models

// IssueStatus enum. The order of statusOrder is the lifecycle: an issue moves
// strictly forward, one step at a time, driven by an authority actor.
type IssueStatus string

const (
	StatusSubmitted   IssueStatus = "Submitted"
	StatusUnderReview IssueStatus = "Under Review"
	StatusAssigned    IssueStatus = "Assigned"
	StatusResolved    IssueStatus = "Resolved"
)

var statusOrder = []IssueStatus{
	StatusSubmitted,
	StatusUnderReview,
	StatusAssigned,
	StatusResolved,
}

// ParseStatus validates a wire string against the closed enumeration.
func ParseStatus(s string) (IssueStatus, error) {
	for _, st := range statusOrder {
		if string(st) == s {
			return st, nil
		}
	}
	return "", &ValidationError{Field: "status", Reason: "unknown status " + s}
}

func (s IssueStatus) index() int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the successor status. ok is false at the terminal status or
// for a status outside the enumeration.
func (s IssueStatus) Next() (IssueStatus, bool) {
	i := s.index()
	if i < 0 || i == len(statusOrder)-1 {
		return "", false
	}
	return statusOrder[i+1], true
}

// CanAdvanceTo reports whether to is the immediate successor of s. The
// authority workflow never skips and never regresses.
func (s IssueStatus) CanAdvanceTo(to IssueStatus) bool {
	next, ok := s.Next()
	return ok && next == to
}

// AllowsSchedule reports whether work dates may be set at this status.
// Scheduling starts once an issue has been assigned.
func (s IssueStatus) AllowsSchedule() bool {
	return s.index() >= StatusAssigned.index()
}

// Terminal reports whether s is the final lifecycle status.
func (s IssueStatus) Terminal() bool {
	return s == StatusResolved
}

// StatusStep describes one position of the lifecycle relative to an issue's
// current status, for rendering a step tracker.
type StatusStep struct {
	Status    IssueStatus `json:"status"`
	Completed bool        `json:"completed"`
	Current   bool        `json:"current"`
	Pending   bool        `json:"pending"`
}

// StatusSteps returns the full lifecycle annotated against current, so a
// caller can render the tracker without re-deriving the order.
func StatusSteps(current IssueStatus) []StatusStep {
	cur := current.index()
	steps := make([]StatusStep, len(statusOrder))
	for i, st := range statusOrder {
		steps[i] = StatusStep{
			Status:    st,
			Completed: i < cur,
			Current:   i == cur,
			Pending:   i > cur,
		}
	}
	return steps
}
