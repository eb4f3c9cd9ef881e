package models

import "fmt"

// ValidationError reports bad or missing input on a citizen-facing operation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an unknown entity id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// InvalidTransitionError reports an illegal status change. Regular authority
// workflow only ever advances one step at a time; anything else goes through
// the audited override path.
type InvalidTransitionError struct {
	From IssueStatus
	To   IssueStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move issue from %q to %q", e.From, e.To)
}

// InvalidStateError reports an operation attempted in a status that does not
// allow it, e.g. feedback on an unresolved issue.
type InvalidStateError struct {
	Op     string
	Status IssueStatus
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s not allowed while issue is %q", e.Op, e.Status)
}
