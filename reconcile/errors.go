package reconcile

import "fmt"

// MissingIdentifierError indicates a request that does not carry enough
// information to resolve a lookup target.
type MissingIdentifierError struct {
	Intent Intent
}

func (e *MissingIdentifierError) Error() string {
	if e.Intent == IntentAbsent {
		return "an arn, or a family and revision, must be specified"
	}
	return "an arn or family must be specified"
}

// MissingFieldError indicates a required request field was not supplied.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s must be specified", e.Field)
}

// NoSuchDefinitionError indicates an update against a target with no
// existing task definition to update.
type NoSuchDefinitionError struct {
	Target string
}

func (e *NoSuchDefinitionError) Error() string {
	return fmt.Sprintf("no existing task definition to update: %s", e.Target)
}
