package reconcile

import "context"

// Store is the remote task definition store the engine reconciles against.
type Store interface {
	// Describe looks up a task definition by ARN, family, or
	// family:revision. A missing definition is reported as (nil, nil),
	// never as an error.
	Describe(ctx context.Context, id string) (*TaskDefinition, error)

	// Register creates a new task definition revision in the family. The
	// store assigns the revision number and sets status ACTIVE.
	Register(ctx context.Context, family string, containers, volumes []Spec) (*TaskDefinition, error)

	// Deregister retires the identified revision: status becomes INACTIVE,
	// the revision itself is retained.
	Deregister(ctx context.Context, id string) (*TaskDefinition, error)
}
