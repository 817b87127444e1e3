package reconcile

// Spec is a single container or volume definition: an open set of fields
// keyed by name. Fields other than the key are opaque to the engine and
// pass through to the remote store untouched.
type Spec map[string]any

// Name returns the spec's "name" field, or "" if absent or not a string.
func (s Spec) Name() string {
	v, _ := s["name"].(string)
	return v
}

// Status is the lifecycle status of a task definition revision.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// TaskDefinition is the remote resource: one immutable revision of a family.
type TaskDefinition struct {
	ARN        string `json:"taskDefinitionArn,omitempty"`
	Family     string `json:"family"`
	Revision   int    `json:"revision"`
	Status     Status `json:"status"`
	Containers []Spec `json:"containerDefinitions"`
	Volumes    []Spec `json:"volumes"`
}

// Intent is the desired end state of a reconciliation run.
type Intent string

const (
	IntentPresent Intent = "present"
	IntentUpdate  Intent = "update"
	IntentAbsent  Intent = "absent"
)

// Request describes one reconciliation run. A nil Containers or Volumes
// slice means "not supplied"; an empty non-nil slice is a supplied empty
// list, which is significant for present (required) and update (merge
// target).
type Request struct {
	Intent     Intent
	ARN        string
	Family     string
	Revision   int // 0 means unset
	Containers []Spec
	Volumes    []Spec
	DryRun     bool
}

// Result is the verdict of a reconciliation run. Definition is nil when
// nothing exists remotely, or when a dry run skipped the registration that
// would have produced one.
type Result struct {
	Changed    bool            `json:"changed"`
	Definition *TaskDefinition `json:"taskdefinition,omitempty"`
}
