package reconcile

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

// Engine converges a desired task definition state against the remote
// store. It holds no state of its own; every run performs one lookup and
// at most one mutating call.
type Engine struct {
	store  Store
	logger zerolog.Logger
}

// NewEngine creates a reconciliation engine backed by the given store.
func NewEngine(store Store, logger zerolog.Logger) *Engine {
	return &Engine{store: store, logger: logger}
}

// Reconcile resolves the lookup target for the request, looks up the
// existing definition, and applies the requested intent. Mutating calls
// are suppressed when req.DryRun is set, but the changed verdict still
// reflects what would have happened.
func (e *Engine) Reconcile(ctx context.Context, req Request) (Result, error) {
	switch req.Intent {
	case IntentPresent, IntentUpdate, IntentAbsent:
	default:
		return Result{}, fmt.Errorf("unknown intent %q", req.Intent)
	}

	target, err := lookupTarget(req)
	if err != nil {
		return Result{}, err
	}

	existing, err := e.store.Describe(ctx, target)
	if err != nil {
		return Result{}, err
	}
	e.logger.Debug().
		Str("target", target).
		Str("intent", string(req.Intent)).
		Bool("found", existing != nil).
		Msg("described task definition")

	switch req.Intent {
	case IntentPresent:
		return e.applyPresent(ctx, req, existing)
	case IntentUpdate:
		return e.applyUpdate(ctx, req, existing, target)
	default:
		return e.applyAbsent(ctx, req, existing, target)
	}
}

// lookupTarget resolves the identifier to describe, per intent. Absent
// accepts an ARN or family:revision; present always looks up the family
// (latest active revision); update accepts ARN or family, with an
// optional revision appended.
func lookupTarget(req Request) (string, error) {
	switch req.Intent {
	case IntentAbsent:
		if req.ARN != "" {
			return req.ARN, nil
		}
		if req.Family != "" && req.Revision > 0 {
			return req.Family + ":" + strconv.Itoa(req.Revision), nil
		}
		return "", &MissingIdentifierError{Intent: IntentAbsent}
	case IntentPresent:
		if req.Family == "" {
			return "", &MissingFieldError{Field: "family"}
		}
		if req.Containers == nil {
			return "", &MissingFieldError{Field: "containers"}
		}
		return req.Family, nil
	default:
		target := req.ARN
		if target == "" {
			target = req.Family
		}
		if target == "" {
			return "", &MissingIdentifierError{Intent: IntentUpdate}
		}
		if req.Revision > 0 {
			target += ":" + strconv.Itoa(req.Revision)
		}
		return target, nil
	}
}

func (e *Engine) applyPresent(ctx context.Context, req Request, existing *TaskDefinition) (Result, error) {
	if existing != nil && existing.Status == StatusActive {
		return Result{Changed: false, Definition: existing}, nil
	}

	if req.DryRun {
		return Result{Changed: true, Definition: existing}, nil
	}

	volumes := req.Volumes
	if volumes == nil {
		volumes = []Spec{}
	}
	e.logger.Info().Str("family", req.Family).Msg("registering task definition")
	def, err := e.store.Register(ctx, req.Family, req.Containers, volumes)
	if err != nil {
		return Result{}, err
	}
	return Result{Changed: true, Definition: def}, nil
}

func (e *Engine) applyUpdate(ctx context.Context, req Request, existing *TaskDefinition, target string) (Result, error) {
	if existing == nil {
		return Result{}, &NoSuchDefinitionError{Target: target}
	}

	// A sub-resource list that was not supplied carries forward unchanged;
	// a supplied list is merged into the existing one by name.
	containers := existing.Containers
	if req.Containers != nil {
		containers = MergeKeyed(existing.Containers, req.Containers, "name")
	}
	volumes := existing.Volumes
	if req.Volumes != nil {
		volumes = MergeKeyed(existing.Volumes, req.Volumes, "name")
	}
	family := req.Family
	if family == "" {
		family = existing.Family
	}

	// An update always produces a new revision: the store assigns revision
	// numbers on every register call, so changed is unconditional.
	if req.DryRun {
		return Result{Changed: true, Definition: existing}, nil
	}
	e.logger.Info().
		Str("family", family).
		Int("revision", existing.Revision).
		Msg("registering new task definition revision")
	def, err := e.store.Register(ctx, family, containers, volumes)
	if err != nil {
		return Result{}, err
	}
	return Result{Changed: true, Definition: def}, nil
}

func (e *Engine) applyAbsent(ctx context.Context, req Request, existing *TaskDefinition, target string) (Result, error) {
	if existing == nil {
		return Result{Changed: false}, nil
	}
	if existing.Status == StatusInactive {
		return Result{Changed: false, Definition: existing}, nil
	}

	if req.DryRun {
		return Result{Changed: true, Definition: existing}, nil
	}
	e.logger.Info().Str("target", target).Msg("deregistering task definition")
	def, err := e.store.Deregister(ctx, target)
	if err != nil {
		return Result{}, err
	}
	return Result{Changed: true, Definition: def}, nil
}
