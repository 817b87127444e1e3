package awsecs

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"

	"github.com/e6qu/ecsdef/reconcile"
)

// Store implements reconcile.Store against the ECS task definition API.
type Store struct {
	client *ecs.Client
	logger zerolog.Logger
}

// NewStore creates a store backed by the given AWS clients.
func NewStore(clients *Clients, logger zerolog.Logger) *Store {
	return &Store{client: clients.ECS, logger: logger}
}

// Describe looks up a task definition. A client-side API error (the shape
// ECS reports for an unknown family, revision, or ARN) is folded into
// (nil, nil): whether the definition exists is the question being asked,
// not a failure. Transport errors still propagate.
func (s *Store) Describe(ctx context.Context, id string) (*reconcile.TaskDefinition, error) {
	out, err := s.client.DescribeTaskDefinition(ctx, &ecs.DescribeTaskDefinitionInput{
		TaskDefinition: aws.String(id),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return fromTaskDefinition(out.TaskDefinition)
}

// Register creates a new revision in the family. ECS assigns the revision
// number and sets status ACTIVE.
func (s *Store) Register(ctx context.Context, family string, containers, volumes []reconcile.Spec) (*reconcile.TaskDefinition, error) {
	defs, err := toContainerDefinitions(containers)
	if err != nil {
		return nil, err
	}
	vols, err := toVolumes(volumes)
	if err != nil {
		return nil, err
	}
	out, err := s.client.RegisterTaskDefinition(ctx, &ecs.RegisterTaskDefinitionInput{
		Family:               aws.String(family),
		ContainerDefinitions: defs,
		Volumes:              vols,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("family", family).Msg("failed to register task definition")
		return nil, err
	}
	return fromTaskDefinition(out.TaskDefinition)
}

// Deregister retires a revision. ECS flips its status to INACTIVE but
// keeps the revision around.
func (s *Store) Deregister(ctx context.Context, id string) (*reconcile.TaskDefinition, error) {
	out, err := s.client.DeregisterTaskDefinition(ctx, &ecs.DeregisterTaskDefinitionInput{
		TaskDefinition: aws.String(id),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("target", id).Msg("failed to deregister task definition")
		return nil, err
	}
	return fromTaskDefinition(out.TaskDefinition)
}

func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "ClientException", "ResourceNotFoundException":
		return true
	}
	return false
}
