package awsecs

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
)

// Clients holds the AWS SDK clients the store needs.
type Clients struct {
	ECS *ecs.Client
}

// NewClients initializes AWS SDK clients from the default credential
// chain. When endpointURL is set, requests go to that endpoint with static
// test credentials (simulator/localstack mode).
func NewClients(ctx context.Context, region string, endpointURL string) (*Clients, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	if endpointURL != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("test", "test", ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, &AuthError{Err: err}
	}

	if endpointURL != "" {
		return &Clients{
			ECS: ecs.NewFromConfig(cfg, func(o *ecs.Options) { o.BaseEndpoint = aws.String(endpointURL) }),
		}, nil
	}
	return &Clients{ECS: ecs.NewFromConfig(cfg)}, nil
}
