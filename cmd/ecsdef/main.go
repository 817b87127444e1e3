package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/e6qu/ecsdef/awsecs"
	"github.com/e6qu/ecsdef/reconcile"
)

func main() {
	state := flag.String("state", "", "desired state: present, update or absent")
	arn := flag.String("arn", "", "task definition ARN")
	family := flag.String("family", "", "task definition family")
	revision := flag.Int("revision", 0, "task definition revision")
	specPath := flag.String("spec", "", "YAML or JSON file with family, containers and volumes")
	check := flag.Bool("check", false, "report the changed verdict without mutating anything")
	region := flag.String("region", "", "AWS region (default from AWS_REGION)")
	endpointURL := flag.String("endpoint-url", "", "custom ECS endpoint (default from ECSDEF_ENDPOINT_URL)")
	logLevel := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", "ecsdef").
		Logger()

	intent := reconcile.Intent(*state)
	switch intent {
	case reconcile.IntentPresent, reconcile.IntentUpdate, reconcile.IntentAbsent:
	default:
		logger.Fatal().Str("state", *state).Msg("state must be present, update or absent")
	}

	req := reconcile.Request{
		Intent:   intent,
		ARN:      *arn,
		Family:   *family,
		Revision: *revision,
		DryRun:   *check,
	}
	if *specPath != "" {
		sf, err := loadSpecFile(*specPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load spec file")
		}
		req.Containers = sf.Containers
		req.Volumes = sf.Volumes
		if req.Family == "" {
			req.Family = sf.Family
		}
	}

	cfg := configFromEnv()
	if *region != "" {
		cfg.Region = *region
	}
	if *endpointURL != "" {
		cfg.EndpointURL = *endpointURL
	}
	if cfg.Region == "" {
		logger.Fatal().Msg("region must be specified via -region or AWS_REGION")
	}

	ctx := context.Background()
	clients, err := awsecs.NewClients(ctx, cfg.Region, cfg.EndpointURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("AWS connection setup failed")
	}

	engine := reconcile.NewEngine(awsecs.NewStore(clients, logger), logger)
	result, err := engine.Reconcile(ctx, req)
	if err != nil {
		logger.Fatal().Err(err).Msg("reconciliation failed")
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to encode result")
	}
	fmt.Println(string(out))
}
