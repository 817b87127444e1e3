package main

import "os"

// config holds connection settings for the ECS API.
type config struct {
	Region      string
	EndpointURL string // custom endpoint for simulator/localstack mode
}

// configFromEnv loads connection settings from environment variables.
// Flags override these.
func configFromEnv() config {
	return config{
		Region:      envOrDefault("AWS_REGION", os.Getenv("EC2_REGION")),
		EndpointURL: os.Getenv("ECSDEF_ENDPOINT_URL"),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
