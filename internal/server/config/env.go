package config

import "os"

// parseEnv fills provider secrets from the environment when set.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv(EnvOpenAIKey); ok && v != "" {
		config.OpenAIAPIKey = v
	}
	if v, ok := os.LookupEnv(EnvStabilityKey); ok && v != "" {
		config.StabilityAPIKey = v
	}
}
