package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/picdiary/internal/flagx"
)

var knownFlags = []string{
	"-a", "-d", "-s", "-t", "-r", "-u", "-p", "-b", "-g", "-e",
	"-image-store", "-openai-key", "-openai-url", "-openai-model",
	"-stability-key", "-stability-host", "-stability-engine",
	"-width", "-height", "-llm-timeout", "-image-timeout", "-session-ttl",
	"-tz", "-delete-policy", "-metrics", "-prompts", "-log-level",
}

// parseFlags populates server Config fields from command-line flags.
//
// Short flags:
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// Long flags cover the generation backends, timeouts and diary behavior.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh_token_validity_duration (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.ImageStore, "image-store", config.ImageStore, "illustration store: s3 or memory")

	fs.StringVar(&config.OpenAIAPIKey, "openai-key", config.OpenAIAPIKey, "OpenAI API key")
	fs.StringVar(&config.OpenAIBaseURL, "openai-url", config.OpenAIBaseURL, "OpenAI-compatible base URL")
	fs.StringVar(&config.OpenAIModel, "openai-model", config.OpenAIModel, "chat model")
	fs.StringVar(&config.StabilityAPIKey, "stability-key", config.StabilityAPIKey, "Stability API key")
	fs.StringVar(&config.StabilityHost, "stability-host", config.StabilityHost, "Stability API host")
	fs.StringVar(&config.StabilityEngine, "stability-engine", config.StabilityEngine, "Stability engine id")

	fs.IntVar(&config.ImageWidth, "width", config.ImageWidth, "illustration width")
	fs.IntVar(&config.ImageHeight, "height", config.ImageHeight, "illustration height")
	fs.DurationVar(&config.LLMTimeout, "llm-timeout", config.LLMTimeout, "timeout of one language model call")
	fs.DurationVar(&config.ImageTimeout, "image-timeout", config.ImageTimeout, "timeout of one image generation call")
	fs.DurationVar(&config.SessionTTL, "session-ttl", config.SessionTTL, "idle lifetime of an interview")

	fs.StringVar(&config.TimeZone, "tz", config.TimeZone, "time zone for entry dates")
	fs.StringVar(&config.DeletePolicy, "delete-policy", config.DeletePolicy, "gap or compact")
	fs.StringVar(&config.MetricsAddr, "metrics", config.MetricsAddr, "metrics listen address, empty disables")
	fs.StringVar(&config.PromptsFile, "prompts", config.PromptsFile, "YAML file overriding model prompts")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
}
