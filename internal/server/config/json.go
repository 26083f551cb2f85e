package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/picdiary/internal/flagx"
	"github.com/dmitrijs2005/picdiary/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations use timex.Duration so
// both "90s" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`

	ImageStore     string `json:"image_store"`
	S3RootUser     string `json:"s3_root_user"`
	S3RootPassword string `json:"s3_root_password"`
	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`

	OpenAIAPIKey    string `json:"openai_api_key"`
	OpenAIBaseURL   string `json:"openai_base_url"`
	OpenAIModel     string `json:"openai_model"`
	StabilityAPIKey string `json:"stability_api_key"`
	StabilityHost   string `json:"stability_host"`
	StabilityEngine string `json:"stability_engine"`

	ImageWidth   int            `json:"image_width"`
	ImageHeight  int            `json:"image_height"`
	LLMTimeout   timex.Duration `json:"llm_timeout"`
	ImageTimeout timex.Duration `json:"image_timeout"`
	SessionTTL   timex.Duration `json:"session_ttl"`

	TimeZone     string `json:"time_zone"`
	DeletePolicy string `json:"delete_policy"`
	MetricsAddr  string `json:"metrics_addr"`
	PromptsFile  string `json:"prompts_file"`
	LogLevel     string `json:"log_level"`
}

// parseJson overlays values from the JSON file named by -c / -config.
// Keys absent from the file keep their current value. An unreadable or
// invalid file panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.ConfigFileFlag()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	str := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	dur := func(dst *time.Duration, v timex.Duration) {
		if v.Duration != 0 {
			*dst = v.Duration
		}
	}
	num := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}

	str(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	str(&config.DatabaseDSN, c.DatabaseDSN)
	str(&config.SecretKey, c.SecretKey)
	dur(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	dur(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration)

	str(&config.ImageStore, c.ImageStore)
	str(&config.S3RootUser, c.S3RootUser)
	str(&config.S3RootPassword, c.S3RootPassword)
	str(&config.S3Bucket, c.S3Bucket)
	str(&config.S3Region, c.S3Region)
	str(&config.S3BaseEndpoint, c.S3BaseEndpoint)

	str(&config.OpenAIAPIKey, c.OpenAIAPIKey)
	str(&config.OpenAIBaseURL, c.OpenAIBaseURL)
	str(&config.OpenAIModel, c.OpenAIModel)
	str(&config.StabilityAPIKey, c.StabilityAPIKey)
	str(&config.StabilityHost, c.StabilityHost)
	str(&config.StabilityEngine, c.StabilityEngine)

	num(&config.ImageWidth, c.ImageWidth)
	num(&config.ImageHeight, c.ImageHeight)
	dur(&config.LLMTimeout, c.LLMTimeout)
	dur(&config.ImageTimeout, c.ImageTimeout)
	dur(&config.SessionTTL, c.SessionTTL)

	str(&config.TimeZone, c.TimeZone)
	str(&config.DeletePolicy, c.DeletePolicy)
	str(&config.MetricsAddr, c.MetricsAddr)
	str(&config.PromptsFile, c.PromptsFile)
	str(&config.LogLevel, c.LogLevel)
}
