package config

import (
	"encoding/json"
	"os"

	"wallboard/internal/flagx"
	"wallboard/internal/timex"
)

// JsonConfig is an intermediate DTO for reading JSON configuration files.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "168h" and integer nanoseconds. After unmarshalling,
// its fields are copied into the runtime Config struct.
type JsonConfig struct {
	Address                     string         `json:"address"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	AgentBaseURL                string         `json:"agent_base_url"`
	AgentModel                  string         `json:"agent_model"`
	AgentAPIKey                 string         `json:"agent_api_key"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path is taken from the -c or -config flags; when
// neither is set, no JSON file is loaded. Only fields actually present in
// the file override the current values. Unreadable or invalid files panic:
// a deployment pointing at a broken config file should not start.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

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

	if c.Address != "" {
		config.Address = c.Address
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.AgentBaseURL != "" {
		config.AgentBaseURL = c.AgentBaseURL
	}
	if c.AgentModel != "" {
		config.AgentModel = c.AgentModel
	}
	if c.AgentAPIKey != "" {
		config.AgentAPIKey = c.AgentAPIKey
	}
}
