package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first if present; real environment
// variables win over .env entries (godotenv does not override existing ones).
//
// Recognized variables:
//
//	ADDRESS                 HTTP bind address (e.g. ":8001")
//	DATABASE_DSN            PostgreSQL DSN
//	JWT_SECRET_KEY          HMAC secret for session tokens
//	ACCESS_TOKEN_VALIDITY   token lifetime, Go duration syntax (e.g. "168h")
//	AGENT_BASE_URL          base URL of the agent completion endpoint
//	AGENT_MODEL             model name passed to the agent endpoint
//	AGENT_API_KEY           bearer key for the agent endpoint
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.Address = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("AGENT_BASE_URL"); ok {
		config.AgentBaseURL = v
	}
	if v, ok := os.LookupEnv("AGENT_MODEL"); ok {
		config.AgentModel = v
	}
	if v, ok := os.LookupEnv("AGENT_API_KEY"); ok {
		config.AgentAPIKey = v
	}
}
