package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvAPIKeys is the environment variable holding the Gemini API key, or a
// comma-separated list of keys to rotate through on quota errors.
const EnvAPIKeys = "GEMINI_API_KEY"

// Credentials holds the secrets loaded from the process environment. They
// never appear in the yaml config file.
type Credentials struct {
	APIKeys []string
}

// LoadCredentials reads secrets from the environment, after loading a .env
// file if one exists in the working directory. A missing API key is fatal:
// the pipeline cannot degrade to running without one.
func LoadCredentials() (*Credentials, error) {
	// Missing .env is fine; the variable may come from the real environment.
	_ = godotenv.Load()

	raw := os.Getenv(EnvAPIKeys)
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%s environment variable not set", EnvAPIKeys)
	}

	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%s contains no usable keys", EnvAPIKeys)
	}

	return &Credentials{APIKeys: keys}, nil
}
