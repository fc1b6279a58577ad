package conf

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds process configuration. Values come from an optional TOML
// file; environment variables override the file.
type Config struct {
	HttpAddress string   `toml:"http_address"`
	JwtKey      string   `toml:"jwt_key"`
	EvalApiUrl  string   `toml:"eval_api_url"` // remote evaluation persistence base URL
	CorsOrigins []string `toml:"cors_origins"`
}

func Default() Config {
	return Config{
		HttpAddress: ":8080",
		CorsOrigins: []string{"http://localhost:3000"},
	}
}

// Read loads the config file at path (skipped if path is empty or the file
// does not exist) and then applies env var overrides.
func Read(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else {
			if err := toml.Unmarshal(content, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HttpAddress = v
	}
	if v := os.Getenv("JWT_KEY"); v != "" {
		cfg.JwtKey = v
	}
	if v := os.Getenv("EVAL_API_URL"); v != "" {
		cfg.EvalApiUrl = v
	}

	return cfg, nil
}
