package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/quadgate/tollpass/internal/pkg/models"
)

// InitConfig loads configuration from an optional config file plus
// TOLLPASS_* environment variables. Environment variables win over file
// values; both win over defaults.
func InitConfig(configPath string) (*models.Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("TOLLPASS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	cfg := &models.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "tollpass")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.version", "dev")

	v.SetDefault("client.billing_service_url", "http://localhost:8080")
	v.SetDefault("client.timeout_seconds", 10)

	v.SetDefault("session.path", defaultSessionPath())

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.shutdown_timeout", 10)
	v.SetDefault("server.database_path", "tollsim.db")
	v.SetDefault("server.seed", true)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", 60)
	v.SetDefault("jwt.issuer", "tollsim")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "")

	v.SetDefault("topup.success_dwell_millis", 2000)
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tollpass-session.db"
	}
	return filepath.Join(home, ".tollpass", "session.db")
}
