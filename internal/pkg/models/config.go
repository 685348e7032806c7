package models

// Config represents application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Client  ClientConfig  `mapstructure:"client"`
	Session SessionConfig `mapstructure:"session"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Logger  LoggerConfig  `mapstructure:"logger"`
	TopUp   TopUpConfig   `mapstructure:"topup"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
}

// ServerConfig contains HTTP server configuration for the simulator
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
	DatabasePath    string `mapstructure:"database_path"`
	Seed            bool   `mapstructure:"seed"`
}

// ClientConfig contains settings for talking to the billing service
type ClientConfig struct {
	BillingServiceURL string `mapstructure:"billing_service_url"`
	TimeoutSeconds    int    `mapstructure:"timeout_seconds"`
}

// SessionConfig contains the durable session store location
type SessionConfig struct {
	Path string `mapstructure:"path"`
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Expiration int    `mapstructure:"expiration"` // in minutes
	Issuer     string `mapstructure:"issuer"`
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
}

// TopUpConfig contains wallet top-up flow settings
type TopUpConfig struct {
	// SuccessDwellMillis is how long the success screen stays up before the
	// flow auto-closes and the amount field is cleared.
	SuccessDwellMillis int `mapstructure:"success_dwell_millis"`
}
