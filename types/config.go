package types

import "time"

// Config holds orca-core client config
type Config struct {
	LogLevel  string `yaml:"log_level" required:"true" default:"INFO"`
	SentryDSN string `yaml:"sentry_dsn"`

	Engine EngineConfig `yaml:"engine"`
}

// EngineConfig holds the connection settings towards a scheduling engine session
type EngineConfig struct {
	Endpoint    string        `yaml:"endpoint"`                     // engine session endpoint, empty means local-only mode
	CallTimeout time.Duration `yaml:"call_timeout" default:"30"`    // seconds per engine round-trip, normalized by LoadConfig
	MaxProfiles int           `yaml:"max_profiles" default:"10000"` // engine-side cap on registered profiles
}
