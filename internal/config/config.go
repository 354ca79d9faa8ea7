package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	AppName    = "Candor"
	AppVersion = "1.0.0"
)

// Source is the tag written into every persisted translation record.
const Source = "candor"

// Environment variable names for the required settings. MissingRequired
// reports these names so operators know exactly what to set.
const (
	EnvProviderAPIKey = "CANDOR_PROVIDER_API_KEY"
	EnvAirtableToken  = "CANDOR_AIRTABLE_TOKEN"
	EnvAirtableBase   = "CANDOR_AIRTABLE_BASE"
	EnvAirtableTable  = "CANDOR_AIRTABLE_TABLE"
)

type Config struct {
	Addr     string
	DataDir  string
	DBPath   string
	LogLevel string

	// Completion provider.
	Provider        string // openai, anthropic, compatible
	ProviderAPIKey  string
	ProviderBaseURL string // optional for openai/anthropic, required for compatible
	Model           string
	Tone            string // blunt, sarcastic

	// External record store.
	AirtableToken string
	AirtableBase  string
	AirtableTable string

	AllowedOrigin   string
	RateLimit       int           // admitted requests per client per window, 0 disables
	RateWindow      time.Duration // fixed window duration
	OutboundQPS     int           // process-wide provider QPS
	UpstreamTimeout time.Duration // deadline for each outbound call
	Debug           bool
}

func Load() Config {
	dataDir := envStr("CANDOR_DATA_DIR", "./data")
	dbPath := os.Getenv("CANDOR_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "candor.db")
	}

	return Config{
		Addr:     envStr("CANDOR_ADDR", ":8080"),
		DataDir:  filepath.Clean(dataDir),
		DBPath:   filepath.Clean(dbPath),
		LogLevel: envStr("CANDOR_LOG_LEVEL", "info"),

		Provider:        envStr("CANDOR_PROVIDER", "openai"),
		ProviderAPIKey:  os.Getenv(EnvProviderAPIKey),
		ProviderBaseURL: os.Getenv("CANDOR_PROVIDER_BASE_URL"),
		Model:           envStr("CANDOR_MODEL", "gpt-4o-mini"),
		Tone:            envStr("CANDOR_TONE", "blunt"),

		AirtableToken: os.Getenv(EnvAirtableToken),
		AirtableBase:  os.Getenv(EnvAirtableBase),
		AirtableTable: os.Getenv(EnvAirtableTable),

		AllowedOrigin:   envStr("CANDOR_ALLOWED_ORIGIN", "*"),
		RateLimit:       envInt("CANDOR_RATE_LIMIT", 5),
		RateWindow:      envDuration("CANDOR_RATE_WINDOW", 60*time.Second),
		OutboundQPS:     envInt("CANDOR_OUTBOUND_QPS", 10),
		UpstreamTimeout: envDuration("CANDOR_UPSTREAM_TIMEOUT", 30*time.Second),
		Debug:           envBool("CANDOR_DEBUG", false),
	}
}

// MissingRequired returns the names of required settings that are absent.
// The server starts without them; every POST is short-circuited with a 500
// until they are provided.
func (c Config) MissingRequired() []string {
	var missing []string
	if c.ProviderAPIKey == "" {
		missing = append(missing, EnvProviderAPIKey)
	}
	if c.AirtableToken == "" {
		missing = append(missing, EnvAirtableToken)
	}
	if c.AirtableBase == "" {
		missing = append(missing, EnvAirtableBase)
	}
	if c.AirtableTable == "" {
		missing = append(missing, EnvAirtableTable)
	}
	return missing
}

func envStr(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
