package config

import (
	"os"
	"strings"

	"github.com/edvall/cratrack/internal/llm"
	"github.com/edvall/cratrack/internal/sanitize"
)

// Config carries all process configuration. It is built once at startup and
// passed down explicitly; nothing reads the environment after Load returns.
type Config struct {
	Addr             string
	DBPath           string
	UploadsDir       string
	ProprietaryTerms []string
	LLM              llm.LLMConfig
}

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		Addr:             ":8080",
		DBPath:           "cratrack.db",
		UploadsDir:       "uploads",
		ProprietaryTerms: sanitize.DefaultTerms,
		LLM:              llm.DefaultConfig(),
	}
}

// Load reads configuration from CRATRACK_* environment variables, falling
// back to defaults for unset values.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("CRATRACK_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("CRATRACK_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("CRATRACK_UPLOADS_DIR"); v != "" {
		cfg.UploadsDir = v
	}
	if v := os.Getenv("CRATRACK_PROPRIETARY_TERMS"); v != "" {
		var terms []string
		for _, term := range strings.Split(v, ",") {
			if term = strings.TrimSpace(term); term != "" {
				terms = append(terms, term)
			}
		}
		if len(terms) > 0 {
			cfg.ProprietaryTerms = terms
		}
	}
	cfg.LLM = llm.LoadConfig()

	return cfg
}
