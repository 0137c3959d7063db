package types

import "time"

// GatewayConfig holds settings for the model gateway.
type GatewayConfig struct {
	// Endpoint is the relay URL that accepts {prompt, model, ...} POST
	// bodies. Key material lives server-side behind this endpoint; when
	// APIKey is set it is forwarded as a bearer credential to the relay.
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// APIKey authenticates against the relay. Loaded from .secrets/ or
	// the environment, never from the config file.
	APIKey string `json:"-" yaml:"-"`

	// FastModel is the cheaper model tier used for extraction and other
	// low-stakes transforms (e.g. "gemini-2.5-flash-lite").
	FastModel string `json:"fast_model" yaml:"fast_model"`

	// ProModel is the high-capability tier used for synthesis and
	// web-grounded retrieval (e.g. "gemini-2.5-pro").
	ProModel string `json:"pro_model" yaml:"pro_model"`

	// Timeout is the per-request HTTP timeout. The pipeline defines no
	// timeout of its own; cancellation comes from here and from the
	// caller's context.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// HistoryConfig holds settings for the search-history store.
type HistoryConfig struct {
	// StateDir is the directory holding the history database
	// (contains scout.db).
	StateDir string `json:"state_dir" yaml:"state_dir"`

	// MaxEntries is the default maximum number of history rows listed.
	MaxEntries int `json:"max_entries" yaml:"max_entries"`
}

// Config groups all configuration for the CLI.
type Config struct {
	Gateway GatewayConfig `json:"gateway" yaml:"gateway"`
	History HistoryConfig `json:"history" yaml:"history"`
}
