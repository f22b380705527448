package types

// AppConfig represents the complete application configuration.
type AppConfig struct {
	Verbose bool         `mapstructure:"verbose"`
	Config  string       `mapstructure:"config"`
	Data    DataConfig   `mapstructure:"data" validate:"required"`
	LLM     LLMConfig    `mapstructure:"llm" validate:"omitempty"`
	Server  ServerConfig `mapstructure:"server"`
}

// DataConfig holds ledger storage configuration.
type DataConfig struct {
	// File is the ledger path; empty means ~/.tomato_clock.json.
	File string `mapstructure:"file"`
	// LockTimeoutSeconds bounds the wait for the cross-process file lock.
	LockTimeoutSeconds int `mapstructure:"lockTimeoutSeconds" validate:"omitempty,min=1,max=120"`
}

// LLMConfig holds configuration for the extraction model.
type LLMConfig struct {
	// BaseURL points at an OpenAI-compatible endpoint; defaults to DeepSeek.
	BaseURL   string `mapstructure:"baseUrl" validate:"omitempty,url"`
	ModelName string `mapstructure:"modelName" validate:"omitempty,min=1"`
	APIKey    string `mapstructure:"apiKey" validate:"omitempty,min=1"`
	// RequestTimeoutSeconds controls the HTTP client timeout for LLM calls.
	RequestTimeoutSeconds int `mapstructure:"requestTimeoutSeconds" validate:"omitempty,min=5,max=600"`
}

// ServerConfig holds the chat HTTP front-end settings.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
}
