package config

// Config holds everything one run needs: which reasoning backend to talk
// to, which game server to drive, and the per-run knobs.
type Config struct {
	Name            string            `yaml:"name"`
	Backend         string            `yaml:"backend"`
	Model           string            `yaml:"model"`
	APIKey          string            `yaml:"api_key"`
	Endpoint        string            `yaml:"endpoint"`
	Game            string            `yaml:"game"`
	MaxSteps        int               `yaml:"max_steps"`
	Seed            int               `yaml:"seed"`
	MaxScore        int               `yaml:"max_score"`
	MaxOutputTokens int               `yaml:"max_output_tokens"`
	MaxLLMCalls     int               `yaml:"max_llm_calls"`
	MaxToolCalls    int               `yaml:"max_tool_calls"`
	MaxWallTime     int               `yaml:"max_wall_time"`
	SkipTLSVerify   bool              `yaml:"skip_tls_verify"`
	UserAgent       string            `yaml:"user_agent"`
	CustomHeaders   map[string]string `yaml:"custom_headers"`
	Debug           bool              `yaml:"debug"`
}
