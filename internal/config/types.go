package config

// Config is the top-level cryptobook configuration, corresponding to .cryptobook.yml.
type Config struct {
	Port                  int    `yaml:"port" koanf:"port"`
	ServiceURL            string `yaml:"service_url" koanf:"service_url"`
	RoutesFile            string `yaml:"routes_file" koanf:"routes_file"`
	Title                 string `yaml:"title" koanf:"title"`
	LogLevel              string `yaml:"log_level" koanf:"log_level"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds" koanf:"request_timeout_seconds"`
	MaxRetries            int    `yaml:"max_retries" koanf:"max_retries"`
	AllowAllOrigins       bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
