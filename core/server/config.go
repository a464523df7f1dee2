package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	// An empty key leaves the API open.
	ApiKey string `mapstructure:"api_key" default:""`
	// ReadTimeoutSeconds bounds reading a request, including upload bodies.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"300"`
	// BodyLimitMB is the largest accepted upload body.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"512"`
}

// BodyLimit returns the body limit in bytes, defaulting to 512 MiB.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 512 << 20
	}
	return c.BodyLimitMB << 20
}
