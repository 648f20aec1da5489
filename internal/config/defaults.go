package config

const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 5000
	DefaultEnvironment = "development"
	DefaultLogLevel    = "info"

	DefaultRateLimitPerMinute = 60

	DefaultExaBaseURL = "https://api.exa.ai"
)

var DefaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8080",
}
