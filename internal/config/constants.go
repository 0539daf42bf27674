package config

import "time"

const (
	envPort          = "PORT"
	envProvider      = "PROVIDER"
	envDefaultQuery  = "DEFAULT_TEAM_QUERY"
	envSportsBaseURL = "THESPORTSDB_BASE_URL"
	envSportsAPIKey  = "THESPORTSDB_API_KEY"
	envSportsTimeout = "THESPORTSDB_TIMEOUT"
	envImageProxy    = "IMAGE_PROXY_URL"
	envPlaceholder   = "PLAYER_PLACEHOLDER_URL"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envDotEnvFile    = "DOTENV_FILE"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envLogFile       = "LOG_FILE"

	defaultPort         = "4000"
	defaultMetricsPort  = "9090"
	defaultServiceName  = "football-team-service"
	defaultSportsAPIKey = "3"
	// The API key is a path segment, appended to this base.
	defaultSportsBaseURL = "https://www.thesportsdb.com/api/v1/json"
	defaultDotEnvFile    = ".env"
)

// Defaults shared by the server and the teamcard CLI.
const (
	DefaultProvider       = "thesportsdb"
	DefaultTeamQuery      = "Real Madrid"
	DefaultSportsTimeout  = 10 * Duration(time.Second)
	DefaultImageProxy     = "https://images.weserv.nl/"
	DefaultPlaceholderURL = "https://via.placeholder.com/160x160?text=No+Photo"
)
