package conductor

// Environment variables a Conductor reads when an option does not say otherwise.
const (
	baseURLEnvVar     = "BASE_URL"
	defaultBaseURL    = "http://localhost:3000"
	environmentEnvVar = "ENVIRONMENT"
	logLevelEnvVar    = "LOG_LEVEL"

	// Database
	dbHostEnvVar     = "DATABASE_HOST"
	defaultDBHost    = "localhost"
	dbNameEnvVar     = "DATABASE_NAME"
	dbPassEnvVar     = "DATABASE_PASSWORD"
	dbPortEnvVar     = "DATABASE_PORT"
	defaultDBPort    = "5432"
	dbSSLModeEnvVar  = "DATABASE_SSLMODE"
	defaultDBSSLMode = "prefer"
	dbURLEnvVar      = "DATABASE_URL"
	dbUserEnvVar     = "DATABASE_USER"

	// Web server
	hostEnvVar                = "HOST"
	defaultHost               = "localhost"
	portEnvVar                = "PORT"
	defaultPort               = ":3000"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	defaultServerReadTimeout  = 5
	defaultServerIdleTimeout  = 120
	defaultServerWriteTimeout = 5
)
