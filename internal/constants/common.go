package constants

// Common string constants used throughout the codebase
const (
	ServiceName = "taxjar-go"

	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"
	DevEnvironment  = "dev"
)

// TaxJar endpoints
const (
	DefaultAPIURL = "https://api.taxjar.com/v2/"
	SandboxAPIURL = "https://api.sandbox.taxjar.com/v2/"
)

// Environment variables consulted by the configuration layer
const (
	EnvAPIKey          = "TAXJAR_API_KEY"
	EnvAPIKeySecretARN = "TAXJAR_API_KEY_SECRET_ARN"
	EnvAPIURL          = "TAXJAR_API_URL"
	EnvAPIVersion      = "TAXJAR_API_VERSION"
	EnvTimeout         = "TAXJAR_TIMEOUT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvStage           = "STAGE"
)

// Headers
const (
	AuthorizationHeader = "Authorization"
	APIVersionHeader    = "x-api-version"
	RequestIDHeader     = "X-Request-Id"
)
