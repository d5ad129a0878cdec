package config

const EnvPrefix = "RIGHTTOOL"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv   = "RIGHTTOOL_APP_ENV"
	EnvAppPort  = "RIGHTTOOL_APP_PORT"
	EnvRedisURL = "RIGHTTOOL_REDIS_URL"
)

const (
	EnvDBDSN  = "RIGHTTOOL_DB_DSN"
	EnvDBHost = "RIGHTTOOL_DB_HOST"
	EnvDBUser = "RIGHTTOOL_DB_USER"
	EnvDBName = "RIGHTTOOL_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
