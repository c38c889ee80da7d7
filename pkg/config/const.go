package config

const (
	// EnvPrefix is the envconfig prefix shared by every setting.
	EnvPrefix = "FLYERWORKS"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv = "FLYERWORKS_APP_ENV"

	EnvDBDSN  = "FLYERWORKS_DB_DSN"
	EnvDBHost = "FLYERWORKS_DB_HOST"
	EnvDBUser = "FLYERWORKS_DB_USER"
	EnvDBName = "FLYERWORKS_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
