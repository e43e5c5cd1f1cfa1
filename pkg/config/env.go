package config

// EnvPrefix is passed to envconfig; individual fields carry fully-qualified
// names so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "TECHPINIK_DB_DSN"
	EnvDBHost = "TECHPINIK_DB_HOST"
	EnvDBUser = "TECHPINIK_DB_USER"
	EnvDBName = "TECHPINIK_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
