package main

// ParametersAPI contains the definition of the parameters used by the API.
type ParametersAPI struct {
	// BindAddress is the bind address on which the API listens on.
	BindAddress string `default:"localhost:8080" usage:"the bind address on which the API listens on"`

	Auth struct {
		Username     string `usage:"the user that is allowed to modify the tree (empty to disable authentication)"`
		PasswordHash string `usage:"the hex encoded scrypt hash of the password"`
		PasswordSalt string `usage:"the hex encoded salt of the password"`
	}
}

// ParametersSeed contains the definition of the parameters used to fill the tree on startup.
type ParametersSeed struct {
	// Count is the number of random keys that are inserted on startup.
	Count int `default:"10" usage:"the number of random keys that are inserted on startup"`
	// MaxKey is the largest random key.
	MaxKey int `default:"30" usage:"the largest random key"`
}

// ParametersLogger contains the definition of the parameters used by the logger.
type ParametersLogger struct {
	Level string `default:"info" usage:"the log level (trace, debug, info, warning, error)"`
	Name  string `default:"rbviz" usage:"the name of the root logger"`
}

var (
	paramsAPI    = &ParametersAPI{}
	paramsSeed   = &ParametersSeed{}
	paramsLogger = &ParametersLogger{}
)
