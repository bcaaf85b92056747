package lib

import "fmt"

const (
	EnvKeyPrefix = "ROBOTOFFCTL"

	DefaultUserAgent = "robotoffctl/0.1 (+https://github.com/AnotherFullstackDev/robotoff-ctl)"
)

var (
	LogLevelEnv = fmt.Sprintf("%s_%s", EnvKeyPrefix, "LOG_LEVEL")
)

var (
	PasswordEnv       = fmt.Sprintf("%s_%s", EnvKeyPrefix, "PASSWORD")
	OffNativePassword = "OFF_PASSWORD"
)

const (
	KeyringServiceName = "robotoffctl"
)
