package config

import "os"

func IsDebug() bool {
	return os.Getenv("LUCK_DEBUG") == "1"
}

func GetLogFormat() string {
	if f := os.Getenv("LOG_FORMAT"); f != "" {
		return f
	}
	return "console"
}
