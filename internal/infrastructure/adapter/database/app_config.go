package database

import (
	"cmp"
	"strconv"

	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/config"
)

// ConfigFromApp builds the pool config from the loaded application config. Unset
// (zero) tunables fall back to DefaultConfig; RetryAttempts is taken as-is because
// viper always supplies it and 0 means a single attempt.
func ConfigFromApp(conf *config.Config) *Config {
	src := conf.Database
	def := DefaultConfig()

	return &Config{
		Driver:          cmp.Or(src.Driver, def.Driver),
		Host:            src.Host,
		Port:            ParsePort(src.Port),
		Username:        src.Username,
		Password:        src.Password,
		Database:        src.Database,
		SSLMode:         cmp.Or(src.SSLMode, def.SSLMode),
		MaxOpenConns:    positiveOr(src.MaxOpenConns, def.MaxOpenConns),
		MaxIdleConns:    positiveOr(src.MaxIdleConns, def.MaxIdleConns),
		ConnMaxLifetime: positiveOr(src.ConnMaxLifetime, def.ConnMaxLifetime),
		ConnMaxIdleTime: positiveOr(src.ConnMaxIdleTime, def.ConnMaxIdleTime),
		QueryTimeout:    positiveOr(src.QueryTimeout, def.QueryTimeout),
		RetryAttempts:   max(src.RetryAttempts, 0),
		RetryDelay:      positiveOr(src.RetryDelay, def.RetryDelay),
		LogLevel:        cmp.Or(conf.Logger.Level, def.LogLevel),
		SlowThreshold:   def.SlowThreshold,
	}
}

func positiveOr[T ~int | ~int64](v, fallback T) T {
	if v > 0 {
		return v
	}
	return fallback
}

// ParsePort returns 0 for anything that is not a TCP port number
func ParsePort(port string) int {
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}
