package config

import "time"

type Config struct {
	App      AppConfig      `env-prefix:"APP_"`
	HTTP     HTTPConfig     `env-prefix:"HTTP_"`
	GRPC     GRPCConfig     `env-prefix:"GRPC_"`
	Database DatabaseConfig `env-prefix:"DB_"`
	Auth     AuthConfig     `env-prefix:"AUTH_"`
}

type HTTPConfig struct {
	Addr string `env:"ADDR" env-default:":8081"`
}

type AppConfig struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Pretty   bool   `env:"PRETTY" env-default:"false"`
}

type GRPCConfig struct {
	Addr             string        `env:"ADDR" env-default:":50051"`
	KeepaliveTime    time.Duration `env:"KEEPALIVE_TIME" env-default:"60s"`
	KeepaliveTimeout time.Duration `env:"KEEPALIVE_TIMEOUT" env-default:"30s"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DatabaseConfig struct {
	Driver        string `env:"DRIVER" env-default:"postgres"`
	Port          string `env:"PORT" env-default:"5432"`
	Host          string `env:"HOST" env-default:"localhost"`
	Name          string `env:"NAME" env-default:"postgres"`
	User          string `env:"USER" env-default:"user"`
	Password      string `env:"PASSWORD"`
	RetryAttempts uint   `env:"RETRY_ATTEMPTS" env-default:"3"`
	SQLitePath    string `env:"SQLITE_PATH" env-default:"data/blog.db"`
}

type AuthConfig struct {
	// Tokens maps bearer tokens to user ids, e.g. "t0k3n:user_1,other:user_2".
	Tokens   map[string]string `env:"TOKENS" env-separator:","`
	Required bool              `env:"REQUIRED" env-default:"false"`
}
