package config

import (
	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/hftecno/treasury/pkg/logger"
)

var config *Config

// Config holds every env-sourced value the back office uses. Only this
// struct may be consulted for configuration; no direct os.Getenv reads
// elsewhere.
type Config struct {
	AppEnv   string `env:"APP_ENV,default=dev"`
	AppName  string `env:"APP_NAME,default=treasury"`
	AppDebug bool   `env:"APP_DEBUG,default=1"`

	HttpListenAddr string `env:"HTTP_LISTEN_ADDR,default=:8080"`
	AdminBasePath  string `env:"ADMIN_BASE_PATH,default=/admin/"`

	PostgresReadHost     string `env:"POSTGRES_READ_HOST"`
	PostgresReadPort     string `env:"POSTGRES_READ_PORT"`
	PostgresReadUser     string `env:"POSTGRES_READ_USER"`
	PostgresReadPassword string `env:"POSTGRES_READ_PASSWORD"`
	PostgresReadDatabase string `env:"POSTGRES_READ_DBNAME"`

	PostgresWriteHost     string `env:"POSTGRES_WRITE_HOST"`
	PostgresWritePort     string `env:"POSTGRES_WRITE_PORT"`
	PostgresWriteUser     string `env:"POSTGRES_WRITE_USER"`
	PostgresWritePassword string `env:"POSTGRES_WRITE_PASSWORD"`
	PostgresWriteDatabase string `env:"POSTGRES_WRITE_DBNAME"`

	PromNamespace   string `env:"PROM_NAMESPACE,default=treasury"`
	MetricsEnable   bool   `env:"METRICS_ENABLE,default=0"`
	MetricsAddr     string `env:"METRICS_ADDR,default=:9090"`
	MetricsEndpoint string `env:"METRICS_ENDPOINT,default=/metrics"`

	MigrationsDir string `env:"MIGRATIONS_DIR,default=./migrations"`
}

func Load(path string) error {
	logger.Info("loading configs..", "path", path)
	c := &Config{}
	var err error
	if path != "" {
		err = godotenv.Load(path)
		if err != nil {
			return errors.Wrap(err, "failed to load configuration file "+path)
		}
	}

	_, err = env.UnmarshalFromEnviron(c)
	if err != nil {
		return errors.Wrap(err, "failed to map env variables to Config")
	}

	config = c
	return nil
}

func Get() *Config {
	if config == nil {
		logger.Panic("Config is not initialized")
	}
	return config
}
