package config

type App struct {
	Port         string `env:"APP_PORT" default:"8080"`
	SnapshotPath string `env:"SNAPSHOT_PATH" default:"data/superwallet.json"`
	DatabaseURL  string `env:"DATABASE_URL"`
	JWTSecret    string `env:"JWT_SECRET" default:"local_dev_secret"`
	Env          string `env:"APP_ENV" default:"dev"`
}
