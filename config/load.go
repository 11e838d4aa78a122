package config

import "os"

func Load() App {
	cfg := App{
		Port:         getenv("APP_PORT", "8080"),
		SnapshotPath: getenv("SNAPSHOT_PATH", "data/superwallet.json"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    getenv("JWT_SECRET", "local_dev_secret"),
		Env:          getenv("APP_ENV", "dev"),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
