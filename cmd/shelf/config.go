package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type config struct {
	Catalog   string
	Debug     bool
	LogFormat string
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func loadConfig() config {
	debug, _ := strconv.ParseBool(getEnv("SHELF_DEBUG", "false"))
	return config{
		Catalog:   getEnv("SHELF_CATALOG", "books.yaml"),
		Debug:     debug,
		LogFormat: getEnv("SHELF_LOG_FORMAT", "text"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
