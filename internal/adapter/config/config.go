package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Database  *Database
	HTTP      *HTTP
	FileStore *FileStore
	App       *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

// FileStore holds the content storage root. It is passed explicitly to the
// disk store constructor; nothing reads it from the environment at use time.
type FileStore struct {
	Root string `env:"FILE_STORAGE_PATH"`
}

func NewConfig() (*Config, error) {
	// Best effort: a missing .env is fine.
	_ = godotenv.Load()

	var db Database
	var http HTTP
	var files FileStore
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&files.Root, "f", `./data/files`, "Content file storage root")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&files)
	if err != nil {
		return nil, fmt.Errorf("error parsing file store config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database:  &db,
		HTTP:      &http,
		FileStore: &files,
		App:       &app,
	}

	return &config, nil
}
