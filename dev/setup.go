package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	devenv "candidatescout/dev/env"
	"candidatescout/internal/db"
	"candidatescout/pkg/migrations"
)

func CreateEmptyDB() error {
	path, err := devenv.ResolvePath(filepath.Join(devenv.StatePrefix, "linkedin.db"))
	if err != nil {
		return err
	}

	_, err = os.Stat(path)
	if err == nil {
		fmt.Println("database already created at", path)
		return nil
	}

	fmt.Println("creating database at", path)
	database, err := migrations.OpenAndMigrateDB(db.Schema, path)
	if err != nil {
		return err
	}
	return database.Close()
}

// CreateConfig copies the example config to config.json5 unless one exists.
func CreateConfig() error {
	_, err := os.Stat("config.json5")
	if err == nil {
		fmt.Println("config already created at config.json5")
		return nil
	}

	example, err := os.ReadFile(filepath.Join("cmd", "scout", "config.example.json5"))
	if err != nil {
		return err
	}
	fmt.Println("creating config at config.json5")
	return os.WriteFile("config.json5", example, 0600)
}

func PrintConfigLocations() {
	slog.Info("fill in your credentials in config.json5 (or LINKEDIN_EMAIL and LINKEDIN_PASSWORD in .env), databases, exports and logs live in dev/.state.")
}
