package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        int
	JWTSecret   string
	StoragePath string
}

func Load() Config {
	port := 8080
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	storagePath := "storage"
	if v := os.Getenv("STORAGE_PATH"); v != "" {
		storagePath = v
	}

	return Config{
		Port:        port,
		JWTSecret:   os.Getenv("JWT_SECRET"),
		StoragePath: storagePath,
	}
}
