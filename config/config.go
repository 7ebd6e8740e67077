package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	Env       string
	DBPath    string
	JWTSecret string
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:      GetEnv("PORT", "3000"),
		Env:       GetEnv("ENV", "development"),
		DBPath:    GetEnv("DB_PATH", "./data/phrasebook.db"),
		JWTSecret: GetEnv("JWT_SECRET", ""),
	}

	if AppConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
