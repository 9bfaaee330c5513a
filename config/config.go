package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	MongoURL     string
	DatabaseName string
	SecretKey    string
	AllowOrigins []string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	return &Config{
		Port:         getEnv("PORT", "8000"),
		MongoURL:     getEnv("MONGODB_URL", "mongodb://localhost:27017"),
		DatabaseName: getEnv("DATABASE_NAME", "restaurant"),
		SecretKey:    getEnv("SECRET_KEY", "changeme"),
		AllowOrigins: strings.Split(getEnv("ALLOW_ORIGINS", "http://localhost:3000"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
