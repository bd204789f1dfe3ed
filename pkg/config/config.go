package config

import (
	"log"

	"aistore/pkg/utils"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	PostgresURL string `env:"POSTGRES_URL,required"`
	JWTSecret   string `env:"JWT_SECRET,required"`
	GinMode     string `env:"GIN_MODE" envDefault:"debug"`
}

// Load reads .env (when present) and parses the environment into a
// Config. Missing required keys are fatal at startup.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	utils.SetJWTSecret(cfg.JWTSecret)
	return cfg
}
