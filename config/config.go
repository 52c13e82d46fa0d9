package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL    string
	MongoURL       string
	DBType         string
	Port           string
	BackendURL     string // carrier API base, e.g. https://api.expresocargas.com.ar/api
	BackendToken   string // carrier API bearer token
	OperatorBranch string // branch name stamped on operator submissions
	BranchID       int64  // issuing branch for printed receipts
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL:    os.Getenv("POSTGRES_URL"),
		MongoURL:       os.Getenv("MONGO_URL"),
		DBType:         os.Getenv("DB_TYPE"),
		Port:           os.Getenv("PORT"),
		BackendURL:     os.Getenv("BACKEND_URL"),
		BackendToken:   os.Getenv("BACKEND_TOKEN"),
		OperatorBranch: os.Getenv("OPERATOR_BRANCH"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.OperatorBranch == "" {
		cfg.OperatorBranch = "Casa Central San Rafael"
	}
	cfg.BranchID = 1
	if os.Getenv("BRANCH_ID") == "2" {
		cfg.BranchID = 2
	}
	return cfg
}
