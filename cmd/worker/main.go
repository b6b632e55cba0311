package main

import (
	"os"

	"github.com/joho/godotenv"

	"skillax-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	Run()
}
