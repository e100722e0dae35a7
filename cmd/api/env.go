package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

// loadDotEnv copies .env from the working directory into the process
// environment, if the file exists. Variables already set are left alone, so
// real environment always beats .env, which in turn feeds config.Load.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return errors.Wrap(err, "load .env")
}
