package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultDotEnvPath = "./config/.env"

// loadDotEnv loads the file named by DOTENV, or ./config/.env when DOTENV is
// unset. Variables that are already present in the environment are kept.
func loadDotEnv() error {
	path := os.Getenv("DOTENV")
	explicit := path != ""
	if !explicit {
		path = defaultDotEnvPath
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}

	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading dotenv file %q: %w", path, err)
}
