package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables consulted when the matching flag is unset.
const (
	EnvConfig  = "COURSEGRAPH_CONFIG"
	EnvJSInput = "COURSEGRAPH_JSINPUT"
	EnvInput   = "COURSEGRAPH_INPUT"
	EnvKeyBy   = "COURSEGRAPH_KEY_BY"
)

// Env is the subset of COURSEGRAPH_* variables that are set.
type Env struct {
	Config  string
	JSInput string
	Input   string
	KeyBy   string
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (default ".env")
// without overriding variables already present. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// ReadEnv returns the COURSEGRAPH_* variables from the process environment.
func ReadEnv() Env {
	return Env{
		Config:  os.Getenv(EnvConfig),
		JSInput: os.Getenv(EnvJSInput),
		Input:   os.Getenv(EnvInput),
		KeyBy:   os.Getenv(EnvKeyBy),
	}
}
