// Package config provides shared configuration utilities and the fixed game
// tunables.
package config

import (
	"errors"
	"io/fs"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt64 returns the environment variable parsed as an int64.
// The boolean is false when the variable is unset or not a number.
func GetEnvInt64(key string) (int64, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// GetEnvBool reports whether the variable is set to a truthy value
// ("1", "true", "on", "yes").
func GetEnvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(GetEnv(key, ""))) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// LoadDotEnv loads variables from the given files (".env" when none are given)
// without overriding variables already present in the environment.
// A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	present := files[:0:0]
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		present = append(present, f)
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}

// NewRand returns a random source seeded from ARCADE_SEED, or from the clock
// when the variable is unset or invalid, along with the seed used.
func NewRand() (*rand.Rand, int64) {
	seed, ok := GetEnvInt64(EnvSeed)
	if !ok {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
