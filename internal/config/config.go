// Package config reads settings from the environment, falling back to
// values in .env files.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	DictionaryPath string
	RedisAddr      string // empty disables custom words
	RedisPassword  string
	RedisDB        int
	HTTPAddr       string
}

type lookup func(key string) string

// Load builds a Config. Process environment wins over the files; missing
// files are skipped. With no files ".env" is tried.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	fileVals := map[string]string{}
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, err
		}
		for k, v := range vals {
			if _, ok := fileVals[k]; !ok {
				fileVals[k] = v
			}
		}
	}
	env := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fileVals[key]
	}
	return fromLookup(env), nil
}

func fromLookup(env lookup) Config {
	return Config{
		DictionaryPath: getenv(env, "DICTIONARY_PATH", "words.txt"),
		RedisAddr:      env("REDIS_ADDR"),
		RedisPassword:  env("REDIS_PASSWORD"),
		RedisDB:        getEnvInt(env, "REDIS_DB", 0),
		HTTPAddr:       getenv(env, "HTTP_ADDR", ":8080"),
	}
}

// RedisClient returns nil when no Redis address is configured.
func (c Config) RedisClient() *redis.Client {
	if c.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	})
}

func getenv(env lookup, key, def string) string {
	v := env(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(env lookup, key string, def int) int {
	v := env(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
