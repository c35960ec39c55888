package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const envFile = "./configs/.env"

type Config struct {
}

// New loads ./configs/.env once. A missing file is fine, variables may come
// from the process environment alone.
func New() *Config {
	once.Do(func() {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func (c *Config) GetIntOr(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("config: %s must be an integer, got %q", key, v)
	}
	return n
}

func (c *Config) GetFloatOr(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("config: %s must be a number, got %q", key, v)
	}
	return f
}

// GetLocation reads an IANA zone name, UTC when unset.
func (c *Config) GetLocation(key string) *time.Location {
	name := c.GetStringOr(key, "UTC")
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Fatalf("config: unknown time zone %q in %s: %v", name, key, err)
	}
	return loc
}
