package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config wraps koanf with the lookup helpers the services use.
// Precedence, lowest to highest: defaults, optional YAML file, environment.
type Config struct {
	k *koanf.Koanf
}

var defaults = map[string]interface{}{
	"web.port":            "8080",
	"db.mongo.url":        "mongodb://localhost:27017",
	"db.mongo.name":       "selforder",
	"nats.url":            "",
	"log.level":           "info",
	"board.poll_interval": "4s",
	"board.state_path":    "board_state.json",
	"services.api.url":    "http://localhost:8080",
	"seeding.demo":        "false",
}

// Load builds configuration for the given env namespace, e.g. namespace
// "SELFORDER" reads SELFORDER_WEB_PORT into key web.port. If the
// <NAMESPACE>_CONFIG variable points at a YAML file it is loaded too.
func Load(namespace string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("cannot load config defaults: %w", err)
	}

	prefix := namespace + "_"

	if path := os.Getenv(prefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("cannot load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(prefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("cannot load config from environment: %w", err)
	}

	return &Config{k: k}, nil
}

func (c *Config) GetString(key string) (string, bool) {
	if !c.k.Exists(key) {
		return "", false
	}
	return c.k.String(key), true
}

func (c *Config) GetStringOrDef(key, def string) string {
	v := c.k.String(key)
	if v == "" {
		return def
	}
	return v
}

func (c *Config) GetInt(key string) int {
	return c.k.Int(key)
}

func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v := c.k.String(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func (c *Config) GetBool(key string) bool {
	return c.k.Bool(key)
}
