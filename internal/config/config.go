package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const EnvPrefix = "TASKFEED_"

type Application struct {
	Port    int     `koanf:"port"`
	Feed    Feed    `koanf:"feed"`
	Metrics Metrics `koanf:"metrics"`
}

type Feed struct {
	Timeout      time.Duration `koanf:"timeout"`
	MaxBodyBytes int64         `koanf:"maxbodybytes"`
	UserAgent    string        `koanf:"useragent"`
	// Folding is "heuristic" or "rfc".
	Folding string `koanf:"folding"`
	// MonthConvention is "legacy" or "rfc".
	MonthConvention string `koanf:"monthconvention"`
	// Strict rejects documents without VCALENDAR markers instead of
	// returning empty segments.
	Strict bool `koanf:"strict"`
}

type Metrics struct {
	Enabled bool `koanf:"enabled"`
}

func Defaults() Application {
	return Application{
		Port: 3000,
		Feed: Feed{
			Timeout:         15 * time.Second,
			MaxBodyBytes:    10 << 20,
			UserAgent:       "taskfeed/1.0",
			Folding:         "heuristic",
			MonthConvention: "legacy",
			Strict:          false,
		},
		Metrics: Metrics{
			Enabled: true,
		},
	}
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, EnvPrefix)), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
