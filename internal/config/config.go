package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

// Config holds the runtime settings. Everything has a default, so the
// app runs with no config file at all; a YAML file and MONCAL_*
// environment variables override in that order.
type Config struct {
	DBPath       string `koanf:"dbpath"`
	LogFile      string `koanf:"logfile"`
	DefaultStart string `koanf:"defaultstart"` // draft start time for new events
	DefaultEnd   string `koanf:"defaultend"`   // draft end time for new events
}

// DefaultPath returns ~/.config/moncal/config.yaml
func DefaultPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "moncal", "config.yaml"), nil
}

// Load reads the configuration from defaults, then the YAML file at
// path (missing files are fine), then the environment.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	err := k.Load(structs.Provider(Config{
		DefaultStart: "09:00",
		DefaultEnd:   "10:00",
	}, "koanf"), nil)
	if err != nil {
		return Config{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Warnf("could not read config file %s", path)
		}
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "MONCAL_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, "MONCAL_")), "_", ".")
			return key, value
		},
	}), nil)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
