package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/appengine-ltd/fishsprite/internal/biology"
	"github.com/appengine-ltd/fishsprite/internal/config"
	"github.com/appengine-ltd/fishsprite/internal/species"
	"github.com/appengine-ltd/fishsprite/pkg/logger"
)

// env is what every subcommand needs: settings, species and a random source.
type env struct {
	cfg      *config.Config
	registry *species.Registry
	seed     int64
}

func loadEnv() (*env, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if level != "" {
		if err := logger.SetLevel(level); err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
	}

	registry := species.DefaultRegistry()
	for _, path := range []string{cfg.SpeciesFile, speciesFile} {
		if path == "" {
			continue
		}
		if _, err := registry.LoadFile(path); err != nil {
			return nil, err
		}
	}

	s := cfg.Seed
	if seed != 0 {
		s = seed
	}
	if s == 0 {
		s = time.Now().UnixNano()
	}

	logger.Log.WithFields(logrus.Fields{
		"species": registry.Count(),
		"seed":    s,
	}).Debug("environment ready")

	return &env{cfg: cfg, registry: registry, seed: s}, nil
}

func (e *env) rand() *biology.Rand {
	return biology.NewRand(e.seed)
}

func (e *env) size(flagValue string) (species.SizeCategory, error) {
	if flagValue != "" {
		return species.ParseSizeCategory(flagValue)
	}
	return species.ParseSizeCategory(e.cfg.Size)
}
