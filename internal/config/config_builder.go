package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// layer is one configuration source. Later layers override earlier ones
// field by field; zero values never erase what an earlier layer set.
type layer struct {
	source string
	cfg    *StructuredConfig
}

type configBuilder struct {
	args   []string
	layers []layer
	errs   []error
}

func newConfigBuilder(args []string) *configBuilder {
	return &configBuilder{args: args}
}

// add runs load and records either its layer or its error. Loading keeps
// going after a failure so build can report every broken source at once.
func (b *configBuilder) add(source string, load func() (*StructuredConfig, error)) *configBuilder {
	cfg, err := load()
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("%s: %w", source, err))
		return b
	}

	b.layers = append(b.layers, layer{source: source, cfg: cfg})
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add("defaults", func() (*StructuredConfig, error) {
		return defaultConfig(), nil
	})
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.add("env", loadEnv)
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add("flags", func() (*StructuredConfig, error) {
		return parseFlags(b.args)
	})
}

// withJSON loads the file named by the last layer that set a path. Without
// one it adds nothing.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}

	return b.add("json "+path, func() (*StructuredConfig, error) {
		return parseJSON(path)
	})
}

func (b *configBuilder) jsonPath() string {
	for i := len(b.layers) - 1; i >= 0; i-- {
		if p := b.layers[i].cfg.JSONFilePath; p != "" {
			return p
		}
	}
	return ""
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	merged := &StructuredConfig{}
	for _, l := range b.layers {
		if err := mergo.Merge(merged, l.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", l.source, err)
		}
	}

	if err := merged.validate(); err != nil {
		return nil, err
	}

	return merged, nil
}
