package config

import (
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*Server
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Server, 0, 2),
	}
}

func (b *configBuilder) build() (*Server, error) {
	config := new(Server)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

// withEnv appends the environment snapshot. A snapshot that cannot be parsed
// is skipped so that a malformed variable falls through to the defaults.
func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Server{}
	if err := parseEnv(envCfg); err != nil {
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &Server{
		Port: DefaultPort,
		Name: DefaultName,
	})
	return b
}
