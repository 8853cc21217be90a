package config

import (
	"fmt"
)

// ServerConfig is the view of [StructuredConfig] used by the lifecycle
// process.
type ServerConfig struct {
	App      App
	Storage  Storage
	Server   Server
	Delivery Delivery
	Workers  Workers
}

// ClientConfig is the view of [StructuredConfig] used by the terminal client.
type ClientConfig struct {
	Adapter Adapter
}

// GetServerConfig builds and validates the lifecycle process configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.ServerView()
}

// GetClientConfig builds and validates the terminal client configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.ClientView()
}

// ServerView maps the fields relevant to the lifecycle process and validates
// them.
func (cfg *StructuredConfig) ServerView() (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:      cfg.App,
		Storage:  cfg.Storage,
		Server:   cfg.Server,
		Delivery: cfg.Delivery,
		Workers:  cfg.Workers,
	}

	return serverCfg, serverCfg.validate()
}

// ClientView maps the fields relevant to the terminal client and validates
// them.
func (cfg *StructuredConfig) ClientView() (*ClientConfig, error) {
	clientCfg := &ClientConfig{Adapter: cfg.Adapter}

	return clientCfg, clientCfg.validate()
}
