package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *ServerConfig {
	d := defaultConfig()
	return &ServerConfig{
		App:      d.App,
		Storage:  d.Storage,
		Server:   d.Server,
		Delivery: d.Delivery,
		Workers:  d.Workers,
	}
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ServerConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*ServerConfig) {}},
		{name: "empty dsn", mutate: func(c *ServerConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(c *ServerConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "zero timeout", mutate: func(c *ServerConfig) { c.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "zero ttl", mutate: func(c *ServerConfig) { c.App.InvitationTTL = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "negative rate", mutate: func(c *ServerConfig) { c.App.VoteApprovalRate = -0.1 }, wantErr: ErrInvalidAppConfigs},
		{name: "inverted sent window", mutate: func(c *ServerConfig) { c.Delivery.SentDelayMin = 2 * time.Second }, wantErr: ErrInvalidDeliveryConfigs},
		{name: "negative delivered min", mutate: func(c *ServerConfig) { c.Delivery.DeliveredDelayMin = -time.Second }, wantErr: ErrInvalidDeliveryConfigs},
		{name: "zero expiry interval", mutate: func(c *ServerConfig) { c.Workers.ExpiryCheckInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	assert.NoError(t, (&ClientConfig{Adapter: Adapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second}}).validate())
	assert.ErrorIs(t, (&ClientConfig{Adapter: Adapter{HTTPAddress: "localhost:8080"}}).validate(), ErrInvalidAdapterConfigs)
	assert.ErrorIs(t, (&ClientConfig{}).validate(), ErrInvalidAdapterConfigs)
}
