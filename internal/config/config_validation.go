// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks cross-source invariants of the merged config. Per-binary
// requirements live in the view validators.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.VoteApprovalRate < 0 || cfg.App.VoteApprovalRate > 1 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.InvitationTTL <= 0 || cfg.App.VoteApprovalRate < 0 || cfg.App.VoteApprovalRate > 1 {
		return ErrInvalidAppConfigs
	}

	d := cfg.Delivery
	if d.SentDelayMin < 0 || d.DeliveredDelayMin < 0 ||
		d.SentDelayMin > d.SentDelayMax || d.DeliveredDelayMin > d.DeliveredDelayMax {
		return ErrInvalidDeliveryConfigs
	}

	if cfg.Workers.ExpiryCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
