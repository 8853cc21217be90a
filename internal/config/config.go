// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging environment variables, command-line flags, an optional JSON file
// and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session and lifecycle behaviour settings.
	App App `envPrefix:"APP_"`

	// Storage holds the persistence backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address of the local lifecycle API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address the terminal client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Delivery holds the simulated notification delivery delays.
	Delivery Delivery `envPrefix:"DELIVERY_"`

	// Workers holds background worker intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// SessionName labels log lines of this session.
	// Env: APP_SESSION_NAME
	SessionName string `env:"SESSION_NAME"`

	// SeedDemoData fills a fresh session with demo contacts.
	// Env: APP_SEED_DEMO_DATA
	SeedDemoData bool `env:"SEED_DEMO_DATA"`

	// RejectExpiredResend makes resending an expired invitation fail instead
	// of silently resetting its clock.
	// Env: APP_REJECT_EXPIRED_RESEND
	RejectExpiredResend bool `env:"REJECT_EXPIRED_RESEND"`

	// InvitationTTL is how long an invitation stays acceptable.
	// Env: APP_INVITATION_TTL
	InvitationTTL time.Duration `env:"INVITATION_TTL"`

	// VoteApprovalRate is the probability in [0,1] that a simulated contact
	// approves a recovery request.
	// Env: APP_VOTE_APPROVAL_RATE
	VoteApprovalRate float64 `env:"VOTE_APPROVAL_RATE"`

	// Version is exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection settings.
type DB struct {
	// DSN selects the backend: ":memory:" for an in-process store, a
	// "postgres://" URL for PostgreSQL, anything else is a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds inbound transport settings.
type Server struct {
	// HTTPAddress is the host:port the lifecycle API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds outbound client settings.
type Adapter struct {
	// HTTPAddress is the lifecycle API address used by the terminal client.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Delivery holds the randomized delay windows of simulated delivery.
type Delivery struct {
	SentDelayMin      time.Duration `env:"SENT_DELAY_MIN"`
	SentDelayMax      time.Duration `env:"SENT_DELAY_MAX"`
	DeliveredDelayMin time.Duration `env:"DELIVERED_DELAY_MIN"`
	DeliveredDelayMax time.Duration `env:"DELIVERED_DELAY_MAX"`
}

// Workers holds background worker settings.
type Workers struct {
	// ExpiryCheckInterval is how often pending invitations are checked.
	// Env: WORKERS_EXPIRY_CHECK_INTERVAL
	ExpiryCheckInterval time.Duration `env:"EXPIRY_CHECK_INTERVAL"`
}

// GetStructuredConfig loads and merges configuration in priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
