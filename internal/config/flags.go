package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and port parsed from "host:port".
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses command-line flags from args.
//
// Flags:
//
//	-a                     lifecycle API listen address [host]:[port]
//	-server                lifecycle API address used by the client [host]:[port]
//	-d                     database DSN (":memory:", SQLite path or postgres:// URL)
//	-c / -config           JSON config file path
//	-demo                  seed a fresh session with demo contacts
//	-reject-expired-resend refuse to resend expired invitations
//	-invitation-ttl        invitation lifetime (e.g. "168h")
//	-vote-approval-rate    simulated approval probability in [0,1]
//	-request-timeout       request timeout (e.g. "10s")
//	-expiry-interval       invitation expiry check interval (e.g. "1h")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, adapterAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var seedDemo, rejectExpiredResend bool
	var invitationTTL, requestTimeout, expiryInterval time.Duration
	var approvalRate float64

	fs := flag.NewFlagSet("reclaim", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Lifecycle API listen address host:port")
	fs.Var(&adapterAddress, "server", "Lifecycle API address used by the client host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.BoolVar(&seedDemo, "demo", false, "Seed demo contacts into a fresh session")
	fs.BoolVar(&rejectExpiredResend, "reject-expired-resend", false, "Refuse to resend expired invitations")
	fs.DurationVar(&invitationTTL, "invitation-ttl", 0, "Invitation lifetime (e.g., 168h)")
	fs.Float64Var(&approvalRate, "vote-approval-rate", 0, "Simulated vote approval probability")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&expiryInterval, "expiry-interval", 0, "Invitation expiry check interval (e.g., 1h)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			SeedDemoData:        seedDemo,
			RejectExpiredResend: rejectExpiredResend,
			InvitationTTL:       invitationTTL,
			VoteApprovalRate:    approvalRate,
		},
		Storage: Storage{DB: DB{DSN: databaseDSN}},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{ExpiryCheckInterval: expiryInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or an empty string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or a valid IP.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
