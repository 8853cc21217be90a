package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		SessionName         string   `json:"session_name"`
		SeedDemoData        bool     `json:"seed_demo_data"`
		RejectExpiredResend bool     `json:"reject_expired_resend"`
		InvitationTTL       Duration `json:"invitation_ttl"`
		VoteApprovalRate    float64  `json:"vote_approval_rate"`
		Version             string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Delivery struct {
		SentDelayMin      Duration `json:"sent_delay_min"`
		SentDelayMax      Duration `json:"sent_delay_max"`
		DeliveredDelayMin Duration `json:"delivered_delay_min"`
		DeliveredDelayMax Duration `json:"delivered_delay_max"`
	} `json:"delivery,omitempty"`

	Workers struct {
		ExpiryCheckInterval Duration `json:"expiry_check_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionName:         jsonCfg.App.SessionName,
			SeedDemoData:        jsonCfg.App.SeedDemoData,
			RejectExpiredResend: jsonCfg.App.RejectExpiredResend,
			InvitationTTL:       time.Duration(jsonCfg.App.InvitationTTL),
			VoteApprovalRate:    jsonCfg.App.VoteApprovalRate,
			Version:             jsonCfg.App.Version,
		},
		Storage: Storage{DB: DB{DSN: jsonCfg.Storage.DB.DSN}},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Delivery: Delivery{
			SentDelayMin:      time.Duration(jsonCfg.Delivery.SentDelayMin),
			SentDelayMax:      time.Duration(jsonCfg.Delivery.SentDelayMax),
			DeliveredDelayMin: time.Duration(jsonCfg.Delivery.DeliveredDelayMin),
			DeliveredDelayMax: time.Duration(jsonCfg.Delivery.DeliveredDelayMax),
		},
		Workers: Workers{
			ExpiryCheckInterval: time.Duration(jsonCfg.Workers.ExpiryCheckInterval),
		},
	}, nil
}

// Duration is a time.Duration that unmarshals from JSON strings like "1h"
// as well as from raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
