package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration parsing for file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey              string   `json:"token_sign_key"`
		TokenIssuer               string   `json:"token_issuer"`
		TokenDuration             Duration `json:"token_duration"`
		VerificationTokenDuration Duration `json:"verification_token_duration"`
		BaseURL                   string   `json:"base_url"`
		Environment               string   `json:"environment"`
		Version                   string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			URI            string   `json:"uri"`
			Database       string   `json:"database"`
			ConnectTimeout Duration `json:"connect_timeout"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Mail struct {
		SMTPHost string `json:"smtp_host"`
		SMTPPort int    `json:"smtp_port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"mail,omitempty"`
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

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:              jsonCfg.App.TokenSignKey,
			TokenIssuer:               jsonCfg.App.TokenIssuer,
			TokenDuration:             time.Duration(jsonCfg.App.TokenDuration),
			VerificationTokenDuration: time.Duration(jsonCfg.App.VerificationTokenDuration),
			BaseURL:                   jsonCfg.App.BaseURL,
			Environment:               jsonCfg.App.Environment,
			Version:                   jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				URI:            jsonCfg.Storage.DB.URI,
				Database:       jsonCfg.Storage.DB.Database,
				ConnectTimeout: time.Duration(jsonCfg.Storage.DB.ConnectTimeout),
			},
		},
		Server: Server{
			Address:        jsonCfg.Server.Address,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Mail: Mail{
			SMTPHost: jsonCfg.Mail.SMTPHost,
			SMTPPort: jsonCfg.Mail.SMTPPort,
			Username: jsonCfg.Mail.Username,
			Password: jsonCfg.Mail.Password,
			From:     jsonCfg.Mail.From,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
