package config

import (
	"encoding/json"
	"log"
	"os"
)

type Configuration struct {
	ApiPort string `json:"api_port"`
	BaseURL string `json:"base_url"` // used to build links in outbound emails

	Database string `json:"database"` // "sqlite3" or "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	Security struct {
		SessionSecret    string `json:"session_secret"`
		JwtSecret        string `json:"jwt_secret"`
		ResetTokenTTLMin int    `json:"reset_token_ttl_minutes"`
	} `json:"security"`

	Smtp struct {
		Server   string `json:"server"` // host:port
		User     string `json:"user"`
		Password string `json:"password"`
		Sender   string `json:"sender"`
	} `json:"smtp"`

	Verify struct {
		AccountSID string `json:"account_sid"`
		AuthToken  string `json:"auth_token"`
		ServiceID  string `json:"service_id"`
		BaseURL    string `json:"base_url"`
	} `json:"verify"`
}

// Get loads the configuration file at path. Missing values fall back to
// defaults and, for secrets, to environment variables.
func Get(path string) Configuration {
	var c Configuration
	if b, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(b, &c); err != nil {
			log.Fatal(err)
		}
	} else {
		log.Printf("config file %s not found, using defaults", path)
	}

	if c.ApiPort == "" {
		c.ApiPort = envOr("PORT", "8080")
	}
	if c.BaseURL == "" {
		c.BaseURL = envOr("BASE_URL", "http://localhost:"+c.ApiPort)
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.Security.SessionSecret == "" {
		c.Security.SessionSecret = envOr("SESSION_SECRET", "CHANGE_ME")
	}
	if c.Security.JwtSecret == "" {
		c.Security.JwtSecret = envOr("JWT_SECRET", "CHANGE_ME")
	}
	if c.Security.ResetTokenTTLMin <= 0 {
		c.Security.ResetTokenTTLMin = 60
	}
	if c.Smtp.Server == "" {
		c.Smtp.Server = os.Getenv("SMTP_SERVER")
	}
	if c.Smtp.User == "" {
		c.Smtp.User = os.Getenv("SMTP_USER")
	}
	if c.Smtp.Password == "" {
		c.Smtp.Password = os.Getenv("SMTP_PASSWORD")
	}
	if c.Smtp.Sender == "" {
		c.Smtp.Sender = envOr("SMTP_SENDER", c.Smtp.User)
	}
	if c.Verify.AccountSID == "" {
		c.Verify.AccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	}
	if c.Verify.AuthToken == "" {
		c.Verify.AuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	}
	if c.Verify.ServiceID == "" {
		c.Verify.ServiceID = os.Getenv("TWILIO_VERIFY_SERVICE_ID")
	}

	return c
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
