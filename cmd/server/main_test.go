package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/sebasr/welcome-service/internal/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Port: "3000", ShutdownTimeout: time.Second},
		Greeting:  config.GreetingConfig{Prefix: "/welcome"},
		RateLimit: config.RateLimitConfig{Limit: 100, Period: time.Minute},
		Log:       config.LogConfig{Level: "info", Format: config.LogFormatJSON},
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want func(c *config.Config)
	}{
		{
			name: "no flags keeps environment configuration",
			args: []string{"welcome-server"},
			want: func(_ *config.Config) {},
		},
		{
			name: "flags override environment configuration",
			args: []string{"welcome-server", "--port", "9000", "--prefix", "/hi", "--escape-names", "--log-level", "DEBUG"},
			want: func(c *config.Config) {
				c.Server.Port = "9000"
				c.Greeting.Prefix = "/hi"
				c.Greeting.EscapeNames = true
				c.Log.Level = "debug"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := baseConfig()
			cmd := newCommand(func(_ context.Context, c *cli.Command) error {
				applyFlags(got, c)
				return nil
			})

			require.NoError(t, cmd.Run(context.Background(), tt.args))

			want := baseConfig()
			tt.want(want)
			assert.Equal(t, want, got)
			assert.NoError(t, got.Validate())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	for _, key := range []string{"PORT", "GREETING_PREFIX", "LOG_LEVEL", "LOG_FORMAT", "RATE_LIMIT"} {
		t.Setenv(key, "")
	}

	tests := []struct {
		name     string
		env      map[string]string
		args     []string
		wantErr  bool
		wantPort string
	}{
		{
			name:     "flag replaces invalid environment port",
			env:      map[string]string{"PORT": "not-a-port"},
			args:     []string{"welcome-server", "--port", "9000"},
			wantPort: "9000",
		},
		{
			name:    "invalid environment port without flag",
			env:     map[string]string{"PORT": "not-a-port"},
			args:    []string{"welcome-server"},
			wantErr: true,
		},
		{
			name:    "invalid flag port",
			args:    []string{"welcome-server", "--port", "0"},
			wantErr: true,
		},
		{
			name:    "empty log level flag",
			args:    []string{"welcome-server", "--log-level", ""},
			wantErr: true,
		},
		{
			name:     "defaults",
			args:     []string{"welcome-server"},
			wantPort: "3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			var (
				cfg     *config.Config
				loadErr error
			)
			cmd := newCommand(func(_ context.Context, c *cli.Command) error {
				cfg, loadErr = loadConfig(c)
				return nil
			})
			require.NoError(t, cmd.Run(context.Background(), tt.args))

			if tt.wantErr {
				assert.Error(t, loadErr)
				return
			}
			require.NoError(t, loadErr)
			assert.Equal(t, tt.wantPort, cfg.Server.Port)
		})
	}
}
