package sdk

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  ClientConfig
		wantErr error
		errMsg  string
	}{
		{
			name: "valid config with minimal fields",
			config: ClientConfig{
				Host:     "10.0.0.10",
				Username: "admin",
				Password: "secret",
			},
		},
		{
			name: "valid config with hostname and port",
			config: ClientConfig{
				Host:     "prism.example.com",
				Port:     19440,
				Username: "admin",
				Password: "secret",
			},
		},
		{
			name: "missing host",
			config: ClientConfig{
				Username: "admin",
				Password: "secret",
			},
			wantErr: ErrInvalidConfig,
			errMsg:  "host is required",
		},
		{
			name: "host with scheme",
			config: ClientConfig{
				Host:     "https://10.0.0.10",
				Username: "admin",
				Password: "secret",
			},
			wantErr: ErrInvalidConfig,
			errMsg:  "bare address",
		},
		{
			name: "port out of range",
			config: ClientConfig{
				Host:     "10.0.0.10",
				Port:     70000,
				Username: "admin",
				Password: "secret",
			},
			wantErr: ErrInvalidConfig,
			errMsg:  "out of range",
		},
		{
			name: "missing username",
			config: ClientConfig{
				Host:     "10.0.0.10",
				Password: "secret",
			},
			wantErr: ErrMissingAuth,
		},
		{
			name: "missing password",
			config: ClientConfig{
				Host:     "10.0.0.10",
				Username: "admin",
			},
			wantErr: ErrMissingAuth,
		},
		{
			name: "negative timeout",
			config: ClientConfig{
				Host:     "10.0.0.10",
				Username: "admin",
				Password: "secret",
				Timeout:  -time.Second,
			},
			wantErr: ErrInvalidConfig,
			errMsg:  "timeouts must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Validate() error = %v, want message containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestClientConfig_ValidateDefaults(t *testing.T) {
	config := ClientConfig{
		Host:     " 10.0.0.10 ",
		Username: "admin",
		Password: "secret",
	}

	if err := config.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if config.Host != "10.0.0.10" {
		t.Errorf("Host = %q, want trimmed value", config.Host)
	}
	if config.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", config.Port, DefaultPort)
	}
	if config.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", config.Timeout, DefaultTimeout)
	}
	if config.ConnectTimeout != DefaultConnectTimeout {
		t.Errorf("ConnectTimeout = %v, want %v", config.ConnectTimeout, DefaultConnectTimeout)
	}
	if config.HTTPClient == nil {
		t.Fatal("HTTPClient should be created")
	}
	if config.HTTPClient.Timeout != DefaultTimeout {
		t.Errorf("HTTPClient.Timeout = %v, want %v", config.HTTPClient.Timeout, DefaultTimeout)
	}
	if config.Logger == nil {
		t.Error("Logger should default to a no-op logger")
	}
}

func TestClientConfig_BaseURL(t *testing.T) {
	tests := []struct {
		name   string
		config ClientConfig
		want   string
	}{
		{
			name:   "default port",
			config: ClientConfig{Host: "10.0.0.10"},
			want:   "https://10.0.0.10:9440/api/nutanix/v2.0",
		},
		{
			name:   "custom port",
			config: ClientConfig{Host: "prism.example.com", Port: 8443},
			want:   "https://prism.example.com:8443/api/nutanix/v2.0",
		},
		{
			name:   "ipv6 host",
			config: ClientConfig{Host: "fd00::10"},
			want:   "https://[fd00::10]:9440/api/nutanix/v2.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.BaseURL(); got != tt.want {
				t.Errorf("BaseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
