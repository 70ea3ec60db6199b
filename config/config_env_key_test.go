package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"contaAzul": map[string]any{
			"apiBaseUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "CONTAAZUL_APIBASEURL", want: "contaAzul.apiBaseUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestContaAzulConfig_ApplyDefaults(t *testing.T) {
	cfg := &ContaAzulConfig{}
	cfg.applyDefaults()

	if cfg.AuthBaseURL != defaultContaAzulAuthBaseURL {
		t.Fatalf("AuthBaseURL = %q, want %q", cfg.AuthBaseURL, defaultContaAzulAuthBaseURL)
	}
	if cfg.APIBaseURL != defaultContaAzulAPIBaseURL {
		t.Fatalf("APIBaseURL = %q, want %q", cfg.APIBaseURL, defaultContaAzulAPIBaseURL)
	}
	if cfg.SyncPageSize != defaultSyncPageSize {
		t.Fatalf("SyncPageSize = %d, want %d", cfg.SyncPageSize, defaultSyncPageSize)
	}
	if cfg.SyncTimeout != defaultSyncTimeout {
		t.Fatalf("SyncTimeout = %v, want %v", cfg.SyncTimeout, defaultSyncTimeout)
	}

	custom := &ContaAzulConfig{APIBaseURL: "http://localhost:9999", SyncPageSize: 50}
	custom.applyDefaults()

	if custom.APIBaseURL != "http://localhost:9999" {
		t.Fatalf("APIBaseURL overwritten: %q", custom.APIBaseURL)
	}
	if custom.SyncPageSize != 50 {
		t.Fatalf("SyncPageSize overwritten: %d", custom.SyncPageSize)
	}
}
