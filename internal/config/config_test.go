package config

import "testing"

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"console", "console", false},
		{"json", "json", false},
		{"markdown", "markdown", false},
		{"unknown_format", "xml", true},
		{"empty_format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(&Config{Format: tt.format})
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig(format=%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Format != "console" {
		t.Errorf("Format = %q, want console", cfg.Format)
	}
	if cfg.Quiet || cfg.SkipValidation || cfg.Force {
		t.Errorf("boolean defaults wrong: %+v", cfg)
	}
}
