package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result and that earlier configs win.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "photoshare.db", Driver: "sqlite3"}},
		},
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "should-not-win"}},
			Server:  Server{HTTPAddress: "localhost:3000"},
		},
	)
	b = b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "photoshare.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "localhost:3000", cfg.Server.HTTPAddress)
	// defaults fill the rest
	assert.Equal(t, 10, cfg.App.BcryptCost)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

// TestBuild_ValidationFailure verifies that a merged config without a DSN is
// rejected by validation.
func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_MergesFileValues verifies that values from a JSON config file
// are picked up when a previous source specifies the file path.
func TestWithJSON_MergesFileValues(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{
			"http_address":    "127.0.0.1:8081",
			"request_timeout": "45s",
		},
		"storage": map[string]any{
			"db": map[string]any{
				"driver": "pgx",
				"dsn":    "postgres://localhost/photoshare",
			},
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b = b.withJSON().withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/photoshare", cfg.Storage.DB.DSN)
}

// TestWithJSON_MissingFile verifies that a dangling config path is reported
// as a builder error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})
	b = b.withJSON()

	_, err := b.build()
	require.Error(t, err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	valid := StructuredConfig{
		App:     App{BcryptCost: 10},
		Server:  Server{HTTPAddress: ":3000", RequestTimeout: time.Second},
		Storage: Storage{DB: DB{Driver: "pgx", DSN: "postgres://localhost/p"}},
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"valid", func(cfg *StructuredConfig) {}, nil},
		{"empty dsn", func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"unknown driver", func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "oracle" }, ErrInvalidStorageConfigs},
		{"no address", func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"zero timeout", func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 }, ErrInvalidServerConfigs},
		{"cost too low", func(cfg *StructuredConfig) { cfg.App.BcryptCost = 1 }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
