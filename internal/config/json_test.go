package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"bcrypt_cost": 12,
			"version":     "0.9.0",
		},
		"server": map[string]any{
			"http_address":    "localhost:3000",
			"request_timeout": "1m",
		},
		"storage": map[string]any{
			"db": map[string]any{
				"driver": "sqlite3",
				"dsn":    "photoshare.db",
			},
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "localhost:3000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "photoshare.db", cfg.Storage.DB.DSN)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/no/such/config.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	f := writeTempJSONConfig(t, "not-an-object")

	_, err := parseJSON(f)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"string form", `"90s"`, 90 * time.Second},
		{"numeric nanoseconds", `1000000000`, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}

	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}
