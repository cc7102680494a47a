package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "remote", args: []string{"cmd", "-a", "127.0.0.1:9090", "-i", "10"},
			expected: &Config{ServerEndpointAddr: "127.0.0.1:9090", OnlineCheckInterval: 10 * time.Second}},
		{name: "local mode and file", args: []string{"cmd", "-m", "local", "-f", "/tmp/v.db", "-i", "1"},
			expected: &Config{Mode: ModeLocal, LocalDSN: "/tmp/v.db", OnlineCheckInterval: time.Second}},
		{name: "foreign flags ignored", args: []string{"cmd", "-c", "cfg.json", "-a", "h:1", "-i", "2"},
			expected: &Config{ServerEndpointAddr: "h:1", OnlineCheckInterval: 2 * time.Second}},
		{name: "incorrect check interval", args: []string{"cmd", "-a", "127.0.0.1:9090", "-i", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
