package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	in := &Config{
		ServerURL: "https://bbb.example.org/bigbluebutton/api",
		Secret:    "supersecret",
	}
	require.NoError(t, in.WriteConfig(path))

	t.Setenv("BBB_URL", "")
	require.NoError(t, LoadConfig(path))
	out := GetConfig()
	require.NotNil(t, out)
	assert.Equal(t, in.ServerURL, out.ServerURL)
	assert.Equal(t, in.Secret, out.Secret)
}

func TestConfigEnvironmentWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	file := &Config{ServerURL: "https://file.example.org/bigbluebutton/api", Secret: "from-file"}
	require.NoError(t, file.WriteConfig(path))

	t.Setenv("BBB_URL", "https://env.example.org/bigbluebutton/api")
	t.Setenv("BBB_SECRET", "from-env")

	require.NoError(t, LoadConfig(path))
	out := GetConfig()
	assert.Equal(t, "https://env.example.org/bigbluebutton/api", out.ServerURL)
	assert.Equal(t, "from-env", out.Secret)
}

func TestConfigLegacySecretFallback(t *testing.T) {
	t.Setenv("BBB_URL", "https://env.example.org/bigbluebutton/api")
	t.Setenv("BBB_SECRET", "")
	t.Setenv("BBB_SECURITY_SALT", "legacy-secret")

	require.NoError(t, LoadConfig(""))
	assert.Equal(t, "legacy-secret", GetConfig().Secret)
}

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"missing server", Config{Secret: "s"}},
		{"missing secret", Config{ServerURL: "https://bbb.example.org/bigbluebutton/api"}},
		{"bad scheme", Config{ServerURL: "ftp://bbb.example.org", Secret: "s"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.cfg.Validate())
		})
	}
}

func TestConfigMissingFile(t *testing.T) {
	t.Setenv("BBB_URL", "")
	err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no configuration found")
}
