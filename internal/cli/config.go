package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/meetkit/bbbclient/pkg/bbb"
	"github.com/meetkit/bbbclient/pkg/bbb/wire"
)

// DefaultConfigFile is the default name of the config file
const DefaultConfigFile = "config.toml"

// Config holds the deployment bbbctl talks to. The environment variables
// BBB_URL and BBB_SECRET take precedence over the file, so CI jobs can run
// without one.
type Config struct {
	// ServerURL is the base API endpoint, e.g. https://bbb.example.org/bigbluebutton/api
	ServerURL string `toml:"server_url"`
	// Secret is the deployment's shared secret
	Secret string `toml:"secret"`
	// ChecksumAlgorithm overrides the SHA-1 default ("sha1" or "sha256")
	ChecksumAlgorithm string `toml:"checksum_algorithm"`
}

var config *Config

// GetDefaultConfigPath returns the default path for the config file
// It uses the OS-specific config directory (e.g., ~/.config/bbbctl on Linux)
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "bbbctl", DefaultConfigFile), nil
}

// LoadConfig loads the configuration from the environment or the specified
// file. The environment wins when both are set.
func LoadConfig(file string) error {
	if url := os.Getenv(bbb.EnvURL); url != "" {
		config = &Config{
			ServerURL: url,
			Secret:    firstNonEmpty(os.Getenv(bbb.EnvSecret), os.Getenv(bbb.EnvSecretLegacy)),
		}
		return config.Validate()
	}

	var c Config
	if _, err := toml.DecodeFile(file, &c); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no configuration found: set %s and %s, or run \"bbbctl config --server <url> --secret <secret>\"", bbb.EnvURL, bbb.EnvSecret)
		}
		return fmt.Errorf("unable to parse config file: %w", err)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	config = &c
	return nil
}

// GetConfig returns the current configuration
func GetConfig() *Config {
	return config
}

// Validate checks for required fields and proper formatting
func (cfg *Config) Validate() error {
	if cfg.ServerURL == "" {
		return errors.New("server URL is required")
	}
	if !strings.HasPrefix(cfg.ServerURL, "http://") && !strings.HasPrefix(cfg.ServerURL, "https://") {
		return errors.New("server URL must start with http:// or https://")
	}
	if cfg.Secret == "" {
		return errors.New("shared secret is required")
	}
	return nil
}

// WriteConfig writes the configuration to the specified file
func (cfg *Config) WriteConfig(file string) error {
	if file == "" {
		return errors.New("file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(file), os.ModePerm); err != nil {
		return fmt.Errorf("unable to create config directory: %w", err)
	}

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to write config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("unable to generate configuration: %w", err)
	}
	return nil
}

// newClient constructs an API client from the loaded configuration.
func newClient() (*bbb.Client, error) {
	cfg := GetConfig()
	if cfg == nil {
		return nil, errors.New("configuration not loaded")
	}
	var opts []bbb.Option
	if cfg.ChecksumAlgorithm != "" {
		opts = append(opts, bbb.WithChecksumAlgorithm(wire.Algorithm(cfg.ChecksumAlgorithm)))
	}
	return bbb.New(cfg.ServerURL, cfg.Secret, opts...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long:  `Manage CLI configuration settings like the server endpoint and shared secret.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		serverFlag, _ := cmd.Flags().GetString("server")
		secretFlag, _ := cmd.Flags().GetString("secret")
		algFlag, _ := cmd.Flags().GetString("algorithm")
		if serverFlag != "" || secretFlag != "" {
			return setConfig(serverFlag, secretFlag, algFlag)
		}

		cmd.Help()
		return nil
	},
}

func init() {
	configCmd.Flags().String("server", "", "Base API endpoint (e.g. https://bbb.example.org/bigbluebutton/api)")
	configCmd.Flags().String("secret", "", "Shared secret of the deployment")
	configCmd.Flags().String("algorithm", "", "Checksum algorithm (sha1 or sha256)")

	rootCmd.AddCommand(configCmd)
}

// setConfig writes the deployment settings to the config file
func setConfig(server, secret, algorithm string) error {
	configPath := configFile
	if configPath == "" {
		var err error
		configPath, err = GetDefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get default config path: %w", err)
		}
	}

	cfg := &Config{
		ServerURL:         strings.TrimRight(server, "/"),
		Secret:            secret,
		ChecksumAlgorithm: algorithm,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if algorithm != "" {
		if _, err := wire.Algorithm(algorithm).Sum(""); err != nil {
			return fmt.Errorf("unsupported checksum algorithm %q", algorithm)
		}
	}

	if err := cfg.WriteConfig(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if jsonOutput {
		printJSON(map[string]string{
			"server":      cfg.ServerURL,
			"config_file": configPath,
		})
	} else {
		fmt.Printf("Server configured: %s\n", cfg.ServerURL)
		fmt.Printf("Config file: %s\n", configPath)
	}

	return nil
}
