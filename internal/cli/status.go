package cli

import (
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/spf13/cobra"

	"github.com/meetkit/bbbclient/pkg/bbb"
	"github.com/meetkit/bbbclient/pkg/bbb/response"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check connectivity, the shared secret, and the server version",
	Long: `Check connectivity, the shared secret, and the server version. The
probe is retried a few times, so a deployment that is still starting up
does not report as broken.

Examples:
  # Check the configured deployment
  bbbctl status

  # Machine-readable result
  bbbctl status -j`,
	RunE: getStatus,
}

// getStatus probes the deployment and reports what is wrong when the probe
// fails.
func getStatus(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	var ok bool
	var class bbb.FailureClass
	retry.Do(func() error {
		ok, class = client.IsConnectionWorking()
		if !ok && class == bbb.FailureBadURL {
			return fmt.Errorf("probe failed")
		}
		// A checksum rejection is definitive; retrying cannot fix the secret.
		return nil
	}, retry.Attempts(3), retry.Delay(1*time.Second), retry.DelayType(retry.BackOffDelay))

	if !ok {
		if jsonOutput {
			printJSON(map[string]any{
				"result":  0,
				"server":  client.BaseURL(),
				"failure": class.String(),
			})
		} else {
			errorLabel.Printf("Connection failed: %s\n", class.String())
			fmt.Printf("Server: %s\n", client.BaseURL())
		}
		return ErrAlreadyHandled
	}

	var version *response.Version
	if version, err = client.Version(); err != nil {
		version = nil
	}

	if jsonOutput {
		out := map[string]any{
			"result":      1,
			"server":      client.BaseURL(),
			"version_cli": getCLIVersion(),
		}
		if version != nil {
			out["api_version"] = version.Version()
		}
		printJSON(out)
		return nil
	}

	okLabel.Println("Connection OK")
	fmt.Printf("Server: %s\n", client.BaseURL())
	if version != nil && version.Version() != "" {
		fmt.Printf("API Version: %s\n", version.Version())
	}
	return nil
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
