package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/meetkit/bbbclient/pkg/bbb/params"
)

// hooksCmd represents the hooks command group
var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Manage event webhooks",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var hooksCreateCmd = &cobra.Command{
	Use:   "create <callback-url>",
	Short: "Register a webhook for meeting events",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		meetingID, _ := cmd.Flags().GetString("meeting-id")
		p := &params.CreateHook{CallbackURL: args[0], MeetingID: meetingID}
		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			p.GetRaw = params.Bool(true)
		}

		resp, err := client.CreateHook(p)
		if err != nil {
			return err
		}
		if !resp.OK() {
			return apiFailure(&resp.Raw)
		}

		if jsonOutput {
			printJSON(map[string]any{
				"hook_id":        resp.HookID(),
				"already_exists": resp.AlreadyExists(),
			})
			return nil
		}
		if resp.AlreadyExists() {
			fmt.Printf("Hook already registered with ID %d\n", resp.HookID())
		} else {
			okLabel.Printf("Hook registered with ID %d\n", resp.HookID())
		}
		return nil
	},
}

var hooksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered webhooks",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		meetingID, _ := cmd.Flags().GetString("meeting-id")
		resp, err := client.ListHooks(&params.ListHooks{MeetingID: meetingID})
		if err != nil {
			return err
		}
		if !resp.OK() {
			return apiFailure(&resp.Raw)
		}

		hooks := resp.Hooks()
		if jsonOutput {
			out := make([]map[string]any, 0, len(hooks))
			for _, h := range hooks {
				out = append(out, map[string]any{
					"hook_id":      h.HookID(),
					"callback_url": h.CallbackURL(),
					"meeting_id":   h.MeetingID(),
					"permanent":    h.PermanentHook(),
				})
			}
			printJSON(map[string]any{"result": 1, "hooks": out})
			return nil
		}

		if len(hooks) == 0 {
			fmt.Println("No hooks registered")
			return nil
		}
		for _, h := range hooks {
			scope := "all meetings"
			if h.MeetingID() != "" {
				scope = h.MeetingID()
			}
			fmt.Printf("%d  %s  (%s)\n", h.HookID(), h.CallbackURL(), scope)
		}
		return nil
	},
}

var hooksDestroyCmd = &cobra.Command{
	Use:   "destroy <hook-id>",
	Short: "Remove a registered webhook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		hookID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("hook ID must be a number: %q", args[0])
		}

		resp, err := client.DestroyHook(&params.DestroyHook{HookID: hookID})
		if err != nil {
			return err
		}
		if !resp.OK() {
			return apiFailure(&resp.Raw)
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "removed": resp.Removed()})
		} else {
			okLabel.Printf("Hook %d removed\n", hookID)
		}
		return nil
	},
}

func init() {
	hooksCreateCmd.Flags().String("meeting-id", "", "Scope the hook to one meeting")
	hooksCreateCmd.Flags().Bool("raw", false, "Deliver raw event payloads")

	hooksListCmd.Flags().String("meeting-id", "", "List only hooks scoped to one meeting")

	hooksCmd.AddCommand(hooksCreateCmd)
	hooksCmd.AddCommand(hooksListCmd)
	hooksCmd.AddCommand(hooksDestroyCmd)
	rootCmd.AddCommand(hooksCmd)
}
