package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meetkit/bbbclient/pkg/bbb/params"
)

// recordingsCmd represents the recordings command group
var recordingsCmd = &cobra.Command{
	Use:   "recordings",
	Short: "Manage meeting recordings",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var recordingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recordings",
	Long: `List recordings, optionally filtered by meeting, record ID, or state.

Examples:
  # All recordings of one meeting
  bbbctl recordings list --meeting-id weekly-sync

  # Everything still being processed
  bbbctl recordings list --state processing`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		meetingIDs, _ := cmd.Flags().GetStringSlice("meeting-id")
		recordIDs, _ := cmd.Flags().GetStringSlice("record-id")
		states, _ := cmd.Flags().GetStringSlice("state")

		resp, err := client.GetRecordings(&params.GetRecordings{
			MeetingIDs: meetingIDs,
			RecordIDs:  recordIDs,
			States:     states,
		})
		if err != nil {
			return err
		}
		if !resp.OK() {
			return apiFailure(&resp.Raw)
		}

		recordings := resp.Recordings()
		if jsonOutput {
			out := make([]map[string]any, 0, len(recordings))
			for _, r := range recordings {
				formats := make([]map[string]string, 0)
				for _, f := range r.PlaybackFormats() {
					formats = append(formats, map[string]string{"type": f.Type(), "url": f.URL()})
				}
				out = append(out, map[string]any{
					"record_id":  r.RecordID(),
					"meeting_id": r.MeetingID(),
					"name":       r.Name(),
					"state":      r.State(),
					"published":  r.Published(),
					"start_time": formatTime(r.StartTime()),
					"playback":   formats,
				})
			}
			printJSON(map[string]any{"result": 1, "recordings": out})
			return nil
		}

		if len(recordings) == 0 {
			fmt.Println("No recordings found")
			return nil
		}
		for _, r := range recordings {
			fmt.Printf("%s  %s\n", r.RecordID(), r.Name())
			fmt.Printf("  Meeting: %s  State: %s  Published: %v\n", r.MeetingID(), r.State(), r.Published())
			for _, f := range r.PlaybackFormats() {
				fmt.Printf("  Playback (%s): %s\n", f.Type(), f.URL())
			}
		}
		return nil
	},
}

var recordingsPublishCmd = &cobra.Command{
	Use:   "publish <record-id>...",
	Short: "Publish recordings",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setPublished(args, true)
	},
}

var recordingsUnpublishCmd = &cobra.Command{
	Use:   "unpublish <record-id>...",
	Short: "Unpublish recordings without deleting them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setPublished(args, false)
	},
}

func setPublished(recordIDs []string, publish bool) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	resp, err := client.PublishRecordings(&params.PublishRecordings{RecordIDs: recordIDs, Publish: publish})
	if err != nil {
		return err
	}
	if !resp.OK() {
		return apiFailure(&resp.Raw)
	}

	if jsonOutput {
		printJSON(map[string]any{"result": 1, "published": publish})
		return nil
	}
	verb := "published"
	if !publish {
		verb = "unpublished"
	}
	okLabel.Printf("%d recording(s) %s\n", len(recordIDs), verb)
	return nil
}

var recordingsDeleteCmd = &cobra.Command{
	Use:   "delete <record-id>...",
	Short: "Delete recordings permanently",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		resp, err := client.DeleteRecordings(&params.DeleteRecordings{RecordIDs: args})
		if err != nil {
			return err
		}
		if !resp.OK() {
			return apiFailure(&resp.Raw)
		}

		if jsonOutput {
			printJSON(map[string]int{"result": 1})
		} else {
			okLabel.Printf("%d recording(s) deleted\n", len(args))
		}
		return nil
	},
}

var recordingsUpdateCmd = &cobra.Command{
	Use:   "update <record-id>...",
	Short: "Update recording metadata",
	Long: `Update recording metadata. Metadata entries are key=value pairs and
overwrite the stored values.

Examples:
  bbbctl recordings update rec-1 --meta course=cs101 --meta term=fall`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		metaFlags, _ := cmd.Flags().GetStringSlice("meta")
		meta := make(map[string]string, len(metaFlags))
		for _, kv := range metaFlags {
			k, v, ok := strings.Cut(kv, "=")
			if !ok {
				return fmt.Errorf("invalid metadata entry %q, expected key=value", kv)
			}
			meta[k] = v
		}

		resp, err := client.UpdateRecordings(&params.UpdateRecordings{RecordIDs: args, Meta: meta})
		if err != nil {
			return err
		}
		if !resp.OK() {
			return apiFailure(&resp.Raw)
		}

		if jsonOutput {
			printJSON(map[string]int{"result": 1})
		} else {
			okLabel.Printf("%d recording(s) updated\n", len(args))
		}
		return nil
	},
}

var textTracksCmd = &cobra.Command{
	Use:   "texttracks <record-id>",
	Short: "List caption and subtitle tracks of a recording",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		resp, err := client.GetRecordingTextTracks(&params.GetRecordingTextTracks{RecordID: args[0]})
		if err != nil {
			return err
		}
		if !resp.OK() {
			return apiFailure(&resp.Raw)
		}

		tracks := resp.Tracks()
		if jsonOutput {
			out := make([]map[string]string, 0, len(tracks))
			for _, t := range tracks {
				out = append(out, map[string]string{
					"kind":  t.Kind(),
					"lang":  t.Lang(),
					"label": t.Label(),
					"href":  t.Href(),
				})
			}
			printJSON(map[string]any{"result": 1, "tracks": out})
			return nil
		}

		if len(tracks) == 0 {
			fmt.Println("No text tracks found")
			return nil
		}
		for _, t := range tracks {
			fmt.Printf("%s (%s, %s): %s\n", t.Kind(), t.Lang(), t.Label(), t.Href())
		}
		return nil
	},
}

var textTrackUploadCmd = &cobra.Command{
	Use:   "upload-track <record-id> <file>",
	Short: "Upload a caption or subtitle track for a recording",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		kind, _ := cmd.Flags().GetString("kind")
		lang, _ := cmd.Flags().GetString("lang")
		label, _ := cmd.Flags().GetString("label")

		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("unable to read track file: %w", err)
		}

		resp, err := client.PutRecordingTextTrack(&params.PutRecordingTextTrack{
			RecordID: args[0],
			Kind:     kind,
			Lang:     lang,
			Label:    label,
			File:     data,
			FileName: filepath.Base(args[1]),
		})
		if err != nil {
			return err
		}
		if !resp.OK() {
			return apiFailure(&resp.Raw)
		}

		if jsonOutput {
			printJSON(map[string]string{"record_id": resp.RecordID()})
		} else {
			okLabel.Printf("Track uploaded to %s\n", resp.RecordID())
		}
		return nil
	},
}

func init() {
	recordingsListCmd.Flags().StringSlice("meeting-id", nil, "Filter by meeting ID (repeatable)")
	recordingsListCmd.Flags().StringSlice("record-id", nil, "Filter by record ID (repeatable)")
	recordingsListCmd.Flags().StringSlice("state", nil, "Filter by state (repeatable)")

	recordingsUpdateCmd.Flags().StringSlice("meta", nil, "Metadata entry as key=value (repeatable)")

	textTrackUploadCmd.Flags().String("kind", "subtitles", "Track kind (subtitles or captions)")
	textTrackUploadCmd.Flags().String("lang", "", "Track language tag, e.g. en-US")
	textTrackUploadCmd.Flags().String("label", "", "Human-readable track label")
	textTrackUploadCmd.MarkFlagRequired("lang")

	recordingsCmd.AddCommand(recordingsListCmd)
	recordingsCmd.AddCommand(recordingsPublishCmd)
	recordingsCmd.AddCommand(recordingsUnpublishCmd)
	recordingsCmd.AddCommand(recordingsDeleteCmd)
	recordingsCmd.AddCommand(recordingsUpdateCmd)
	recordingsCmd.AddCommand(textTracksCmd)
	recordingsCmd.AddCommand(textTrackUploadCmd)
	rootCmd.AddCommand(recordingsCmd)
}
