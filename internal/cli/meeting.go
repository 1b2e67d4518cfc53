package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/meetkit/bbbclient/pkg/bbb/params"
	"github.com/meetkit/bbbclient/pkg/bbb/response"
)

var createParams = params.Create{}

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a meeting",
	Long: `Create a meeting on the deployment. When no meeting ID is given a
random one is generated and printed.

Examples:
  # Create a meeting with a generated ID
  bbbctl create --name "Weekly Sync"

  # Create a recorded meeting with a fixed ID
  bbbctl create --name "Weekly Sync" --meeting-id weekly-sync --record`,
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	p := createParams
	if p.MeetingID == "" {
		p.MeetingID = uuid.NewString()
	}
	if record, _ := cmd.Flags().GetBool("record"); record {
		p.Record = params.Bool(true)
	}

	resp, err := client.Create(&p)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return apiFailure(&resp.Raw)
	}

	if jsonOutput {
		printJSON(map[string]string{
			"meeting_id":          resp.MeetingID(),
			"internal_meeting_id": resp.InternalMeetingID(),
			"attendee_pw":         resp.AttendeePW(),
			"moderator_pw":        resp.ModeratorPW(),
		})
		return nil
	}

	okLabel.Println("Meeting created")
	fmt.Printf("Meeting ID: %s\n", resp.MeetingID())
	fmt.Printf("Internal ID: %s\n", resp.InternalMeetingID())
	if resp.DuplicateWarning() {
		fmt.Println("Note: the meeting already existed; the running instance was returned")
	}
	return nil
}

// joinCmd represents the join command
var joinCmd = &cobra.Command{
	Use:   "join <meeting-id>",
	Short: "Print a signed join URL for a meeting",
	Long: `Print a signed join URL for a meeting. The URL is meant to be opened
in a browser; it is valid until the deployment's secret rotates.

Examples:
  # Join link for a moderator
  bbbctl join weekly-sync --full-name "Ana Silva" --role MODERATOR`,
	Args: cobra.ExactArgs(1),
	RunE: runJoin,
}

func runJoin(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	fullName, _ := cmd.Flags().GetString("full-name")
	role, _ := cmd.Flags().GetString("role")
	password, _ := cmd.Flags().GetString("password")

	u, err := client.JoinURL(&params.Join{
		MeetingID: args[0],
		FullName:  fullName,
		Role:      role,
		Password:  password,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(map[string]string{"join_url": u})
	} else {
		fmt.Println(u)
	}
	return nil
}

// endCmd represents the end command
var endCmd = &cobra.Command{
	Use:   "end <meeting-id>",
	Short: "End a running meeting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		password, _ := cmd.Flags().GetString("password")

		resp, err := client.End(&params.End{MeetingID: args[0], Password: password})
		if err != nil {
			return err
		}
		if !resp.OK() {
			return apiFailure(&resp.Raw)
		}

		if jsonOutput {
			printJSON(map[string]int{"result": 1})
		} else {
			okLabel.Printf("End request sent for %s\n", args[0])
		}
		return nil
	},
}

// meetingsCmd represents the meetings command
var meetingsCmd = &cobra.Command{
	Use:   "meetings",
	Short: "List running meetings",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		resp, err := client.GetMeetings()
		if err != nil {
			return err
		}
		if !resp.OK() {
			return apiFailure(&resp.Raw)
		}

		meetings := resp.Meetings()
		if jsonOutput {
			out := make([]map[string]any, 0, len(meetings))
			for _, m := range meetings {
				out = append(out, meetingSummary(m))
			}
			printJSON(map[string]any{"result": 1, "meetings": out})
			return nil
		}

		if len(meetings) == 0 {
			fmt.Println("No meetings are running")
			return nil
		}
		for _, m := range meetings {
			printMeetingPretty(m)
			fmt.Println()
		}
		return nil
	},
}

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <meeting-id>",
	Short: "Show details of a running meeting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		resp, err := client.GetMeetingInfo(&params.GetMeetingInfo{MeetingID: args[0]})
		if err != nil {
			return err
		}
		if !resp.OK() {
			return apiFailure(&resp.Raw)
		}

		if jsonOutput {
			out := meetingSummary(resp)
			attendees := make([]map[string]any, 0)
			for _, a := range resp.Attendees() {
				attendees = append(attendees, map[string]any{
					"user_id":   a.UserID(),
					"full_name": a.FullName(),
					"role":      a.Role(),
					"presenter": a.IsPresenter(),
				})
			}
			out["attendees"] = attendees
			printJSON(out)
			return nil
		}

		printMeetingPretty(resp)
		if attendees := resp.Attendees(); len(attendees) > 0 {
			fmt.Println("Attendees:")
			for _, a := range attendees {
				marker := ""
				if a.IsPresenter() {
					marker = " (presenter)"
				}
				fmt.Printf("  %s  %s%s\n", a.Role(), a.FullName(), marker)
			}
		}
		return nil
	},
}

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat <meeting-id> <message>",
	Short: "Send a message to a meeting's public chat",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		userName, _ := cmd.Flags().GetString("user-name")

		resp, err := client.SendChatMessage(&params.SendChatMessage{
			MeetingID: args[0],
			Message:   args[1],
			UserName:  userName,
		})
		if err != nil {
			return err
		}
		if !resp.OK() {
			return apiFailure(&resp.Raw)
		}

		if jsonOutput {
			printJSON(map[string]int{"result": 1})
		} else {
			okLabel.Println("Message sent")
		}
		return nil
	},
}

func meetingSummary(m *response.MeetingInfo) map[string]any {
	return map[string]any{
		"meeting_id":        m.MeetingID(),
		"meeting_name":      m.MeetingName(),
		"running":           m.Running(),
		"recording":         m.Recording(),
		"participant_count": m.ParticipantCount(),
		"moderator_count":   m.ModeratorCount(),
		"start_time":        formatTime(m.StartTime()),
	}
}

func printMeetingPretty(m *response.MeetingInfo) {
	name := m.MeetingName()
	if name == "" {
		name = m.MeetingID()
	}
	fmt.Printf("%s (%s)\n", name, m.MeetingID())
	fmt.Printf("  Running: %v\n", m.Running())
	fmt.Printf("  Participants: %d (%d moderators, %d on video)\n",
		m.ParticipantCount(), m.ModeratorCount(), m.VideoCount())
	if m.Recording() {
		fmt.Println("  Recording: yes")
	}
	if st := m.StartTime(); !st.IsZero() {
		fmt.Printf("  Started: %s\n", formatTime(st))
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04:05 MST")
}

// apiFailure converts a FAILED response envelope into a CLI error.
func apiFailure(r *response.Raw) error {
	msg := r.Message()
	if msg == "" {
		msg = r.MessageKey()
	}
	if msg == "" {
		msg = "server rejected the request"
	}
	return fmt.Errorf("%s", strings.TrimSpace(msg))
}

func init() {
	createCmd.Flags().StringVar(&createParams.MeetingID, "meeting-id", "", "Meeting ID (generated when omitted)")
	createCmd.Flags().StringVar(&createParams.Name, "name", "", "Meeting name")
	createCmd.Flags().StringVar(&createParams.Welcome, "welcome", "", "Welcome message shown in chat")
	createCmd.Flags().StringVar(&createParams.ModeratorPW, "moderator-pw", "", "Moderator password")
	createCmd.Flags().StringVar(&createParams.AttendeePW, "attendee-pw", "", "Attendee password")
	createCmd.Flags().IntVar(&createParams.Duration, "duration", 0, "Maximum duration in minutes (0 = unlimited)")
	createCmd.Flags().IntVar(&createParams.MaxParticipants, "max-participants", 0, "Maximum number of participants")
	createCmd.Flags().Bool("record", false, "Record the meeting")
	createCmd.MarkFlagRequired("name")

	joinCmd.Flags().String("full-name", "", "Display name of the joining user")
	joinCmd.Flags().String("role", "", "Join role (MODERATOR or VIEWER)")
	joinCmd.Flags().String("password", "", "Meeting password (legacy join mode)")
	joinCmd.MarkFlagRequired("full-name")

	endCmd.Flags().String("password", "", "Moderator password (not needed on 2.0+ servers)")

	chatCmd.Flags().String("user-name", "", "Name the message is attributed to")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(endCmd)
	rootCmd.AddCommand(meetingsCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(chatCmd)
}
