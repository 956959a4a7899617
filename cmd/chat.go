package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/openretail/backoffice/internal"
	"github.com/spf13/cobra"
)

var chatInterval int

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Read and send messages",
}

var chatListCmd = &cobra.Command{
	Use:   "list",
	Short: "List conversations",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		page, err := client.Chat().Conversations(cmd.Context())
		if err != nil {
			return err
		}
		if len(page.Items) == 0 {
			fmt.Println(headerStyle.Render("No conversations"))
			return nil
		}
		fmt.Println(headerStyle.Render(fmt.Sprintf("%d conversation(s)", len(page.Items))))
		for _, c := range page.Items {
			preview := c.LastMessage
			if len(preview) > 60 {
				preview = preview[:57] + "..."
			}
			shortID := c.ID
			if len(shortID) > 8 {
				shortID = shortID[:8]
			}
			fmt.Printf("%s  %s ↔ %s  %s\n",
				idStyle.Render(shortID),
				c.ParticipantA, c.ParticipantB,
				dimStyle.Render(preview),
			)
		}
		return nil
	},
}

var chatHistoryCmd = &cobra.Command{
	Use:   "history <conversation-id>",
	Short: "Show a conversation's messages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		page, err := client.Chat().Messages(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		displayMessages(page.Items)
		// Reading the history counts as reading; ignore failure, the unread
		// counter will catch up on the next poll.
		if err := client.Chat().MarkRead(cmd.Context(), args[0]); err != nil {
			internal.LogDebug("Failed to mark conversation read: %v", err)
		}
		return nil
	},
}

var chatSendCmd = &cobra.Command{
	Use:   "send <conversation-id> <message...>",
	Short: "Send a message",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}

		composer := internal.NewComposer(client.Chat(), args[0])
		composer.SetDraft(strings.Join(args[1:], " "))

		msg, err := composer.Send(cmd.Context())
		if err != nil {
			// The composer restored the draft; surface it so the text is
			// not lost with the process.
			if draft := composer.Draft(); draft != "" {
				internal.PrintWarning("Message not sent. Draft: " + draft)
			}
			return err
		}
		internal.PrintSuccess("Sent " + msg.ID)
		return nil
	},
}

var chatWatchCmd = &cobra.Command{
	Use:   "watch <conversation-id>",
	Short: "Poll a conversation for new messages until interrupted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}

		lastSeen := ""
		poller := internal.NewPoller(time.Duration(chatInterval)*time.Second, func(ctx context.Context) {
			page, err := client.Chat().Messages(ctx, args[0])
			if err != nil {
				internal.LogDebug("Chat poll failed: %v", err)
				return
			}
			printNew := lastSeen == ""
			for _, m := range page.Items {
				if printNew {
					printMessage(m)
				} else if m.ID == lastSeen {
					printNew = true
				}
			}
			if n := len(page.Items); n > 0 {
				lastSeen = page.Items[n-1].ID
			}
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		internal.PrintInfo(fmt.Sprintf("Watching conversation every %ds (Ctrl-C to stop)", chatInterval))
		poller.Start(ctx)
		<-ctx.Done()
		poller.Stop()
		return nil
	},
}

var chatUnreadCmd = &cobra.Command{
	Use:   "unread",
	Short: "Show the unread-message count",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newAPIClient()
		if err != nil {
			return err
		}
		count, err := client.Chat().Unread(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%d unread message(s)\n", count)
		return nil
	},
}

func displayMessages(messages []internal.ChatMessage) {
	if len(messages) == 0 {
		fmt.Println(headerStyle.Render("No messages"))
		return
	}
	for _, m := range messages {
		printMessage(m)
	}
}

func printMessage(m internal.ChatMessage) {
	sender := m.SenderName
	if sender == "" {
		sender = m.SenderID
	}
	fmt.Printf("%s %s: %s\n", dimStyle.Render(m.Timestamp), titleStyle.Render(sender), m.Content)
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.AddCommand(chatListCmd)
	chatCmd.AddCommand(chatHistoryCmd)
	chatCmd.AddCommand(chatSendCmd)
	chatCmd.AddCommand(chatWatchCmd)
	chatCmd.AddCommand(chatUnreadCmd)

	chatWatchCmd.Flags().IntVar(&chatInterval, "interval", 5, "Poll interval in seconds")
}
