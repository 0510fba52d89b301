package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shaharia-lab/topicast/internal/notification"
	"github.com/shaharia-lab/topicast/internal/service"
)

func newBroadcastCmd() *cobra.Command {
	var (
		req    notification.BroadcastRequest
		isTest bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "broadcast",
		Short: "Send a broadcast from the command line",
		Long: `Send one broadcast to the all-devices topic without starting the server.

Examples:
  topicast broadcast --title "Hi" --body "There"
  topicast broadcast --title "Quiz" --body "New quiz" --data quizId=q1
  topicast broadcast --test
  topicast broadcast --title "Hi" --body "There" --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isTest && (cmd.Flags().Changed("title") || cmd.Flags().Changed("body") || cmd.Flags().Changed("data")) {
				return fmt.Errorf("--test cannot be combined with --title, --body or --data")
			}

			if dryRun {
				msg := notification.TestBroadcast()
				if !isTest {
					if req.Title == "" || req.Body == "" {
						return &service.ValidationError{Message: service.ErrMsgTitleBodyRequired}
					}
					msg = notification.Build(req.Title, req.Body, req.Data)
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(msg)
			}

			cfg, log, closer, err := loadRuntime()
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx := runContext(cmd.Context())
			provider, err := newProvider(ctx, cfg.FirebaseServiceAccountPath)
			if err != nil {
				return fmt.Errorf("bootstrapping push provider: %w", err)
			}

			svc := service.NewBroadcastService(provider, nil, log)

			var id string
			if isTest {
				id, err = svc.BroadcastTest(ctx)
			} else {
				id, err = svc.Broadcast(ctx, req)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
			return err
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "Notification title")
	cmd.Flags().StringVar(&req.Body, "body", "", "Notification body")
	cmd.Flags().StringToStringVar(&req.Data, "data", nil, "Data payload entries as key=value (repeatable)")
	cmd.Flags().BoolVar(&isTest, "test", false, "Send the fixed test broadcast")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the message as JSON instead of sending it")

	return cmd
}
