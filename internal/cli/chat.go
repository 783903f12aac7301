package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/foundry/internal/api/request"
	"github.com/mcoot/foundry/internal/api/response"
)

func newChatCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Table chat commands",
	}

	var itemID string
	sendCmd := &cobra.Command{
		Use:   "send <table_id> <message...>",
		Short: "Post to a table's chat",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.ChatMessage
			req := request.ChatRequest{Message: strings.Join(args[1:], " "), ItemID: itemID}
			if err := a.client.Post(cmd.Context(), apiPath("tables", args[0], "chat"), req, &result); err != nil {
				return err
			}
			a.out(cmd).Print(result)
			return nil
		},
	}
	sendCmd.Flags().StringVar(&itemID, "item", "", "Attach a catalog item")

	cmd.AddCommand(
		sendCmd,
		&cobra.Command{
			Use:   "list <table_id>",
			Short: "Show a table's chat",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var result []response.ChatMessage
				if err := a.client.Get(cmd.Context(), apiPath("tables", args[0], "chat"), &result); err != nil {
					return err
				}
				a.out(cmd).Print(result)
				return nil
			},
		},
	)

	return cmd
}

func newGlobalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "global",
		Short: "Global chat commands",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "send <message...>",
			Short: "Post to the global chat",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var result response.GlobalChatMessage
				req := request.GlobalChatRequest{Message: strings.Join(args, " ")}
				if err := a.client.Post(cmd.Context(), apiPath("chat", "global"), req, &result); err != nil {
					return err
				}
				a.out(cmd).Print(result)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "Show the global chat",
			RunE: func(cmd *cobra.Command, args []string) error {
				var result []response.GlobalChatMessage
				if err := a.client.Get(cmd.Context(), apiPath("chat", "global"), &result); err != nil {
					return err
				}
				a.out(cmd).Print(result)
				return nil
			},
		},
	)

	return cmd
}

func newEventsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "events <table_id>",
		Short: "Show a table's event log, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.LogEntry
			if err := a.client.Get(cmd.Context(), apiPath("tables", args[0], "events"), &result); err != nil {
				return err
			}
			a.out(cmd).Print(result)
			return nil
		},
	}
}
