package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// app carries the parsed flags and API client through the command tree
type app struct {
	cfg    *Config
	client *Client
}

// out returns a formatter writing to the command's stdout
func (a *app) out(cmd *cobra.Command) *Output {
	return NewOutput(a.cfg.Output, cmd.OutOrStdout())
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:   "foundry",
		Short: "CLI for the foundry tabletop companion API",
		Long: `foundry talks to a running foundry server over its JSON API.

The server keeps a single signed in user: log in once and every following
command acts as that user. Game master commands need an admin account.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			a.client = NewClient(a.cfg.ServerURL, a.cfg.Timeout)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfg.ServerURL, "server", a.cfg.ServerURL, "Server URL (env: FOUNDRY_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&a.cfg.Output, "output", "o", a.cfg.Output, "Output format: text, json (env: FOUNDRY_OUTPUT)")
	rootCmd.PersistentFlags().DurationVar(&a.cfg.Timeout, "timeout", a.cfg.Timeout, "Request timeout")

	rootCmd.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newTablesCmd(a),
		newItemCmd(a),
		newRecipeCmd(a),
		newStageCmd(a),
		newLobbyCmd(a),
		newInventoryCmd(a),
		newAuctionCmd(a),
		newTableCmd(a),
		newChatCmd(a),
		newGlobalCmd(a),
		newEventsCmd(a),
		newHealthCmd(a),
	)

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
