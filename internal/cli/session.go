package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/foundry/internal/api/request"
	"github.com/mcoot/foundry/internal/api/response"
)

func newLoginCmd(a *app) *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session
			req := request.LoginRequest{Username: user, Password: pass}
			if err := a.client.Post(cmd.Context(), apiPath("session", "login"), req, &result); err != nil {
				return err
			}
			a.out(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a player account (does not log in)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.User
			req := request.RegisterRequest{Username: user, Password: pass}
			if err := a.client.Post(cmd.Context(), apiPath("session", "register"), req, &result); err != nil {
				return err
			}
			a.out(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username, at least 3 characters (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password, at least 4 characters (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Delete(cmd.Context(), apiPath("session")); err != nil {
				return err
			}
			a.out(cmd).PrintMessage("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session
			if err := a.client.Get(cmd.Context(), apiPath("session"), &result); err != nil {
				return err
			}
			a.out(cmd).Print(result)
			return nil
		},
	}
}

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Health
			if err := a.client.Get(cmd.Context(), apiPath("health"), &result); err != nil {
				return err
			}
			a.out(cmd).Print(result)
			return nil
		},
	}
}
