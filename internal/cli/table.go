package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/foundry/internal/api/request"
	"github.com/mcoot/foundry/internal/api/response"
)

func newTablesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List tables and how many players are at each",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.Table
			if err := a.client.Get(cmd.Context(), apiPath("tables"), &result); err != nil {
				return err
			}
			a.out(cmd).Print(result)
			return nil
		},
	}
}

func newLobbyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lobby",
		Short: "Table lobby commands",
	}

	var listTable string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show unclaimed items at a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.LobbyItem
			if err := a.client.Get(cmd.Context(), apiPath("tables", listTable, "lobby"), &result); err != nil {
				return err
			}
			a.out(cmd).Print(result)
			return nil
		},
	}
	addTableFlag(listCmd, &listTable)

	var addTable string
	var quantity int
	addCmd := &cobra.Command{
		Use:   "add <item_id>",
		Short: "Place catalog items straight into a lobby (game master)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.LobbyItem
			req := request.AddLobbyItemRequest{ItemID: args[0], Quantity: quantity}
			if err := a.client.Post(cmd.Context(), apiPath("tables", addTable, "lobby"), req, &result); err != nil {
				return err
			}
			a.out(cmd).Print(result)
			return nil
		},
	}
	addTableFlag(addCmd, &addTable)
	addCmd.Flags().IntVarP(&quantity, "qty", "n", 1, "Number of copies")

	var pickupTable string
	pickupCmd := &cobra.Command{
		Use:   "pickup <lobby_item_id>",
		Short: "Take an item from the lobby into your inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Inventory
			path := apiPath("tables", pickupTable, "lobby", args[0], "pickup")
			if err := a.client.Post(cmd.Context(), path, nil, &result); err != nil {
				return err
			}
			a.out(cmd).Print(result)
			return nil
		},
	}
	addTableFlag(pickupCmd, &pickupTable)

	cmd.AddCommand(listCmd, addCmd, pickupCmd)
	return cmd
}

func newInventoryCmd(a *app) *cobra.Command {
	var tableID string

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Show your inventory at a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Inventory
			if err := a.client.Get(cmd.Context(), apiPath("tables", tableID, "inventory"), &result); err != nil {
				return err
			}
			a.out(cmd).Print(result)
			return nil
		},
	}
	addTableFlag(cmd, &tableID)

	return cmd
}

func newTableCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Table presence and password commands",
	}

	printPlayers := func(cmd *cobra.Command, tableID string) error {
		var result []response.ActivePlayer
		if err := a.client.Get(cmd.Context(), apiPath("tables", tableID, "players"), &result); err != nil {
			return err
		}
		a.out(cmd).Print(result)
		return nil
	}

	var joinPassword string
	joinCmd := &cobra.Command{
		Use:   "join <table_id>",
		Short: "Join a table, leaving any other",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.ActivePlayer
			req := request.JoinTableRequest{Password: joinPassword}
			if err := a.client.Post(cmd.Context(), apiPath("tables", args[0], "join"), req, &result); err != nil {
				return err
			}
			a.out(cmd).Print(result)
			return nil
		},
	}
	joinCmd.Flags().StringVarP(&joinPassword, "password", "p", "", "Table password, if one is set")

	var clearPassword bool
	passwordCmd := &cobra.Command{
		Use:   "password <table_id> [password]",
		Short: "Set or clear a table's connect password (game master)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.PasswordRequest{}
			switch {
			case clearPassword:
			case len(args) == 2:
				req.Password = args[1]
			default:
				return cmd.Usage()
			}
			if err := a.client.Put(cmd.Context(), apiPath("tables", args[0], "password"), req, nil); err != nil {
				return err
			}
			if req.Password == "" {
				a.out(cmd).PrintMessage("Password removed from table " + args[0])
			} else {
				a.out(cmd).PrintMessage("Password set on table " + args[0])
			}
			return nil
		},
	}
	passwordCmd.Flags().BoolVar(&clearPassword, "clear", false, "Remove the password")

	cmd.AddCommand(
		joinCmd,
		&cobra.Command{
			Use:   "leave <table_id>",
			Short: "Leave a table",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.client.Post(cmd.Context(), apiPath("tables", args[0], "leave"), nil, nil); err != nil {
					return err
				}
				a.out(cmd).PrintMessage("Left table " + args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "kick <table_id> <user_id>",
			Short: "Remove a player from a table (game master)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				path := apiPath("tables", args[0], "players", args[1], "kick")
				if err := a.client.Post(cmd.Context(), path, nil, nil); err != nil {
					return err
				}
				return printPlayers(cmd, args[0])
			},
		},
		&cobra.Command{
			Use:   "players <table_id>",
			Short: "Show who is at a table",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printPlayers(cmd, args[0])
			},
		},
		passwordCmd,
		&cobra.Command{
			Use:   "unlock <table_id> <password>",
			Short: "Check a table password",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				var result response.PasswordCheck
				req := request.PasswordRequest{Password: args[1]}
				if err := a.client.Post(cmd.Context(), apiPath("tables", args[0], "password", "check"), req, &result); err != nil {
					return err
				}
				a.out(cmd).Print(result)
				return nil
			},
		},
	)

	return cmd
}
