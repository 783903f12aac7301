package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/foundry/internal/api/request"
	"github.com/mcoot/foundry/internal/api/response"
)

func newAuctionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auction",
		Short: "Auction house commands",
	}

	var listTable string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show listings at a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.AuctionListing
			if err := a.client.Get(cmd.Context(), apiPath("tables", listTable, "auction"), &result); err != nil {
				return err
			}
			a.out(cmd).Print(result)
			return nil
		},
	}
	addTableFlag(listCmd, &listTable)

	var sellTable string
	var price int
	sellCmd := &cobra.Command{
		Use:   "sell <item_id>",
		Short: "List one unit of an inventory item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.AuctionListing
			req := request.ListItemRequest{ItemID: args[0], Price: price}
			if err := a.client.Post(cmd.Context(), apiPath("tables", sellTable, "auction"), req, &result); err != nil {
				return err
			}
			a.out(cmd).Print(result)
			return nil
		},
	}
	addTableFlag(sellCmd, &sellTable)
	sellCmd.Flags().IntVar(&price, "price", 0, "Price in gold (required)")
	_ = sellCmd.MarkFlagRequired("price")

	cmd.AddCommand(
		listCmd,
		sellCmd,
		&cobra.Command{
			Use:   "buy <listing_id>",
			Short: "Buy a listing",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var result response.Inventory
				if err := a.client.Post(cmd.Context(), apiPath("auction", args[0], "buy"), nil, &result); err != nil {
					return err
				}
				a.out(cmd).Print(result)
				return nil
			},
		},
		&cobra.Command{
			Use:   "cancel <listing_id>",
			Short: "Withdraw your listing",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.client.Delete(cmd.Context(), apiPath("auction", args[0])); err != nil {
					return err
				}
				a.out(cmd).PrintMessage("Listing " + args[0] + " withdrawn")
				return nil
			},
		},
	)

	return cmd
}
