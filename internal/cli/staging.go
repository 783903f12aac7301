package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/foundry/internal/api/request"
	"github.com/mcoot/foundry/internal/api/response"
)

func newStageCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stage",
		Short: "Game master staging commands",
	}

	printStaging := func(cmd *cobra.Command) error {
		var result []response.StagingItem
		if err := a.client.Get(cmd.Context(), apiPath("staging"), &result); err != nil {
			return err
		}
		a.out(cmd).Print(result)
		return nil
	}

	var quantity int
	addCmd := &cobra.Command{
		Use:   "add <item_id>",
		Short: "Queue copies of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.StagingItem
			req := request.StageRequest{ItemID: args[0], Quantity: quantity}
			if err := a.client.Post(cmd.Context(), apiPath("staging"), req, &result); err != nil {
				return err
			}
			a.out(cmd).Print(result)
			return nil
		},
	}
	addCmd.Flags().IntVarP(&quantity, "qty", "n", 1, "Number of copies")

	var tableID string
	distributeCmd := &cobra.Command{
		Use:   "distribute",
		Short: "Move everything staged into a table's lobby",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Distribution
			req := request.DistributeRequest{TableID: tableID}
			if err := a.client.Post(cmd.Context(), apiPath("staging", "distribute"), req, &result); err != nil {
				return err
			}
			a.out(cmd).Print(result)
			return nil
		},
	}
	addTableFlag(distributeCmd, &tableID)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Show staged items",
			RunE: func(cmd *cobra.Command, args []string) error {
				return printStaging(cmd)
			},
		},
		addCmd,
		&cobra.Command{
			Use:   "remove <item_id>",
			Short: "Drop an item from staging",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.client.Delete(cmd.Context(), apiPath("staging", args[0])); err != nil {
					return err
				}
				return printStaging(cmd)
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Empty staging",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.client.Delete(cmd.Context(), apiPath("staging")); err != nil {
					return err
				}
				a.out(cmd).PrintMessage("Staging cleared")
				return nil
			},
		},
		distributeCmd,
	)

	return cmd
}

// addTableFlag registers the required --table flag
func addTableFlag(cmd *cobra.Command, tableID *string) {
	cmd.Flags().StringVarP(tableID, "table", "t", "", "Table id (required)")
	_ = cmd.MarkFlagRequired("table")
}
