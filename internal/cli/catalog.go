package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/foundry/internal/api/request"
	"github.com/mcoot/foundry/internal/api/response"
)

func newItemCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Catalog item commands",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List catalog items",
			RunE: func(cmd *cobra.Command, args []string) error {
				var result []response.Item
				if err := a.client.Get(cmd.Context(), apiPath("items"), &result); err != nil {
					return err
				}
				a.out(cmd).Print(result)
				return nil
			},
		},
		newItemCreateCmd(a),
		newItemUpdateCmd(a),
		&cobra.Command{
			Use:   "delete <item_id>",
			Short: "Delete a catalog item (game master)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.client.Delete(cmd.Context(), apiPath("items", args[0])); err != nil {
					return err
				}
				a.out(cmd).PrintMessage("Item " + args[0] + " deleted")
				return nil
			},
		},
	)

	return cmd
}

func newItemCreateCmd(a *app) *cobra.Command {
	var req request.CreateItemRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add an item to the catalog (game master)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Item
			if err := a.client.Post(cmd.Context(), apiPath("items"), req, &result); err != nil {
				return err
			}
			a.out(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Item name (required)")
	cmd.Flags().StringVar(&req.NameColor, "color", "#ffffff", "Name colour, e.g. #ff6b6b")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description (required)")
	cmd.Flags().StringVar(&req.Rarity, "rarity", "common", "common, uncommon, rare, epic or legendary")
	cmd.Flags().StringVar(&req.Icon, "icon", "", "Icon (required)")
	cmd.Flags().Float64Var(&req.Weight, "weight", 1.0, "Weight")
	cmd.Flags().StringVar(&req.Category, "category", "", "Category (required)")
	for _, flag := range []string{"name", "description", "icon", "category"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}

func newItemUpdateCmd(a *app) *cobra.Command {
	var (
		name, color, description, rarity, icon, category string
		weight                                           float64
	)

	cmd := &cobra.Command{
		Use:   "update <item_id>",
		Short: "Change fields of a catalog item (game master)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only flags given on the command line are sent
			flags := cmd.Flags()
			var req request.UpdateItemRequest
			if flags.Changed("name") {
				req.Name = &name
			}
			if flags.Changed("color") {
				req.NameColor = &color
			}
			if flags.Changed("description") {
				req.Description = &description
			}
			if flags.Changed("rarity") {
				req.Rarity = &rarity
			}
			if flags.Changed("icon") {
				req.Icon = &icon
			}
			if flags.Changed("weight") {
				req.Weight = &weight
			}
			if flags.Changed("category") {
				req.Category = &category
			}

			var result response.Item
			if err := a.client.Patch(cmd.Context(), apiPath("items", args[0]), req, &result); err != nil {
				return err
			}
			a.out(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Item name")
	cmd.Flags().StringVar(&color, "color", "", "Name colour")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&rarity, "rarity", "", "Rarity")
	cmd.Flags().StringVar(&icon, "icon", "", "Icon")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight")
	cmd.Flags().StringVar(&category, "category", "", "Category")

	return cmd
}

func newRecipeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Craft recipe commands",
	}

	var req request.CreateRecipeRequest
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Add a two-ingredient recipe (game master)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Recipe
			if err := a.client.Post(cmd.Context(), apiPath("recipes"), req, &result); err != nil {
				return err
			}
			a.out(cmd).Print(result)
			return nil
		},
	}
	createCmd.Flags().StringVar(&req.Name, "name", "", "Recipe name (required)")
	createCmd.Flags().StringVar(&req.IngredientA, "a", "", "First ingredient item id (required)")
	createCmd.Flags().StringVar(&req.IngredientB, "b", "", "Second ingredient item id (required)")
	createCmd.Flags().StringVar(&req.ResultItemID, "result", "", "Result item id (required)")
	for _, f := range []string{"name", "a", "b", "result"} {
		_ = createCmd.MarkFlagRequired(f)
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List craft recipes",
			RunE: func(cmd *cobra.Command, args []string) error {
				var result []response.Recipe
				if err := a.client.Get(cmd.Context(), apiPath("recipes"), &result); err != nil {
					return err
				}
				a.out(cmd).Print(result)
				return nil
			},
		},
		createCmd,
		&cobra.Command{
			Use:   "delete <recipe_id>",
			Short: "Delete a recipe (game master)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.client.Delete(cmd.Context(), apiPath("recipes", args[0])); err != nil {
					return err
				}
				a.out(cmd).PrintMessage("Recipe " + args[0] + " deleted")
				return nil
			},
		},
	)

	return cmd
}
