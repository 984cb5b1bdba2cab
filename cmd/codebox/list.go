package main

import (
	"fmt"

	"github.com/codeboxhq/codebox/internal/cli"
	"github.com/codeboxhq/codebox/internal/model"
	"github.com/codeboxhq/codebox/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored codes, most recent first",
		RunE:  runList,
	}

	cmd.Flags().StringP("category", "c", "", "Filter by category (pickup, verification, other)")
	cmd.Flags().IntP("limit", "n", 20, "Maximum number of records")

	_ = viper.BindPFlag("list.category", cmd.Flags().Lookup("category"))
	_ = viper.BindPFlag("list.limit", cmd.Flags().Lookup("limit"))

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	filter := storage.ItemFilter{Limit: viper.GetInt("list.limit")}
	if raw := viper.GetString("list.category"); raw != "" {
		category, err := categoryFromFlag(raw)
		if err != nil {
			return err
		}
		filter.Category = category
	}

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(db)

	items, err := db.ListItems(ctx, filter)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println(cli.SubtleStyle.Render("no records"))
		return nil
	}

	for _, item := range items {
		status := " "
		if item.Used {
			status = cli.SuccessStyle.Render("✓")
		}
		line := fmt.Sprintf("%s %s  %s", status, cli.CodeStyle.Render(item.Code), item.Category)
		if item.Platform != "" {
			line += cli.SubtleStyle.Render("  " + item.Platform)
		}
		line += cli.SubtleStyle.Render("  " + item.CreatedAt.Format("2006-01-02 15:04"))
		line += cli.SubtleStyle.Render("  " + item.ID)
		fmt.Println(line)
	}
	return nil
}

func useCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <id>",
		Short: "Mark a stored code as used",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(db)
			if err := db.MarkUsed(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render("marked used"))
			return nil
		},
	}
}

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a stored code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(db)
			if err := db.DeleteItem(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render("deleted"))
			return nil
		},
	}
}

func categoryFromFlag(raw string) (model.Category, error) {
	switch raw {
	case "pickup", string(model.CategoryPickup):
		return model.CategoryPickup, nil
	case "verification", string(model.CategoryVerification):
		return model.CategoryVerification, nil
	case "other", string(model.CategoryOther):
		return model.CategoryOther, nil
	default:
		return "", fmt.Errorf("unknown category %q", raw)
	}
}
