package main

import (
	"fmt"
	"strings"

	"github.com/codeboxhq/codebox/internal/cli"
	"github.com/codeboxhq/codebox/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [text]",
		Short: "Classify text and extract its code",
		Long: `Classify a piece of text into a pickup code, verification code, or note,
and store the extracted record.

Without flags, the built-in patterns run locally and classification never
fails. With --ai (or --backend), the configured AI backend is called instead;
backend errors are reported rather than silently falling back to patterns.

Examples:
  codebox classify "您的丰巢快递已到，取件码AB1234，请及时领取"
  codebox classify --ai "您的验证码是583920，请勿泄露"
  codebox classify --backend work-proxy "835210"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().Bool("ai", false, "Use the active AI backend")
	cmd.Flags().String("backend", "", "Use a specific configured backend")
	cmd.Flags().Bool("no-save", false, "Print the result without storing it")

	_ = viper.BindPFlag("classify.ai", cmd.Flags().Lookup("ai"))
	_ = viper.BindPFlag("classify.backend", cmd.Flags().Lookup("backend"))
	_ = viper.BindPFlag("classify.no_save", cmd.Flags().Lookup("no-save"))

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	text := strings.Join(args, " ")

	backend, err := resolveBackend(viper.GetString("classify.backend"), viper.GetBool("classify.ai"))
	if err != nil {
		return err
	}

	svc, err := newEngine()
	if err != nil {
		return err
	}

	result, err := svc.Classify(ctx, text, backend)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	printResult(result)

	if viper.GetBool("classify.no_save") {
		return nil
	}

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(db)

	item := model.NewItem(result, text)
	if err := db.SaveItem(ctx, &item); err != nil {
		return err
	}

	fmt.Println(cli.SubtleStyle.Render("saved " + item.ID))
	return nil
}

func printResult(result model.RecognitionResult) {
	fmt.Printf("%s %s\n", cli.TitleStyle.Render(string(result.Category)), cli.CodeStyle.Render(result.Code))
	if result.Platform != "" {
		fmt.Println(cli.SubtleStyle.Render("platform: " + result.Platform))
	}
	if result.StationName != "" {
		fmt.Println(cli.SubtleStyle.Render("station: " + result.StationName))
	}
	if result.StationAddress != "" {
		fmt.Println(cli.SubtleStyle.Render("address: " + result.StationAddress))
	}
}
