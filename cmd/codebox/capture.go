package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/codeboxhq/codebox/internal/cli"
	"github.com/codeboxhq/codebox/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func captureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capture <image-file>",
		Short: "Extract a code from a screenshot",
		Long: `Send a screenshot (or any image) to the configured AI backend and store
the recognized code. Image recognition always requires a backend; there is
no local fallback.

Results classified as plain notes with no extractable code are discarded,
matching the screenshot capture flow.`,
		Args: cobra.ExactArgs(1),
		RunE: runCapture,
	}

	cmd.Flags().String("backend", "", "Use a specific configured backend")
	_ = viper.BindPFlag("capture.backend", cmd.Flags().Lookup("backend"))

	return cmd
}

func runCapture(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	imagePath := args[0]

	data, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	backend, err := resolveBackend(viper.GetString("capture.backend"), true)
	if err != nil {
		return err
	}

	svc, err := newEngine()
	if err != nil {
		return err
	}

	result, err := svc.ClassifyImage(ctx, data, imageMIMEType(imagePath), backend)
	if err != nil {
		return fmt.Errorf("image recognition failed: %w", err)
	}

	if result.Category == model.CategoryOther && result.Code == "" {
		slog.Info("No code found in image, nothing stored")
		fmt.Println(cli.SubtleStyle.Render("no code found"))
		return nil
	}

	printResult(result)

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(db)

	item := model.NewItem(result, "")
	if err := db.SaveItem(ctx, &item); err != nil {
		return err
	}

	fmt.Println(cli.SubtleStyle.Render("saved " + item.ID))
	return nil
}

func imageMIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}
