package main

import (
	"fmt"
	"log/slog"

	"github.com/codeboxhq/codebox/internal/cli"
	"github.com/codeboxhq/codebox/internal/config"
	"github.com/codeboxhq/codebox/internal/llm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func backendsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backends",
		Short: "Show configured AI backends",
		RunE:  runBackends,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "test <name>",
		Short: "Check that a backend is reachable with its credentials",
		Args:  cobra.ExactArgs(1),
		RunE:  runBackendTest,
	})

	return cmd
}

func runBackends(_ *cobra.Command, _ []string) error {
	backends, err := config.Backends()
	if err != nil {
		return err
	}

	if len(backends) == 0 {
		fmt.Println(cli.SubtleStyle.Render("no backends configured"))
		return nil
	}

	active := viper.GetString("recognition.active_backend")
	for _, backend := range backends {
		marker := " "
		if backend.Name == active {
			marker = cli.SuccessStyle.Render("*")
		}
		key := "not set"
		if backend.APIKey != "" {
			key = "configured"
		}
		fmt.Printf("%s %s  %s  %s  %s\n",
			marker,
			cli.TitleStyle.Render(backend.Name),
			backend.Provider,
			backend.Model,
			cli.SubtleStyle.Render("key "+key))
	}
	return nil
}

func runBackendTest(cmd *cobra.Command, args []string) error {
	backend, err := config.FindBackend(args[0])
	if err != nil {
		return err
	}

	status := llm.NewClient(slog.Default()).Probe(cmd.Context(), *backend)
	if status.Reachable {
		fmt.Println(cli.SuccessStyle.Render("reachable"))
		return nil
	}
	return fmt.Errorf("backend %q unreachable: %s", backend.Name, status.Reason)
}
