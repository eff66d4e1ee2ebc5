package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/oficina-scheduler/internal/app"
	"github.com/BruksfildServices01/oficina-scheduler/internal/config"
	ucPreference "github.com/BruksfildServices01/oficina-scheduler/internal/usecase/preference"
)

func themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Mostra o tema salvo (claro/escuro)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				pref, err := ucPreference.NewGetTheme(a.Prefs).Execute(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "tema: %s\n", pref.Mode)
				return nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Alterna entre claro e escuro e salva",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				pref, err := ucPreference.NewToggleTheme(a.Prefs, a.Audit).Execute(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "tema: %s\n", pref.Mode)
				return nil
			})
		},
	})

	return cmd
}

// withApp: comandos de terminal só logam erros, a saída é a do comando.
func withApp(cmd *cobra.Command, fn func(a *app.App) error) error {
	cfg := config.Load()
	cfg.LogLevel = "error"

	a, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(a)
}
