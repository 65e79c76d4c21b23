// seed carga datos de demostración: una cuenta administradora y un catálogo mínimo
// (desarrollador, juego, tipo de contrato y contrato activo).
//
// Uso: go run ./cmd/seed --admin-email admin@tienda.local --admin-password 'Secreto@123'
// Usa la misma configuración que la API (STORE_DRIVER, DATABASE_URL, MONGO_URI, ...).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/infrastructure/store"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := seedOptions{}
	var skipCatalog bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga la cuenta administradora y un catálogo de demostración",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Store.Driver == config.DriverMemory {
				return fmt.Errorf("seed no tiene efecto con STORE_DRIVER=memory")
			}
			log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
			opts.catalog = !skipCatalog

			repos, err := store.Open(cmd.Context(), cfg, log.Component("store"))
			if err != nil {
				return err
			}
			defer repos.Close()

			res, err := runSeed(cmd.Context(), repos, opts)
			if err != nil {
				return err
			}
			log.Info().
				Bool("admin_created", res.AdminCreated).
				Int("catalog_created", res.CatalogCreated).
				Msg("seed completado")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.adminEmail, "admin-email", "admin@tienda.local", "Email de la cuenta administradora")
	cmd.Flags().StringVar(&opts.adminPassword, "admin-password", "", "Password de la cuenta administradora (8-64 caracteres, mayúscula, número y @$!%*?&)")
	cmd.Flags().IntVar(&opts.bcryptCost, "bcrypt-cost", bcrypt.DefaultCost, "Coste bcrypt del hash")
	cmd.Flags().BoolVar(&skipCatalog, "skip-catalog", false, "Solo crear la cuenta administradora")
	_ = cmd.MarkFlagRequired("admin-password")

	return cmd
}
