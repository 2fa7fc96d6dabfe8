package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/krisArias1990/FloristeriaSantaBarbara/internal/adapters/xlsx"
	"github.com/krisArias1990/FloristeriaSantaBarbara/internal/app"
	"github.com/krisArias1990/FloristeriaSantaBarbara/internal/domain"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func openApp(ctx context.Context) (*app.App, error) {
	path := os.Getenv("FLOR_DATA_PATH")
	if path == "" {
		path = "floristeria.db"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}
	return app.New(ctx, db)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "floristeria",
		Short:         "Catálogo y respaldos de la Floristería Santa Bárbara",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newStatsCmd(), newListCmd(), newExportCmd(), newImportCmd(),
		newExportXLSXCmd(), newClearImagesCmd(), newResetCmd())
	return root
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Resumen del catálogo y uso de almacenamiento",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			st, err := a.Catalog.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Productos:    %d (%d activos)\n", st.TotalProducts, st.ActiveProducts)
			fmt.Printf("Categorías:   %d\n", st.TotalCategories)
			fmt.Printf("Slides:       %d\n", st.TotalSlides)
			fmt.Printf("Almacenado:   %s\n", st.StorageUsed)
			if t, ok := a.Catalog.LastBackup(cmd.Context()); ok {
				fmt.Printf("Último respaldo: %s\n", t.Format(time.RFC3339))
			}
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista los productos del catálogo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			names := map[string]string{}
			for _, c := range a.Catalog.Categories(cmd.Context()) {
				names[c.ID] = c.Name
			}
			for _, p := range a.Catalog.Products(cmd.Context()) {
				state := "activo"
				if !p.IsActive {
					state = "inactivo"
				}
				cat := p.Category
				if n, ok := names[p.Category]; ok {
					cat = n
				}
				fmt.Printf("%-36s  ₡%-8d %-10s %s (%s)\n", p.ID, p.EffectivePrice(), state, p.Name, cat)
			}
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporta el catálogo completo como respaldo JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			data, err := a.Backup.ExportJSON(cmd.Context())
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			fmt.Printf("Respaldo escrito en %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "archivo de salida (por defecto stdout)")
	return cmd
}

func newImportCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "import <archivo>",
		Short: "Restaura un respaldo JSON (sobrescribe el catálogo)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			res, err := a.Backup.Import(cmd.Context(), data, yes)
			if err != nil {
				if errors.Is(err, domain.ErrStorageQuotaExceeded) {
					fmt.Fprintln(os.Stderr, "Almacenamiento lleno: exporte un respaldo y ejecute clear-images para liberar espacio.")
				}
				return err
			}
			if res.NeedsConfirmation {
				fmt.Println("El catálogo actual tiene productos. Repita con --yes para sobrescribirlo.")
				return nil
			}
			fmt.Printf("Importados: %d productos, %d categorías, %d slides\n",
				res.Products, res.Categories, res.Slides)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirma la sobrescritura del catálogo actual")
	return cmd
}

func newExportXLSXCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export-xlsx",
		Short: "Exporta productos y categorías a una hoja de cálculo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			f, err := xlsx.BuildCatalog(a.Catalog.Products(cmd.Context()), a.Catalog.Categories(cmd.Context()))
			if err != nil {
				return err
			}
			if err := f.SaveAs(out); err != nil {
				return err
			}
			fmt.Printf("Hoja de cálculo escrita en %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "catalogo.xlsx", "archivo .xlsx de salida")
	return cmd
}

func newClearImagesCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear-images",
		Short: "Elimina todas las imágenes guardadas (los productos permanecen)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				fmt.Println("Esta operación borra todas las imágenes. Repita con --yes para confirmar.")
				return nil
			}
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.Catalog.ClearImages(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Imágenes eliminadas")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirma el borrado de imágenes")
	return cmd
}

func newResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Borra todo el catálogo y vuelve a los datos iniciales",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				fmt.Println("Esta operación borra TODO. Repita con --yes para confirmar.")
				return nil
			}
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.Catalog.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Catálogo borrado; se recreará al próximo arranque")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirma el borrado total")
	return cmd
}
