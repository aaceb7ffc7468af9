package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-tracker/internal/infrastructure/catalog"
)

func (a *app) seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <catalog.xml>",
		Short: "Cargar ubicaciones y productos desde un catálogo XML",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("abrir catálogo: %w", err)
			}
			defer f.Close()

			cat, err := catalog.Parse(f)
			if err != nil {
				return err
			}
			res, err := a.seed.Seed(c.Context(), *cat)
			if err != nil {
				return err
			}
			return a.render(c.OutOrStdout(), res, func(t table.Writer) {
				t.AppendRows([]table.Row{
					{"Ubicaciones creadas", res.LocationsCreated},
					{"Ubicaciones existentes", res.LocationsReused},
					{"Productos creados", res.ProductsCreated},
					{"Sin ubicación", len(res.Unresolved)},
				})
			})
		},
	}
}
