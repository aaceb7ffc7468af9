package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func (a *app) dashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Resumen del inventario",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			s, err := a.dashboard.Summary(c.Context())
			if err != nil {
				return err
			}
			return a.render(c.OutOrStdout(), s, func(t table.Writer) {
				t.SetTitle("Inventario")
				t.AppendRows([]table.Row{
					{"Productos", s.TotalProducts},
					{"Stock bajo", s.LowStockItems},
					{"Valor total", s.TotalValue.StringFixed(2)},
					{"Categorías", s.Categories},
					{"Transacciones (7 días)", s.RecentTransactions},
				})
				if len(s.TopCategories) > 0 {
					t.AppendSeparator()
					for _, cat := range s.TopCategories {
						t.AppendRow(table.Row{"  " + cat.Name, cat.Count})
					}
				}
			})
		},
	}
}
