package cli

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/domain"
)

func (a *app) productCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "product", Aliases: []string{"products"}, Short: "Productos"}

	var (
		in    dto.ProductRequest
		price string
	)
	bind := func(c *cobra.Command) *cobra.Command {
		c.Flags().StringVar(&in.Name, "name", "", "nombre")
		c.Flags().StringVar(&in.SKU, "sku", "", "SKU")
		c.Flags().StringVar(&in.Description, "description", "", "descripción")
		c.Flags().StringVar(&price, "price", "0", "precio unitario")
		c.Flags().IntVar(&in.Quantity, "quantity", 0, "existencia")
		c.Flags().StringVar(&in.LocationID, "location", "", "ID de la ubicación")
		c.Flags().StringVar(&in.Category, "category", "", "categoría")
		c.Flags().IntVar(&in.Threshold, "threshold", 0, "nivel de stock bajo del producto")
		return c
	}
	request := func() (dto.ProductRequest, error) {
		p, err := decimal.NewFromString(price)
		if err != nil {
			return in, fmt.Errorf("--price %q: %w", price, domain.ErrInvalidPrice)
		}
		req := in
		req.Price = p
		return req, nil
	}
	list := func(use, short string, args cobra.PositionalArgs, fn func(c *cobra.Command, args []string) ([]dto.ProductResponse, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  args,
			RunE: func(c *cobra.Command, args []string) error {
				out, err := fn(c, args)
				if err != nil {
					return err
				}
				return a.render(c.OutOrStdout(), out, productTable(out...))
			},
		}
	}

	cmd.AddCommand(
		list("list", "Listar productos", cobra.NoArgs, func(c *cobra.Command, _ []string) ([]dto.ProductResponse, error) {
			return a.products.List(c.Context())
		}),
		list("search <name>", "Buscar por nombre (sensible a mayúsculas)", cobra.ExactArgs(1), func(c *cobra.Command, args []string) ([]dto.ProductResponse, error) {
			return a.products.SearchByName(c.Context(), args[0])
		}),
		list("category <category>", "Listar por categoría exacta", cobra.ExactArgs(1), func(c *cobra.Command, args []string) ([]dto.ProductResponse, error) {
			return a.products.ListByCategory(c.Context(), args[0])
		}),
		list("low-stock <threshold>", "Listar productos con cantidad menor que threshold", cobra.ExactArgs(1), func(c *cobra.Command, args []string) ([]dto.ProductResponse, error) {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return nil, fmt.Errorf("threshold %q: %w", args[0], domain.ErrInvalidInput)
			}
			return a.products.ListLowStock(c.Context(), n)
		}),
		&cobra.Command{
			Use:   "get <id>",
			Short: "Obtener un producto",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				out, err := a.products.GetByID(c.Context(), args[0])
				if err != nil {
					return err
				}
				if out == nil {
					return fmt.Errorf("producto %s: %w", args[0], domain.ErrNotFound)
				}
				return a.render(c.OutOrStdout(), out, productTable(*out))
			},
		},
		bind(&cobra.Command{
			Use:   "create",
			Short: "Crear un producto",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				req, err := request()
				if err != nil {
					return err
				}
				out, err := a.products.Create(c.Context(), req)
				if err != nil {
					return err
				}
				return a.render(c.OutOrStdout(), out, productTable(*out))
			},
		}),
		bind(&cobra.Command{
			Use:   "update <id>",
			Short: "Reemplazar un producto (lo crea si no existe)",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				req, err := request()
				if err != nil {
					return err
				}
				out, err := a.products.Update(c.Context(), args[0], req)
				if err != nil {
					return err
				}
				return a.render(c.OutOrStdout(), out, productTable(*out))
			},
		}),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Eliminar un producto",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				return a.products.Delete(c.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "replenishment",
			Short: "Productos en o bajo su umbral propio, con pedido sugerido",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				out, err := a.replenishment.List(c.Context())
				if err != nil {
					return err
				}
				return a.render(c.OutOrStdout(), out, func(t table.Writer) {
					t.AppendHeader(table.Row{"SKU", "Producto", "Existencia", "Umbral", "Faltante", "Sugerido"})
					for _, s := range out {
						t.AppendRow(table.Row{s.SKU, s.ProductName, s.CurrentStock, s.Threshold, s.Shortfall, s.SuggestedOrderQty})
					}
				})
			},
		},
		&cobra.Command{
			Use:   "reconcile <id>",
			Short: "Comparar la existencia guardada con el neto de sus transacciones",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				out, err := a.reconcile.Reconcile(c.Context(), args[0])
				if err != nil {
					return err
				}
				return a.render(c.OutOrStdout(), out, func(t table.Writer) {
					t.AppendHeader(table.Row{"SKU", "Producto", "Existencia", "Neto", "Transacciones", "Diferencia", "Cuadra"})
					t.AppendRow(table.Row{out.SKU, out.ProductName, out.StoredQuantity, out.TransactionNet, out.TransactionCount, out.Difference, out.InSync})
				})
			},
		},
	)
	return cmd
}
