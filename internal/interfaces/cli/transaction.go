package cli

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/domain"
)

func (a *app) transactionCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "transaction", Aliases: []string{"transactions", "tx"}, Short: "Transacciones de entrada y salida"}

	var (
		in        dto.TransactionRequest
		timestamp string
	)
	bind := func(c *cobra.Command) *cobra.Command {
		c.Flags().StringVar(&in.ProductID, "product", "", "ID del producto")
		c.Flags().StringVar(&in.Type, "type", "", "IN|OUT")
		c.Flags().IntVar(&in.Quantity, "quantity", 0, "cantidad (> 0)")
		c.Flags().StringVar(&in.UserID, "user", "", "ID del usuario")
		c.Flags().StringVar(&in.Notes, "notes", "", "notas")
		c.Flags().StringVar(&timestamp, "timestamp", "", "fecha RFC3339 (por defecto, ahora)")
		_ = c.MarkFlagRequired("type")
		_ = c.MarkFlagRequired("quantity")
		return c
	}
	request := func() (dto.TransactionRequest, error) {
		req := in
		if timestamp != "" {
			ts, err := time.Parse(time.RFC3339, timestamp)
			if err != nil {
				return req, fmt.Errorf("--timestamp %q: %w", timestamp, domain.ErrInvalidInput)
			}
			req.Timestamp = &ts
		}
		return req, nil
	}
	list := func(use, short string, args cobra.PositionalArgs, fn func(c *cobra.Command, args []string) ([]dto.TransactionResponse, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  args,
			RunE: func(c *cobra.Command, args []string) error {
				out, err := fn(c, args)
				if err != nil {
					return err
				}
				return a.render(c.OutOrStdout(), out, transactionTable(out...))
			},
		}
	}

	cmd.AddCommand(
		list("list", "Listar transacciones", cobra.NoArgs, func(c *cobra.Command, _ []string) ([]dto.TransactionResponse, error) {
			return a.transactions.List(c.Context())
		}),
		list("by-product <productId>", "Transacciones de un producto", cobra.ExactArgs(1), func(c *cobra.Command, args []string) ([]dto.TransactionResponse, error) {
			return a.transactions.ListByProduct(c.Context(), args[0])
		}),
		list("by-user <userId>", "Transacciones de un usuario", cobra.ExactArgs(1), func(c *cobra.Command, args []string) ([]dto.TransactionResponse, error) {
			return a.transactions.ListByUser(c.Context(), args[0])
		}),
		list("by-type <IN|OUT>", "Transacciones de un tipo", cobra.ExactArgs(1), func(c *cobra.Command, args []string) ([]dto.TransactionResponse, error) {
			return a.transactions.ListByType(c.Context(), args[0])
		}),
		&cobra.Command{
			Use:   "get <id>",
			Short: "Obtener una transacción",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				out, err := a.transactions.GetByID(c.Context(), args[0])
				if err != nil {
					return err
				}
				if out == nil {
					return fmt.Errorf("transacción %s: %w", args[0], domain.ErrNotFound)
				}
				return a.render(c.OutOrStdout(), out, transactionTable(*out))
			},
		},
		bind(&cobra.Command{
			Use:   "create",
			Short: "Registrar una transacción sin tocar la existencia del producto",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				req, err := request()
				if err != nil {
					return err
				}
				out, err := a.transactions.Create(c.Context(), req)
				if err != nil {
					return err
				}
				return a.render(c.OutOrStdout(), out, transactionTable(*out))
			},
		}),
		bind(&cobra.Command{
			Use:   "register",
			Short: "Registrar una transacción y ajustar la existencia del producto",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				req, err := request()
				if err != nil {
					return err
				}
				out, err := a.movements.Register(c.Context(), req)
				if err != nil {
					return err
				}
				return a.render(c.OutOrStdout(), out, func(t table.Writer) {
					t.AppendHeader(table.Row{"Transacción", "Producto", "Tipo", "Cantidad", "Existencia"})
					t.AppendRow(table.Row{out.Transaction.ID, out.Product.Name, out.Transaction.Type, out.Transaction.Quantity, out.Product.Quantity})
				})
			},
		}),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Eliminar una transacción (no revierte la existencia)",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				return a.transactions.Delete(c.Context(), args[0])
			},
		},
	)
	return cmd
}
