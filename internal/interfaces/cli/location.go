package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/domain"
)

func (a *app) locationCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "location", Aliases: []string{"locations"}, Short: "Ubicaciones de almacenamiento"}

	var in dto.LocationRequest
	bind := func(c *cobra.Command) *cobra.Command {
		c.Flags().StringVar(&in.Name, "name", "", "nombre")
		c.Flags().StringVar(&in.Address, "address", "", "dirección")
		c.Flags().StringVar(&in.Type, "type", "", "warehouse|store|distribution_center|office")
		c.Flags().StringVar(&in.ContactInfo, "contact", "", "datos de contacto")
		_ = c.MarkFlagRequired("type")
		return c
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Listar ubicaciones",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				out, err := a.locations.List(c.Context())
				if err != nil {
					return err
				}
				return a.render(c.OutOrStdout(), out, locationTable(out...))
			},
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Obtener una ubicación",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				out, err := a.locations.GetByID(c.Context(), args[0])
				if err != nil {
					return err
				}
				if out == nil {
					return fmt.Errorf("ubicación %s: %w", args[0], domain.ErrNotFound)
				}
				return a.render(c.OutOrStdout(), out, locationTable(*out))
			},
		},
		bind(&cobra.Command{
			Use:   "create",
			Short: "Crear una ubicación",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				out, err := a.locations.Create(c.Context(), in)
				if err != nil {
					return err
				}
				return a.render(c.OutOrStdout(), out, locationTable(*out))
			},
		}),
		bind(&cobra.Command{
			Use:   "update <id>",
			Short: "Reemplazar una ubicación (la crea si no existe)",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				out, err := a.locations.Update(c.Context(), args[0], in)
				if err != nil {
					return err
				}
				return a.render(c.OutOrStdout(), out, locationTable(*out))
			},
		}),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Eliminar una ubicación",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				return a.locations.Delete(c.Context(), args[0])
			},
		},
	)
	return cmd
}
