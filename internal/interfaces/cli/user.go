package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

func (a *app) userCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "user", Aliases: []string{"users"}, Short: "Usuarios"}

	var in dto.UserRequest
	bind := func(c *cobra.Command) *cobra.Command {
		c.Flags().StringVar(&in.Username, "username", "", "nombre de usuario")
		c.Flags().StringVar(&in.Password, "password", "", "contraseña (en update, vacío conserva la actual)")
		c.Flags().StringVar(&in.Role, "role", "", fmt.Sprintf("rol (texto libre; sugeridos %s|%s|%s|%s)",
			entity.RoleAdmin, entity.RoleManager, entity.RoleStaff, entity.RoleViewer))
		c.Flags().StringVar(&in.Email, "email", "", "email")
		return c
	}
	one := func(use, short string, fn func(c *cobra.Command, arg string) (*dto.UserResponse, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				out, err := fn(c, args[0])
				if err != nil {
					return err
				}
				if out == nil {
					return fmt.Errorf("usuario %s: %w", args[0], domain.ErrNotFound)
				}
				return a.render(c.OutOrStdout(), out, userTable(*out))
			},
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Listar usuarios",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				out, err := a.users.List(c.Context())
				if err != nil {
					return err
				}
				return a.render(c.OutOrStdout(), out, userTable(out...))
			},
		},
		one("get <id>", "Obtener un usuario", func(c *cobra.Command, id string) (*dto.UserResponse, error) {
			return a.users.GetByID(c.Context(), id)
		}),
		one("by-username <username>", "Buscar por username exacto", func(c *cobra.Command, username string) (*dto.UserResponse, error) {
			return a.users.GetByUsername(c.Context(), username)
		}),
		one("by-email <email>", "Buscar por email exacto", func(c *cobra.Command, email string) (*dto.UserResponse, error) {
			return a.users.GetByEmail(c.Context(), email)
		}),
		bind(&cobra.Command{
			Use:   "create",
			Short: "Crear un usuario",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				out, err := a.users.Create(c.Context(), in)
				if err != nil {
					return err
				}
				return a.render(c.OutOrStdout(), out, userTable(*out))
			},
		}),
		bind(&cobra.Command{
			Use:   "update <id>",
			Short: "Reemplazar un usuario (conserva createdAt)",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				out, err := a.users.Update(c.Context(), args[0], in)
				if err != nil {
					return err
				}
				return a.render(c.OutOrStdout(), out, userTable(*out))
			},
		}),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Eliminar un usuario",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				return a.users.Delete(c.Context(), args[0])
			},
		},
	)
	return cmd
}
