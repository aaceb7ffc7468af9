// Package cli expone las operaciones del inventario como comandos cobra.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-tracker/internal/application/analytics"
	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/application/usecase"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/store"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
)

// Deps dependencias del CLI. Open se llama solo cuando un comando necesita el almacén,
// así --help funciona sin base de datos.
type Deps struct {
	Open func(ctx context.Context) (*store.Repositories, error)
	Log  *logger.Logger
}

type app struct {
	deps   Deps
	repos  *store.Repositories
	output string

	locations     *usecase.LocationUseCase
	products      *usecase.ProductUseCase
	transactions  *usecase.TransactionUseCase
	users         *usecase.UserUseCase
	movements     *inventory.RegisterMovementUseCase
	replenishment *inventory.ReplenishmentUseCase
	reconcile     *inventory.ReconcileUseCase
	seed          *inventory.SeedCatalogUseCase
	dashboard     *analytics.DashboardUseCase
}

// Execute construye el árbol de comandos, lo ejecuta con args y devuelve el código de salida.
// Los errores se escriben en stderr con el formato elegido en --output.
func Execute(ctx context.Context, deps Deps, args []string, stdout, stderr io.Writer) int {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	a := &app{deps: deps}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(deps.Log.Component("cli").WithContext(ctx))
	if a.repos != nil {
		if cerr := a.repos.Close(context.WithoutCancel(ctx)); cerr != nil {
			deps.Log.Warn().Err(cerr).Msg("cerrar almacén")
		}
	}
	if err != nil {
		writeError(stderr, a.output, err)
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "inventory",
		Short:         "Inventario de productos, ubicaciones, transacciones y usuarios",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.output != formatTable && a.output != formatJSON {
				return fmt.Errorf("--output debe ser %s o %s", formatTable, formatJSON)
			}
			return a.open(cmd.Context())
		},
	}
	root.PersistentFlags().StringVarP(&a.output, "output", "o", formatTable, "formato de salida: table|json")

	root.AddCommand(
		a.locationCommand(),
		a.productCommand(),
		a.transactionCommand(),
		a.userCommand(),
		a.dashboardCommand(),
		a.seedCommand(),
	)
	return root
}

func (a *app) open(ctx context.Context) error {
	repos, err := a.deps.Open(ctx)
	if err != nil {
		return err
	}
	a.repos = repos

	a.locations = usecase.NewLocationUseCase(repos.Locations)
	a.products = usecase.NewProductUseCase(repos.Products)
	a.transactions = usecase.NewTransactionUseCase(repos.Transactions)
	a.users = usecase.NewUserUseCase(repos.Users)
	a.movements = inventory.NewRegisterMovementUseCase(repos.Products, repos.Transactions)
	a.replenishment = inventory.NewReplenishmentUseCase(repos.Products)
	a.reconcile = inventory.NewReconcileUseCase(repos.Products, repos.Transactions)
	a.seed = inventory.NewSeedCatalogUseCase(a.locations, a.products)
	a.dashboard = analytics.NewDashboardUseCase(repos.Products, repos.Transactions)
	return nil
}
