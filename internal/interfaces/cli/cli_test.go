package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/store"
	"github.com/jhoicas/inventory-tracker/internal/interfaces/cli"
)

type harness struct {
	t   *testing.T
	mem *memory.Store
}

func newHarness(t *testing.T) *harness {
	return &harness{t: t, mem: memory.NewStore()}
}

// run ejecuta el CLI y devuelve stdout, stderr y el código de salida.
func (h *harness) run(args ...string) (string, string, int) {
	h.t.Helper()
	var stdout, stderr bytes.Buffer
	deps := cli.Deps{
		Open: func(context.Context) (*store.Repositories, error) { return store.Memory(h.mem), nil },
	}
	code := cli.Execute(context.Background(), deps, args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

// runJSON ejecuta con --output json, exige éxito y decodifica la salida en v.
func (h *harness) runJSON(v any, args ...string) {
	h.t.Helper()
	out, errOut, code := h.run(append(args, "--output", "json")...)
	require.Equal(h.t, 0, code, "stderr: %s", errOut)
	if v != nil {
		require.NoError(h.t, json.Unmarshal([]byte(out), v), "salida: %s", out)
	}
}

// ─── Location ────────────────────────────────────────────────────────────────

func TestCLI_LocationCRUD(t *testing.T) {
	h := newHarness(t)

	var created dto.LocationResponse
	h.runJSON(&created, "location", "create", "--name", "Bodega Norte", "--type", "warehouse", "--address", "Km 5")
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "warehouse", created.Type)

	var updated dto.LocationResponse
	h.runJSON(&updated, "location", "update", created.ID, "--name", "Bodega Norte 2", "--type", "store")
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "", updated.Address, "update es reemplazo completo")

	out, _, code := h.run("location", "list")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Bodega Norte 2", "la tabla lista la ubicación")

	h.runJSON(nil, "location", "delete", created.ID)
	h.runJSON(nil, "location", "delete", created.ID)

	_, errOut, code := h.run("location", "get", created.ID, "-o", "json")
	assert.Equal(t, 1, code)
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(errOut), &e))
	assert.Equal(t, "NOT_FOUND", e.Code)
}

func TestCLI_LocationTipoInvalido(t *testing.T) {
	h := newHarness(t)

	_, errOut, code := h.run("location", "create", "--name", "X", "--type", "hangar", "-o", "json")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `"VALIDATION"`)
}

// ─── Product + Transaction ───────────────────────────────────────────────────

func TestCLI_ProductYMovimientos(t *testing.T) {
	h := newHarness(t)

	var p dto.ProductResponse
	h.runJSON(&p, "product", "create", "--name", "Widget", "--sku", "W-1", "--price", "9.99", "--quantity", "10", "--threshold", "5", "--category", "A")
	assert.Equal(t, "9.99", p.Price.String())

	// create no toca la existencia
	var tx dto.TransactionResponse
	h.runJSON(&tx, "transaction", "create", "--product", p.ID, "--type", "out", "--quantity", "3", "--timestamp", "2024-01-15T08:00:00Z")
	assert.Equal(t, "OUT", tx.Type)
	assert.Equal(t, "2024-01-15T08:00:00Z", tx.Timestamp.Format("2006-01-02T15:04:05Z07:00"))

	var got dto.ProductResponse
	h.runJSON(&got, "product", "get", p.ID)
	assert.Equal(t, 10, got.Quantity)

	// register sí ajusta
	var mv dto.MovementResponse
	h.runJSON(&mv, "transaction", "register", "--product", p.ID, "--type", "OUT", "--quantity", "7")
	assert.Equal(t, 3, mv.Product.Quantity)

	_, errOut, code := h.run("transaction", "register", "--product", p.ID, "--type", "OUT", "--quantity", "4", "-o", "json")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "INSUFFICIENT_STOCK")

	var outs []dto.TransactionResponse
	h.runJSON(&outs, "transaction", "by-type", "OUT")
	assert.Len(t, outs, 2)

	var low []dto.ProductResponse
	h.runJSON(&low, "product", "low-stock", "4")
	require.Len(t, low, 1)

	var repl []dto.ReplenishmentSuggestionDTO
	h.runJSON(&repl, "product", "replenishment")
	require.Len(t, repl, 1)
	assert.Equal(t, 7, repl[0].SuggestedOrderQty)
}

func TestCLI_ProductReconcile(t *testing.T) {
	h := newHarness(t)

	var p dto.ProductResponse
	h.runJSON(&p, "product", "create", "--name", "Widget", "--sku", "W-1", "--price", "1", "--quantity", "0")
	h.runJSON(nil, "transaction", "register", "--product", p.ID, "--type", "IN", "--quantity", "8")
	h.runJSON(nil, "transaction", "register", "--product", p.ID, "--type", "OUT", "--quantity", "3")

	var rec dto.ReconciliationDTO
	h.runJSON(&rec, "product", "reconcile", p.ID)
	assert.True(t, rec.InSync)
	assert.Equal(t, 5, rec.StoredQuantity)
	assert.Equal(t, 5, rec.TransactionNet)

	// una transacción registrada sin ajuste descuadra el producto
	h.runJSON(nil, "transaction", "create", "--product", p.ID, "--type", "IN", "--quantity", "2")
	h.runJSON(&rec, "product", "reconcile", p.ID)
	assert.False(t, rec.InSync)
	assert.Equal(t, -2, rec.Difference)

	_, errOut, code := h.run("product", "reconcile", "no-existe", "-o", "json")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "NOT_FOUND")
}

func TestCLI_PrecioInvalido(t *testing.T) {
	h := newHarness(t)

	_, errOut, code := h.run("product", "create", "--name", "X", "--price", "abc")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "--price")
}

// ─── User ────────────────────────────────────────────────────────────────────

func TestCLI_UserNoExponePassword(t *testing.T) {
	h := newHarness(t)

	out, errOut, code := h.run("user", "create", "--username", "ana", "--password", "s3creto", "--email", "ana@example.com", "--role", entity.RoleManager, "-o", "json")
	require.Equal(t, 0, code, errOut)
	assert.NotContains(t, out, "s3creto")
	assert.NotContains(t, out, "password")

	_, errOut, code = h.run("user", "create", "--username", "ana", "--password", "otro", "-o", "json")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "DUPLICATE")

	var u dto.UserResponse
	h.runJSON(&u, "user", "by-email", "ana@example.com")
	assert.Equal(t, "ana", u.Username)
	assert.Equal(t, entity.RoleManager, u.Role)
}

func TestCLI_UserAyudaListaRoles(t *testing.T) {
	h := newHarness(t)

	out, _, code := h.run("user", "create", "--help")
	require.Equal(t, 0, code)
	for _, role := range []string{entity.RoleAdmin, entity.RoleManager, entity.RoleStaff, entity.RoleViewer} {
		assert.Contains(t, out, role)
	}
}

// ─── Dashboard + Seed ────────────────────────────────────────────────────────

func TestCLI_SeedYDashboard(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "catalog.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<?xml version="1.0" encoding="UTF-8"?>
<catalog>
  <location name="Bodega Central" type="warehouse"/>
  <product sku="T-1" name="Tornillo" category="Ferretería" price="0.50" quantity="100" threshold="20" location="Bodega Central"/>
  <product sku="M-1" name="Martillo" category="Ferretería" price="12" quantity="3" threshold="5" location="Bodega Central"/>
</catalog>`), 0o600))

	var res dto.SeedResult
	h.runJSON(&res, "seed", path)
	assert.Equal(t, 1, res.LocationsCreated)
	assert.Equal(t, 2, res.ProductsCreated)
	assert.Empty(t, res.Unresolved)

	var s dto.DashboardSummaryDTO
	h.runJSON(&s, "dashboard")
	assert.Equal(t, 2, s.TotalProducts)
	assert.Equal(t, 1, s.LowStockItems)
	assert.Equal(t, "86", s.TotalValue.String())

	out, _, code := h.run("dashboard")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Valor total")
	assert.Contains(t, out, "86.00")
}

func TestCLI_OutputInvalido(t *testing.T) {
	h := newHarness(t)

	_, errOut, code := h.run("product", "list", "--output", "yaml")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "--output")
}
