package cli

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/domain"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// render escribe v como JSON o delega en fill para armar la tabla.
func (a *app) render(w io.Writer, v any, fill func(t table.Writer)) error {
	if a.output == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	fill(t)
	t.Render()
	return nil
}

func locationTable(items ...dto.LocationResponse) func(table.Writer) {
	return func(t table.Writer) {
		t.AppendHeader(table.Row{"ID", "Nombre", "Tipo", "Dirección", "Contacto"})
		for _, l := range items {
			t.AppendRow(table.Row{l.ID, l.Name, l.Type, l.Address, l.ContactInfo})
		}
	}
}

func productTable(items ...dto.ProductResponse) func(table.Writer) {
	return func(t table.Writer) {
		t.AppendHeader(table.Row{"ID", "SKU", "Nombre", "Categoría", "Precio", "Cantidad", "Umbral", "Ubicación"})
		for _, p := range items {
			t.AppendRow(table.Row{p.ID, p.SKU, p.Name, p.Category, p.Price.StringFixed(2), p.Quantity, p.Threshold, p.LocationID})
		}
		t.SetColumnConfigs([]table.ColumnConfig{
			{Name: "Precio", Align: text.AlignRight},
			{Name: "Cantidad", Align: text.AlignRight},
			{Name: "Umbral", Align: text.AlignRight},
		})
	}
}

func transactionTable(items ...dto.TransactionResponse) func(table.Writer) {
	return func(t table.Writer) {
		t.AppendHeader(table.Row{"ID", "Producto", "Tipo", "Cantidad", "Fecha", "Usuario", "Notas"})
		for _, tx := range items {
			t.AppendRow(table.Row{tx.ID, tx.ProductID, tx.Type, tx.Quantity, tx.Timestamp.Format("2006-01-02 15:04:05"), tx.UserID, tx.Notes})
		}
	}
}

func userTable(items ...dto.UserResponse) func(table.Writer) {
	return func(t table.Writer) {
		t.AppendHeader(table.Row{"ID", "Usuario", "Rol", "Email", "Creado"})
		for _, u := range items {
			t.AppendRow(table.Row{u.ID, u.Username, u.Role, u.Email, u.CreatedAt.Format("2006-01-02 15:04:05")})
		}
	}
}

// errorCode asigna a cada error de dominio un código estable para la salida JSON.
func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, domain.ErrUsernameTaken), errors.Is(err, domain.ErrEmailAlreadyExists), errors.Is(err, domain.ErrDuplicate):
		return "DUPLICATE"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidTransactionType),
		errors.Is(err, domain.ErrInvalidLocationType):
		return "VALIDATION"
	}
	return "INTERNAL"
}

func writeError(w io.Writer, format string, err error) {
	if format == formatJSON {
		_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Code: errorCode(err), Message: err.Error()})
		return
	}
	_, _ = io.WriteString(w, "error: "+err.Error()+"\n")
}
