// Package catalog lee catálogos XML de ubicaciones y productos para la carga inicial.
//
//	<catalog>
//	  <location name="Bodega Central" type="warehouse" address="Cra 1" contact="555-0101"/>
//	  <product sku="TOR-001" name="Tornillo" category="Ferretería" price="0.50"
//	           quantity="100" threshold="20" location="Bodega Central">Tornillo 1/4</product>
//	</catalog>
package catalog

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
)

type document struct {
	XMLName   xml.Name          `xml:"catalog"`
	Locations []locationElement `xml:"location"`
	Products  []productElement  `xml:"product"`
}

type locationElement struct {
	Name    string `xml:"name,attr"`
	Type    string `xml:"type,attr"`
	Address string `xml:"address,attr"`
	Contact string `xml:"contact,attr"`
}

type productElement struct {
	SKU         string `xml:"sku,attr"`
	Name        string `xml:"name,attr"`
	Category    string `xml:"category,attr"`
	Price       string `xml:"price,attr"`
	Quantity    string `xml:"quantity,attr"`
	Threshold   string `xml:"threshold,attr"`
	Location    string `xml:"location,attr"`
	Description string `xml:",chardata"`
}

// Parse decodifica el catálogo. Acepta UTF-8 y las codificaciones latinas declaradas en el prólogo.
func Parse(r io.Reader) (*dto.CatalogRequest, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	out := &dto.CatalogRequest{}
	for _, l := range doc.Locations {
		name := strings.TrimSpace(l.Name)
		if name == "" {
			continue
		}
		out.Locations = append(out.Locations, dto.LocationRequest{
			Name:        name,
			Address:     strings.TrimSpace(l.Address),
			Type:        strings.TrimSpace(l.Type),
			ContactInfo: strings.TrimSpace(l.Contact),
		})
	}
	for i, p := range doc.Products {
		item, err := p.toRequest()
		if err != nil {
			return nil, fmt.Errorf("product %d (%s): %w", i+1, p.SKU, err)
		}
		out.Products = append(out.Products, item)
	}
	return out, nil
}

func (p productElement) toRequest() (dto.CatalogProduct, error) {
	price := decimal.Zero
	if s := strings.TrimSpace(p.Price); s != "" {
		v, err := decimal.NewFromString(s)
		if err != nil {
			return dto.CatalogProduct{}, fmt.Errorf("price %q: %w", s, err)
		}
		price = v
	}
	qty, err := atoiOrZero(p.Quantity)
	if err != nil {
		return dto.CatalogProduct{}, fmt.Errorf("quantity: %w", err)
	}
	threshold, err := atoiOrZero(p.Threshold)
	if err != nil {
		return dto.CatalogProduct{}, fmt.Errorf("threshold: %w", err)
	}
	return dto.CatalogProduct{
		Product: dto.ProductRequest{
			Name:        strings.TrimSpace(p.Name),
			SKU:         strings.TrimSpace(p.SKU),
			Description: strings.TrimSpace(p.Description),
			Price:       price,
			Quantity:    qty,
			Category:    strings.TrimSpace(p.Category),
			Threshold:   threshold,
		},
		LocationName: strings.TrimSpace(p.Location),
	}, nil
}

func atoiOrZero(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToUpper(label) {
	case "ISO-8859-1", "ISO8859-1", "LATIN1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "WINDOWS-1252", "CP1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	case "UTF-8", "UTF8", "":
		return input, nil
	}
	return nil, fmt.Errorf("charset no soportado: %s", label)
}
