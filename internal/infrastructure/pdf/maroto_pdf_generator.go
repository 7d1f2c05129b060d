// Package pdf implementa la generación del PDF de la factura de venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  N° Factura + Fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TIENDA: Dirección / Tel / Email                            │
//	│  CLIENTE: Nombre + Teléfono                                 │
//	│  [AVISO SALDO PENDIENTE si aplica]                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Artículo | SKU | Precio | Total              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / TOTAL / Pagado / Saldo     │
//	│  FOOTER: agradecimiento                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/tu-usuario/retail-pos/internal/application/billing"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 33, Green: 37, Blue: 77}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
// Escribe el PDF en dir con nombre determinístico por referencia de factura:
// regenerarlo (liquidaciones) sobreescribe el archivo anterior.
type MarotoPDFGenerator struct {
	dir string
}

// NewMarotoPDFGenerator construye el generador; crea dir si no existe.
func NewMarotoPDFGenerator(dir string) (*MarotoPDFGenerator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("pdf: crear directorio: %w", err)
	}
	return &MarotoPDFGenerator{dir: dir}, nil
}

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// Filename nombre de archivo del PDF de una factura.
func Filename(billRef string) string {
	return "invoice_" + billRef + ".pdf"
}

// Generate genera el PDF de la factura y lo persiste en disco.
func (g *MarotoPDFGenerator) Generate(
	_ context.Context,
	bill *entity.Bill,
	customer *entity.Customer,
	items []*entity.BillItem,
	shop appbilling.ShopInfo,
) (string, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+bill.BillRef, true).
		WithAuthor(shop.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(bill, shop))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(shopRow(shop))
	m.AddRows(customerRow(customer))
	if bill.PaymentStatus == entity.PaymentStatusPending {
		m.AddRows(pendingBannerRow(bill))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(bill))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(shop))

	doc, err := m.Generate()
	if err != nil {
		return "", fmt.Errorf("pdf: generar documento: %w", err)
	}

	filename := Filename(bill.BillRef)
	if err := os.WriteFile(filepath.Join(g.dir, filename), doc.GetBytes(), 0o644); err != nil {
		return "", fmt.Errorf("pdf: escribir archivo: %w", err)
	}
	return filename, nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y referencia + fecha (der).
func headerRow(bill *entity.Bill, shop appbilling.ShopInfo) core.Row {
	fecha := bill.CreatedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(shop.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Factura de venta", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(bill.BillRef, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

// shopRow: datos de contacto de la tienda.
func shopRow(shop appbilling.ShopInfo) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("TIENDA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(shop.Address, "—"),
				nonEmpty(shop.Phone, "—"),
				nonEmpty(shop.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// customerRow: datos del cliente.
func customerRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Tel: "+customer.Phone, props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// pendingBannerRow: aviso de saldo pendiente con fecha límite si existe.
func pendingBannerRow(bill *entity.Bill) core.Row {
	msg := "SALDO PENDIENTE: Rs. " + appbilling.FormatAmount(bill.AmountDue)
	if bill.DueDate != nil {
		msg += "   |   Fecha límite: " + bill.DueDate.Format("02/01/2006")
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(msg, props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorDanger, Top: 2,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de artículos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Artículo", 5, align.Left),
		h("SKU", 2, align.Center),
		h("Precio", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// tableItemRows: una fila por línea de la factura.
func tableItemRows(items []*entity.BillItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.FormatInt(it.Quantity, 10),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(it.SKU, "—"),
				props.Text{Size: 7, Align: align.Center, Top: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				appbilling.FormatAmount(it.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				appbilling.FormatAmount(it.LineTotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(bill *entity.Bill) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	labels := []core.Component{label("Subtotal:")}
	values := []core.Component{value("Rs. " + appbilling.FormatAmount(bill.Subtotal))}
	if bill.DiscountAmount.IsPositive() {
		labels = append(labels, label(fmt.Sprintf("Descuento (%s%%):", bill.DiscountPercent.StringFixed(0))))
		values = append(values, value("- Rs. "+appbilling.FormatAmount(bill.DiscountAmount)))
	}
	labels = append(labels,
		text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2,
		}),
		label("Pagado:"),
	)
	values = append(values,
		text.New("Rs. "+appbilling.FormatAmount(bill.FinalAmount), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1,
		}),
		value("Rs. "+appbilling.FormatAmount(bill.AmountPaid)),
	)
	if bill.PaymentStatus == entity.PaymentStatusPending {
		labels = append(labels, text.New("Saldo pendiente:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorDanger, Right: 2,
		}))
		values = append(values, text.New("Rs. "+appbilling.FormatAmount(bill.AmountDue), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorDanger, Right: 1,
		}))
	}

	// altura proporcional al número de renglones de totales
	height := float64(len(labels))*5 + 4

	return row.New(height).Add(
		col.New(4),
		col.New(4).Add(labels...),
		col.New(4).Add(values...),
	)
}

// footerRow: agradecimiento.
func footerRow(shop appbilling.ShopInfo) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("¡Gracias por su compra en "+shop.Name+"!", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center,
			Color: colorPrimary, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
