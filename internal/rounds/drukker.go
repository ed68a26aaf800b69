package rounds

import (
	"fmt"
	"strings"

	"madcrew-backend/internal/bookkeeping"
	"madcrew-backend/internal/database"
	"madcrew-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jung-kurt/gofpdf"
)

// Productieoverzicht voor de drukker. Bevat uitsluitend inkoopprijzen:
// marges en bufferstanden blijven intern, het document gaat naar buiten.

type ProductionRow struct {
	Customer  string
	Product   string
	Color     string
	Size      string
	Qty       int
	UnitCost  float64
	CostTotal float64
}

// BuildProductionRows: regels voor het overzicht, gesorteerd volgens het
// presentatiebeleid voor één ronde. Retourneert ook het eindtotaal.
func BuildProductionRows(orders []models.Order) ([]ProductionRow, float64) {
	sorted := bookkeeping.SortOrders(orders, true)

	rows := make([]ProductionRow, 0, len(sorted))
	var grandTotal float64
	for _, o := range sorted {
		row := ProductionRow{
			Customer:  o.Customer,
			Product:   o.Product,
			Color:     o.Color,
			Size:      o.Size,
			Qty:       o.Qty,
			UnitCost:  bookkeeping.UnitCost(o),
			CostTotal: bookkeeping.CostTotal(o),
		}
		grandTotal += row.CostTotal
		rows = append(rows, row)
	}
	return rows, grandTotal
}

func formatEuro(n float64) string {
	return fmt.Sprintf("EUR %.2f", n)
}

var drukkerHeaders = []string{"Naam klant", "Product", "Kleur", "Maat", "Aantal", "Prijs/stuk", "Totaal"}
var drukkerColWidths = []float64{46, 40, 23, 17, 17, 23, 23} // mm, A4 staand

func writeDrukkerHeader(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range drukkerHeaders {
		pdf.CellFormat(drukkerColWidths[i], 6, tr(h), "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
}

// truncate: afkappen op runes, niet op bytes, anders knipt een naam met
// diakrieten midden in een teken.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

// RenderDrukkerPDF: gepagineerd A4-overzicht met eindtotaal-footer.
func RenderDrukkerPDF(roundName string, rows []ProductionRow, grandTotal float64) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Helvetica is een WinAnsi-font; zonder vertaling worden diakrieten
	// ("José") als losse bytes weggeschreven
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			writeDrukkerHeader(pdf, tr)
		}
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	title := "Productieoverzicht"
	if roundName != "" {
		title += " - " + roundName
	}
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr("Dit overzicht bevat alleen inkoop-/drukkerprijzen (geen marges of interne informatie)."), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	writeDrukkerHeader(pdf, tr)

	for _, r := range rows {
		cols := []string{
			truncate(r.Customer, 28),
			truncate(r.Product, 24),
			truncate(r.Color, 13),
			truncate(r.Size, 9),
			fmt.Sprintf("%d", r.Qty),
			formatEuro(r.UnitCost),
			formatEuro(r.CostTotal),
		}
		for i, v := range cols {
			pdf.CellFormat(drukkerColWidths[i], 6, tr(v), "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 7, tr("Totaal af te dragen aan drukker: "+formatEuro(grandTotal)), "T", 1, "L", false, 0, "")

	if pdf.Err() {
		return nil, pdf.Error()
	}
	return pdf, nil
}

// GET /api/rounds/:id/drukker.pdf
func DrukkerExportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		roundID, err := parseIDParam(c)
		if err != nil {
			return err
		}

		var round models.Round
		if err := database.DB.First(&round, "id = ?", roundID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ronde niet gevonden")
		}

		var orders []models.Order
		if err := database.DB.Where("round_id = ?", round.ID).Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bestellingen konden niet opgehaald worden")
		}
		if len(orders) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Geen bestellingen gevonden voor deze ronde")
		}

		rows, grandTotal := BuildProductionRows(orders)

		pdf, err := RenderDrukkerPDF(round.Name, rows, grandTotal)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "PDF kon niet gegenereerd worden")
		}

		filename := "Productieoverzicht_" + strings.ReplaceAll(round.Name, " ", "_") + ".pdf"
		c.Set("Content-Type", "application/pdf")
		c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if err := pdf.Output(c.Response().BodyWriter()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "PDF kon niet geschreven worden")
		}
		return nil
	}
}
