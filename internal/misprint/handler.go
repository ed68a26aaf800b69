package misprint

import (
	"fmt"
	"math"
	"sort"
	"time"

	"madcrew-backend/internal/audit"
	"madcrew-backend/internal/database"
	"madcrew-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

func euro(n float64) string {
	return fmt.Sprintf("€ %.2f", n)
}

func todayYMD() string {
	return time.Now().UTC().Format("2006-01-02")
}

func sortStockRows(rows []StockRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Product+a.Color != b.Product+b.Color {
			return a.Product+a.Color < b.Product+b.Color
		}
		return a.Size < b.Size
	})
}

type AddMisprintRequest struct {
	Qty float64 `json:"qty"` // moet een geheel getal >= 1 zijn
}

// POST /api/orders/:id/misprints
// Boekt extra misdrukken bij en schrijft de negatieve buffer-transactie
// (vervangen kost geld) plus één auditregel.
func AddMisprintHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var orderID uint
		if _, err := fmt.Sscan(c.Params("id"), &orderID); err != nil || orderID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldig order-ID")
		}

		var body AddMisprintRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldige request body")
		}
		if math.IsNaN(body.Qty) || math.IsInf(body.Qty, 0) || body.Qty != math.Trunc(body.Qty) || body.Qty < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "Vul een geheel aantal van minimaal 1 in")
		}
		addedQty := int(body.Qty)

		var order models.Order
		if err := database.DB.First(&order, "id = ?", orderID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Bestelling niet gevonden")
		}

		plan, err := PlanMisprint(order, addedQty)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := database.DB.Model(&order).Updates(map[string]interface{}{
			"misprint":     true,
			"misprint_qty": plan.NewQty,
		}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bestelling kon niet bijgewerkt worden")
		}

		tx := models.BufferTransaction{
			OrderID: &order.ID,
			RoundID: order.RoundID,
			Type:    models.BufferTxMisprint,
			Amount:  plan.BufferDelta,
			Note:    fmt.Sprintf("Misdruk +%d → buffer %s", plan.AddedQty, euro(plan.BufferDelta)),
		}
		if err := database.DB.Create(&tx).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Buffer-transactie kon niet opgeslagen worden")
		}

		_ = audit.WriteLog(audit.LogOptions{
			OrderID: order.ID,
			RoundID: order.RoundID,
			Action:  models.AuditActionMisprintAdd,
			Note:    fmt.Sprintf("Misdruk +%d", plan.AddedQty),
			Delta: fiber.Map{
				"misprint_qty": audit.FieldChange{From: plan.PrevQty, To: plan.NewQty},
				"buffer_delta": plan.BufferDelta,
			},
		})

		order.Misprint = true
		order.MisprintQty = plan.NewQty
		return c.JSON(fiber.Map{
			"order":        order,
			"buffer_delta": plan.BufferDelta,
			"state":        StateOf(order),
		})
	}
}

type AddResaleRequest struct {
	Qty          int     `json:"qty"`
	PricePerUnit float64 `json:"price_per_unit"`
	Buyer        string  `json:"buyer"`
	Date         string  `json:"date"` // "YYYY-MM-DD", leeg = vandaag
	Note         string  `json:"note"`
}

// POST /api/orders/:id/resales
// Verkoopt misdruk-voorraad door: resale-record, positieve
// buffer-transactie en auditregel. Het aantal wordt geklemd op de
// beschikbare voorraad.
func AddResaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var orderID uint
		if _, err := fmt.Sscan(c.Params("id"), &orderID); err != nil || orderID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldig order-ID")
		}

		var body AddResaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldige request body")
		}

		var order models.Order
		if err := database.DB.First(&order, "id = ?", orderID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Bestelling niet gevonden")
		}

		plan, err := PlanResale(order, body.Qty, body.PricePerUnit)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		date := body.Date
		if date == "" {
			date = todayYMD()
		} else if _, err := time.Parse("2006-01-02", date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datumformaat moet 'YYYY-MM-DD' zijn")
		}

		resale := models.Resale{
			OrderID:      order.ID,
			RoundID:      order.RoundID,
			Date:         date,
			Buyer:        body.Buyer,
			Qty:          plan.Qty,
			PricePerUnit: plan.PricePerUnit,
			TotalAmount:  plan.TotalAmount,
			Note:         body.Note,
		}
		if err := database.DB.Create(&resale).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Doorverkoop kon niet opgeslagen worden")
		}

		if err := database.DB.Model(&order).Updates(map[string]interface{}{
			"resold_qty": plan.NewResold,
		}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bestelling kon niet bijgewerkt worden")
		}

		note := fmt.Sprintf("Doorverkoop %d stuks", plan.Qty)
		if body.Buyer != "" {
			note += " aan " + body.Buyer
		}
		note += fmt.Sprintf(" → +%s", euro(plan.TotalAmount))

		tx := models.BufferTransaction{
			OrderID: &order.ID,
			RoundID: order.RoundID,
			Type:    models.BufferTxResold,
			Amount:  plan.TotalAmount,
			Note:    note,
		}
		if err := database.DB.Create(&tx).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Buffer-transactie kon niet opgeslagen worden")
		}

		_ = audit.WriteLog(audit.LogOptions{
			OrderID: order.ID,
			RoundID: order.RoundID,
			Action:  models.AuditActionResaleAdd,
			Note:    fmt.Sprintf("Doorverkoop %d× á %s = %s", plan.Qty, euro(plan.PricePerUnit), euro(plan.TotalAmount)),
			Delta: fiber.Map{
				"resold_qty": audit.FieldChange{From: plan.PrevResold, To: plan.NewResold},
				"resale": fiber.Map{
					"buyer": body.Buyer,
					"qty":   plan.Qty,
					"price": plan.PricePerUnit,
					"total": plan.TotalAmount,
				},
			},
		})

		order.ResoldQty = plan.NewResold
		return c.JSON(fiber.Map{
			"order":  order,
			"resale": resale,
			"state":  StateOf(order),
		})
	}
}

// GET /api/misprint-stock[?round_id=1]
// Misdruk-voorraad gegroepeerd op product/kleur/maat.
func StockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Order{})
		if s := c.Query("round_id"); s != "" {
			var id uint
			if _, err := fmt.Sscan(s, &id); err != nil || id == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "round_id is ongeldig")
			}
			dbq = dbq.Where("round_id = ?", id)
		}

		var orders []models.Order
		if err := dbq.Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bestellingen konden niet opgehaald worden")
		}

		rows := GroupStock(orders)
		total := 0
		for _, r := range rows {
			total += r.Stock
		}

		return c.JSON(fiber.Map{
			"rows":        rows,
			"total_stock": total,
		})
	}
}

// GET /api/resales[?order_id=1&round_id=2]
func ListResalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Resale{})
		if s := c.Query("order_id"); s != "" {
			var id uint
			if _, err := fmt.Sscan(s, &id); err == nil && id > 0 {
				dbq = dbq.Where("order_id = ?", id)
			}
		}
		if s := c.Query("round_id"); s != "" {
			var id uint
			if _, err := fmt.Sscan(s, &id); err == nil && id > 0 {
				dbq = dbq.Where("round_id = ?", id)
			}
		}

		var resales []models.Resale
		if err := dbq.Order("created_at DESC").Find(&resales).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Doorverkopen konden niet opgehaald worden")
		}
		return c.JSON(resales)
	}
}
