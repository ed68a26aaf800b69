package orders

import (
	"fmt"
	"strings"
	"time"

	"madcrew-backend/internal/audit"
	"madcrew-backend/internal/bookkeeping"
	"madcrew-backend/internal/database"
	"madcrew-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func todayYMD() string {
	return time.Now().UTC().Format("2006-01-02")
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	var id uint
	if _, err := fmt.Sscan(c.Params("id"), &id); err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Ongeldig order-ID")
	}
	return id, nil
}

// nextSeqForRound: max(seq)+1 binnen de ronde. Geen locking; bij twee
// gelijktijdige aanmaken kan hetzelfde nummer vallen (last-write-wins).
func nextSeqForRound(roundID uint) (int, error) {
	var maxSeq int
	err := database.DB.Model(&models.Order{}).
		Where("round_id = ?", roundID).
		Select("COALESCE(MAX(seq), 0)").
		Scan(&maxSeq).Error
	if err != nil {
		return 0, err
	}
	return maxSeq + 1, nil
}

type OrderResponse struct {
	models.Order
	UnitCost  float64 `json:"unit_cost"`
	CostTotal float64 `json:"cost_total"`
	Stock     int     `json:"misprint_stock"`
}

func toResponse(o models.Order) OrderResponse {
	stock := o.MisprintQty - o.ResoldQty
	if stock < 0 {
		stock = 0
	}
	return OrderResponse{
		Order:     o,
		UnitCost:  bookkeeping.UnitCost(o),
		CostTotal: bookkeeping.CostTotal(o),
		Stock:     stock,
	}
}

// GET /api/orders[?round_id=1]
// Gesorteerd volgens het presentatiebeleid: binnen één ronde op seq,
// anders op datum.
func ListOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Order{})
		singleRound := false
		if s := c.Query("round_id"); s != "" {
			var id uint
			if _, err := fmt.Sscan(s, &id); err != nil || id == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "round_id is ongeldig")
			}
			dbq = dbq.Where("round_id = ?", id)
			singleRound = true
		}

		var list []models.Order
		if err := dbq.Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bestellingen konden niet opgehaald worden")
		}

		sorted := bookkeeping.SortOrders(list, singleRound)
		resp := make([]OrderResponse, 0, len(sorted))
		for _, o := range sorted {
			resp = append(resp, toResponse(o))
		}
		return c.JSON(resp)
	}
}

type CreateOrderRequest struct {
	RoundID       uint    `json:"round_id"`
	Date          string  `json:"date"` // leeg = vandaag
	Customer      string  `json:"customer"`
	Product       string  `json:"product"`
	Color         string  `json:"color"`
	Size          string  `json:"size"`
	Qty           int     `json:"qty"`
	Price         float64 `json:"price"`
	MarginPerUnit float64 `json:"margin_per_unit"`
	IsAdminOrder  bool    `json:"is_admin_order"` // beheerder-order: marge = €0
	Notes         string  `json:"notes"`
}

// POST /api/orders
func CreateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldige request body")
		}

		if body.RoundID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Kies een bestelronde")
		}
		body.Customer = strings.TrimSpace(body.Customer)
		if body.Customer == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Vul een klantnaam in")
		}
		body.Product = strings.TrimSpace(body.Product)
		if body.Product == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Kies of vul een productnaam in")
		}

		var round models.Round
		if err := database.DB.First(&round, "id = ?", body.RoundID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bestelronde niet gevonden")
		}

		qty := body.Qty
		if qty < 1 {
			qty = 1
		}
		marginPerUnit := body.MarginPerUnit
		if body.IsAdminOrder {
			marginPerUnit = 0
		}

		date := body.Date
		if date == "" {
			date = todayYMD()
		} else if _, err := time.Parse("2006-01-02", date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datumformaat moet 'YYYY-MM-DD' zijn")
		}

		seq, err := nextSeqForRound(round.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Volgnummer kon niet bepaald worden")
		}

		order := models.Order{
			Date:          date,
			Customer:      body.Customer,
			Product:       body.Product,
			Color:         strings.TrimSpace(body.Color),
			Size:          strings.TrimSpace(body.Size),
			Qty:           qty,
			Price:         body.Price,
			Total:         body.Price * float64(qty),
			Margin:        marginPerUnit * float64(qty),
			Paid:          models.FlagString(false),
			SentToPrinter: models.FlagString(false),
			Delivered:     models.FlagString(false),
			Notes:         body.Notes,
			RoundID:       &round.ID,
			Seq:           seq,
		}

		if err := database.DB.Create(&order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bestelling kon niet opgeslagen worden")
		}

		_ = audit.WriteLog(audit.LogOptions{
			OrderID: order.ID,
			RoundID: order.RoundID,
			Action:  models.AuditActionOrderCreate,
			Note:    "Handmatig aangemaakt",
			Delta:   fiber.Map{"order": order},
		})

		return c.Status(fiber.StatusCreated).JSON(toResponse(order))
	}
}

type UpdateOrderRequest struct {
	Date        string  `json:"date"`
	Customer    string  `json:"customer"`
	Product     string  `json:"product"`
	Color       string  `json:"color"`
	Size        string  `json:"size"`
	Qty         int     `json:"qty"`
	Price       float64 `json:"price"`
	MarginTotal float64 `json:"margin_total"`
	ZeroMargin  bool    `json:"zero_margin"` // marge op 0 zetten (beheerder-order)
}

// PUT /api/orders/:id
// De bestelronde kan hier niet gewijzigd worden (behoudt volgorde/seq).
func UpdateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderID, err := parseIDParam(c)
		if err != nil {
			return err
		}

		var body UpdateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldige request body")
		}

		var order models.Order
		if err := database.DB.First(&order, "id = ?", orderID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Bestelling niet gevonden")
		}

		qty := body.Qty
		if qty < 1 {
			qty = 1
		}
		marginTotal := body.MarginTotal
		if body.ZeroMargin {
			marginTotal = 0
		}
		if body.Date != "" {
			if _, err := time.Parse("2006-01-02", body.Date); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Datumformaat moet 'YYYY-MM-DD' zijn")
			}
		}

		delta := map[string]interface{}{
			"date":     body.Date,
			"customer": strings.TrimSpace(body.Customer),
			"product":  strings.TrimSpace(body.Product),
			"color":    strings.TrimSpace(body.Color),
			"size":     strings.TrimSpace(body.Size),
			"qty":      qty,
			"price":    body.Price,
			"total":    body.Price * float64(qty),
			"margin":   marginTotal,
		}

		if err := database.DB.Model(&order).Updates(delta).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bestelling kon niet bijgewerkt worden")
		}

		_ = audit.WriteLog(audit.LogOptions{
			OrderID: order.ID,
			RoundID: order.RoundID,
			Action:  models.AuditActionOrderEdit,
			Note:    "Handmatig aangepast",
			Delta:   fiber.Map{"delta": delta},
		})

		if err := database.DB.First(&order, "id = ?", orderID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bestelling kon niet herladen worden")
		}
		return c.JSON(toResponse(order))
	}
}

// deleteCascade: vaste volgorde — eerst de gekoppelde buffer-transacties,
// dan de doorverkopen, dan de bestelling zelf. Drie losse writes; een
// onderbreking halverwege laat een bestelling met verweesde tellers
// achter — gedocumenteerde beperking, geen compensatie.
func deleteCascade(db *gorm.DB, orderID uint) error {
	if err := db.Where("order_id = ?", orderID).Delete(&models.BufferTransaction{}).Error; err != nil {
		return fmt.Errorf("buffer-transacties konden niet verwijderd worden: %w", err)
	}
	if err := db.Where("order_id = ?", orderID).Delete(&models.Resale{}).Error; err != nil {
		return fmt.Errorf("doorverkopen konden niet verwijderd worden: %w", err)
	}
	if err := db.Delete(&models.Order{}, "id = ?", orderID).Error; err != nil {
		return fmt.Errorf("bestelling kon niet verwijderd worden: %w", err)
	}
	return nil
}

// DELETE /api/orders/:id
func DeleteOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderID, err := parseIDParam(c)
		if err != nil {
			return err
		}

		var order models.Order
		if err := database.DB.First(&order, "id = ?", orderID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Bestelling niet gevonden")
		}

		if err := deleteCascade(database.DB, order.ID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		_ = audit.WriteLog(audit.LogOptions{
			OrderID: order.ID,
			RoundID: order.RoundID,
			Action:  models.AuditActionOrderDelete,
			Note:    "Bestelling + gekoppelde transacties verwijderd",
		})

		return c.JSON(fiber.Map{"deleted": order.ID})
	}
}

type ToggleRequest struct {
	Value bool `json:"value"`
}

// statusToggle: één veld schrijven plus één auditregel; geen buffereffect.
func statusToggle(column string, action models.AuditAction, label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderID, err := parseIDParam(c)
		if err != nil {
			return err
		}

		var body ToggleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldige request body")
		}

		var order models.Order
		if err := database.DB.First(&order, "id = ?", orderID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Bestelling niet gevonden")
		}

		var prev string
		switch column {
		case "paid":
			prev = order.Paid
		case "sent_to_printer":
			prev = order.SentToPrinter
		case "delivered":
			prev = order.Delivered
		}

		if err := database.DB.Model(&order).Update(column, models.FlagString(body.Value)).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Status kon niet bijgewerkt worden")
		}

		_ = audit.WriteLog(audit.LogOptions{
			OrderID: order.ID,
			RoundID: order.RoundID,
			Action:  action,
			Note:    fmt.Sprintf("%s = %t", label, body.Value),
			Delta: fiber.Map{
				column: audit.FieldChange{From: models.FlagSet(prev), To: body.Value},
			},
		})

		return c.JSON(fiber.Map{"id": order.ID, column: models.FlagString(body.Value)})
	}
}

// POST /api/orders/:id/paid
func SetPaidHandler() fiber.Handler {
	return statusToggle("paid", models.AuditActionSetPaid, "Betaald")
}

// POST /api/orders/:id/sent-to-printer
func SetSentToPrinterHandler() fiber.Handler {
	return statusToggle("sent_to_printer", models.AuditActionSetSentToPrinter, "Naar drukker")
}

// POST /api/orders/:id/delivered
func SetDeliveredHandler() fiber.Handler {
	return statusToggle("delivered", models.AuditActionSetDelivered, "Geleverd")
}
