package ledger

import (
	"fmt"

	"madcrew-backend/internal/audit"
	"madcrew-backend/internal/database"
	"madcrew-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateAdjustmentRequest struct {
	RoundID *uint   `json:"round_id"`
	Amount  float64 `json:"amount"` // getekend: negatief haalt uit de buffer
	Note    string  `json:"note"`
}

// POST /api/buffer-transactions
// Handmatige buffercorrectie (type "adjust"). Misprint/resold-transacties
// ontstaan alleen via de levenscyclus-operaties, nooit hier.
func CreateAdjustmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateAdjustmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldige request body")
		}

		if body.Amount == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bedrag mag niet 0 zijn")
		}
		if body.Note == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Een toelichting is verplicht bij een handmatige correctie")
		}

		if body.RoundID != nil {
			var round models.Round
			if err := database.DB.First(&round, "id = ?", *body.RoundID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Bestelronde niet gevonden")
			}
		}

		tx := models.BufferTransaction{
			RoundID: body.RoundID,
			Type:    models.BufferTxAdjust,
			Amount:  body.Amount,
			Note:    body.Note,
		}
		if err := database.DB.Create(&tx).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Buffer-transactie kon niet opgeslagen worden")
		}

		_ = audit.WriteLog(audit.LogOptions{
			RoundID: body.RoundID,
			Action:  models.AuditActionBufferAdjust,
			Note:    fmt.Sprintf("Handmatige buffercorrectie € %.2f: %s", body.Amount, body.Note),
		})

		return c.Status(fiber.StatusCreated).JSON(tx)
	}
}

// GET /api/buffer-transactions[?round_id=1&order_id=2&type=adjust]
func ListTransactionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.BufferTransaction{})

		if s := c.Query("round_id"); s != "" {
			var id uint
			if _, err := fmt.Sscan(s, &id); err != nil || id == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "round_id is ongeldig")
			}
			dbq = dbq.Where("round_id = ?", id)
		}
		if s := c.Query("order_id"); s != "" {
			var id uint
			if _, err := fmt.Sscan(s, &id); err != nil || id == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "order_id is ongeldig")
			}
			dbq = dbq.Where("order_id = ?", id)
		}
		if s := c.Query("type"); s != "" {
			dbq = dbq.Where("type = ?", s)
		}

		var txs []models.BufferTransaction
		if err := dbq.Order("created_at DESC").Find(&txs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Buffer-transacties konden niet opgehaald worden")
		}
		return c.JSON(txs)
	}
}
