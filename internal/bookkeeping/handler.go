package bookkeeping

import (
	"fmt"

	"madcrew-backend/internal/database"
	"madcrew-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// roundIDFromQuery: optioneel ?round_id= filter. nil betekent alle rondes.
func roundIDFromQuery(c *fiber.Ctx) (*uint, error) {
	s := c.Query("round_id")
	if s == "" {
		return nil, nil
	}
	var id uint
	if _, err := fmt.Sscan(s, &id); err != nil || id == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "round_id is ongeldig")
	}
	return &id, nil
}

// GET /api/dashboard/kpis[?round_id=1]
// Omzet, marge, buffer en geschatte drukkerkosten voor het huidige filter.
// Wordt per request opnieuw berekend uit de opgehaalde rijen.
func KPIHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		roundID, err := roundIDFromQuery(c)
		if err != nil {
			return err
		}

		oq := database.DB.Model(&models.Order{})
		tq := database.DB.Model(&models.BufferTransaction{})
		if roundID != nil {
			oq = oq.Where("round_id = ?", *roundID)
			tq = tq.Where("round_id = ?", *roundID)
		}

		var orders []models.Order
		if err := oq.Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bestellingen konden niet opgehaald worden")
		}
		var txs []models.BufferTransaction
		if err := tq.Find(&txs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Buffer-transacties konden niet opgehaald worden")
		}

		// De transacties zijn al op ronde gefilterd door de query;
		// Aggregate filtert nogmaals, dat is idempotent.
		return c.JSON(Aggregate(orders, txs, roundID))
	}
}

// GET /api/dashboard/rounds
// Kaarten per ronde: omzet, marge en aantal bestellingen.
func RoundCardsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var orders []models.Order
		if err := database.DB.Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bestellingen konden niet opgehaald worden")
		}
		var rounds []models.Round
		if err := database.DB.Find(&rounds).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rondes konden niet opgehaald worden")
		}

		return c.JSON(RoundCards(orders, rounds))
	}
}
