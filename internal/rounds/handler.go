package rounds

import (
	"fmt"
	"strings"

	"madcrew-backend/internal/audit"
	"madcrew-backend/internal/database"
	"madcrew-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

func parseIDParam(c *fiber.Ctx) (uint, error) {
	var id uint
	if _, err := fmt.Sscan(c.Params("id"), &id); err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Ongeldig ronde-ID")
	}
	return id, nil
}

type CreateRoundRequest struct {
	Name string `json:"name"`
}

// POST /api/rounds
// Nieuwe rondes beginnen gesloten; openzetten is een aparte actie.
func CreateRoundHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateRoundRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldige request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Naam is verplicht")
		}

		round := models.Round{
			Name:   body.Name,
			Status: models.RoundStatusClosed,
		}
		if err := database.DB.Create(&round).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ronde kon niet aangemaakt worden")
		}

		return c.Status(fiber.StatusCreated).JSON(round)
	}
}

// GET /api/rounds
func ListRoundsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rounds []models.Round
		if err := database.DB.Order("created_at DESC").Find(&rounds).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rondes konden niet opgehaald worden")
		}
		return c.JSON(rounds)
	}
}

// POST /api/rounds/:id/open
// Sweep over alle rondes: de gekozen ronde open, de rest dicht. Best
// effort, geen database-constraint: twee losse updates, geen transactie.
func OpenRoundHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		roundID, err := parseIDParam(c)
		if err != nil {
			return err
		}

		var round models.Round
		if err := database.DB.First(&round, "id = ?", roundID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ronde niet gevonden")
		}

		if err := database.DB.Model(&models.Round{}).
			Where("id <> ?", round.ID).
			Update("status", models.RoundStatusClosed).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Overige rondes konden niet gesloten worden")
		}
		if err := database.DB.Model(&round).Update("status", models.RoundStatusOpen).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ronde kon niet geopend worden")
		}

		_ = audit.WriteLog(audit.LogOptions{
			RoundID: &round.ID,
			Action:  models.AuditActionRoundOpen,
			Note:    fmt.Sprintf("Ronde '%s' opengezet, overige rondes gesloten", round.Name),
		})

		round.Status = models.RoundStatusOpen
		return c.JSON(round)
	}
}

// POST /api/rounds/:id/close
func CloseRoundHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		roundID, err := parseIDParam(c)
		if err != nil {
			return err
		}

		var round models.Round
		if err := database.DB.First(&round, "id = ?", roundID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ronde niet gevonden")
		}

		if err := database.DB.Model(&round).Update("status", models.RoundStatusClosed).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ronde kon niet gesloten worden")
		}

		_ = audit.WriteLog(audit.LogOptions{
			RoundID: &round.ID,
			Action:  models.AuditActionRoundClose,
			Note:    fmt.Sprintf("Ronde '%s' gesloten", round.Name),
		})

		round.Status = models.RoundStatusClosed
		return c.JSON(round)
	}
}
