package catalog

import (
	"fmt"
	"strings"

	"madcrew-backend/internal/database"
	"madcrew-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ProductRequest struct {
	Name   string  `json:"name"`
	Cost   float64 `json:"cost"`
	Price  float64 `json:"price"`
	Margin float64 `json:"margin"`
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	var id uint
	if _, err := fmt.Sscan(c.Params("id"), &id); err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Ongeldig product-ID")
	}
	return id, nil
}

// POST /api/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldige request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Naam is verplicht")
		}

		product := models.Product{
			Name:   body.Name,
			Cost:   body.Cost,
			Price:  body.Price,
			Margin: body.Margin,
		}
		if err := database.DB.Create(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Product kon niet aangemaakt worden")
		}

		return c.Status(fiber.StatusCreated).JSON(product)
	}
}

// GET /api/products
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Order("name ASC").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Producten konden niet opgehaald worden")
		}
		return c.JSON(products)
	}
}

// PUT /api/products/:id
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c)
		if err != nil {
			return err
		}

		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldige request body")
		}

		var product models.Product
		if err := database.DB.First(&product, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product niet gevonden")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Naam is verplicht")
		}

		updates := map[string]interface{}{
			"name":   body.Name,
			"cost":   body.Cost,
			"price":  body.Price,
			"margin": body.Margin,
		}
		if err := database.DB.Model(&product).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Product kon niet bijgewerkt worden")
		}

		if err := database.DB.First(&product, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Product kon niet herladen worden")
		}
		return c.JSON(product)
	}
}

// DELETE /api/products/:id
// Bestellingen verwijzen niet naar de catalogus (waarden worden
// gekopieerd), dus verwijderen heeft geen cascade.
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c)
		if err != nil {
			return err
		}

		if err := database.DB.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Product kon niet verwijderd worden")
		}
		return c.JSON(fiber.Map{"deleted": id})
	}
}
