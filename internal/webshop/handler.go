package webshop

import (
	"strings"
	"time"

	"madcrew-backend/internal/audit"
	"madcrew-backend/internal/database"
	"madcrew-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// openRound: er is hooguit één open ronde (OpenRoundHandler sluit de rest).
func openRound() (*models.Round, error) {
	var round models.Round
	err := database.DB.
		Where("status = ?", models.RoundStatusOpen).
		Order("updated_at DESC").
		First(&round).Error
	if err != nil {
		return nil, err
	}
	return &round, nil
}

// GET /api/webshop/round
// Publiek: vertelt de webshop of er besteld kan worden.
func CurrentRoundHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		round, err := openRound()
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"open": false})
		}
		return c.JSON(fiber.Map{
			"open": true,
			"round": fiber.Map{
				"id":   round.ID,
				"name": round.Name,
			},
		})
	}
}

// ProductOption: publiek zichtbare catalogusregel. Marges en inkoopprijzen
// blijven intern.
type ProductOption struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// GET /api/webshop/products
// Prefill voor het bestelformulier.
func ListProductOptionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Order("name ASC").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Producten konden niet opgehaald worden")
		}
		options := make([]ProductOption, 0, len(products))
		for _, p := range products {
			options = append(options, ProductOption{Name: p.Name, Price: p.Price})
		}
		return c.JSON(options)
	}
}

type CartItem struct {
	Product string  `json:"product"`
	Color   string  `json:"color"`
	Size    string  `json:"size"`
	Qty     int     `json:"qty"`
	Price   float64 `json:"price"`
}

type WebshopOrderRequest struct {
	Customer string     `json:"customer"`
	Notes    string     `json:"notes"`
	Items    []CartItem `json:"items"`
}

// marginPerUnit: catalogusmarge op exacte productnaam (hoofdletterongevoelig);
// onbekend product krijgt marge 0.
func marginPerUnit(productName string) float64 {
	var product models.Product
	err := database.DB.
		Where("LOWER(name) = ?", strings.ToLower(productName)).
		First(&product).Error
	if err != nil {
		return 0
	}
	return product.Margin
}

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

// POST /api/webshop/orders
// Publieke intake: één bestelling per winkelwagenregel, allemaal in de open
// ronde. Geen open ronde = geen bestelling.
func CreateWebshopOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body WebshopOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldige request body")
		}

		body.Customer = strings.TrimSpace(body.Customer)
		if body.Customer == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Vul je naam in")
		}
		if len(body.Items) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Je winkelwagen is leeg")
		}

		round, err := openRound()
		if err != nil {
			return fiber.NewError(fiber.StatusConflict, "Er is op dit moment geen bestelronde open")
		}

		date := time.Now().UTC().Format("2006-01-02")
		created := make([]uint, 0, len(body.Items))

		for _, item := range body.Items {
			product := strings.TrimSpace(item.Product)
			if product == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Elke regel heeft een productnaam nodig")
			}
			qty := item.Qty
			if qty < 1 {
				qty = 1
			}

			seq, err := nextSeqForRound(round.ID)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Volgnummer kon niet bepaald worden")
			}

			order := models.Order{
				Date:          date,
				Customer:      body.Customer,
				Product:       product,
				Color:         strings.TrimSpace(item.Color),
				Size:          strings.TrimSpace(item.Size),
				Qty:           qty,
				Price:         item.Price,
				Total:         item.Price * float64(qty),
				Margin:        marginPerUnit(product) * float64(qty),
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
			created = append(created, order.ID)

			_ = audit.WriteLog(audit.LogOptions{
				OrderID: order.ID,
				RoundID: order.RoundID,
				Action:  models.AuditActionOrderCreate,
				Note:    "Via webshop",
				Delta:   fiber.Map{"order": order},
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"round_id": round.ID,
			"orders":   created,
		})
	}
}
