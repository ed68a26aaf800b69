package main

import (
	"log"
	"strings"

	"madcrew-backend/internal/audit"
	"madcrew-backend/internal/auth"
	"madcrew-backend/internal/bookkeeping"
	"madcrew-backend/internal/catalog"
	"madcrew-backend/internal/config"
	"madcrew-backend/internal/database"
	"madcrew-backend/internal/importer"
	"madcrew-backend/internal/ledger"
	"madcrew-backend/internal/misprint"
	"madcrew-backend/internal/orders"
	"madcrew-backend/internal/rounds"
	"madcrew-backend/internal/webshop"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Onverwachte fout:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Onverwachte serverfout",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Publiek: inloggen en webshop-intake
	api.Post("/auth/register", auth.RegisterHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	api.Get("/webshop/round", webshop.CurrentRoundHandler())
	api.Get("/webshop/products", webshop.ListProductOptionsHandler())
	api.Post("/webshop/orders", webshop.CreateWebshopOrderHandler())

	// Backoffice: alles achter JWT + admin-rol
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))
	protected.Use(auth.RequireAdmin())

	protected.Get("/auth/me", auth.MeHandler())

	// Bestellingen
	protected.Get("/orders", orders.ListOrdersHandler())
	protected.Post("/orders", orders.CreateOrderHandler())
	protected.Put("/orders/:id", orders.UpdateOrderHandler())
	protected.Delete("/orders/:id", orders.DeleteOrderHandler())
	protected.Post("/orders/:id/paid", orders.SetPaidHandler())
	protected.Post("/orders/:id/sent-to-printer", orders.SetSentToPrinterHandler())
	protected.Post("/orders/:id/delivered", orders.SetDeliveredHandler())

	// Misdrukken & doorverkoop
	protected.Post("/orders/:id/misprints", misprint.AddMisprintHandler())
	protected.Post("/orders/:id/resales", misprint.AddResaleHandler())
	protected.Get("/misprint-stock", misprint.StockHandler())
	protected.Get("/resales", misprint.ListResalesHandler())

	// Bestelronden
	protected.Post("/rounds", rounds.CreateRoundHandler())
	protected.Get("/rounds", rounds.ListRoundsHandler())
	protected.Post("/rounds/:id/open", rounds.OpenRoundHandler())
	protected.Post("/rounds/:id/close", rounds.CloseRoundHandler())
	protected.Get("/rounds/:id/drukker.pdf", rounds.DrukkerExportHandler())

	// Dashboard
	protected.Get("/dashboard/kpis", bookkeeping.KPIHandler())
	protected.Get("/dashboard/rounds", bookkeeping.RoundCardsHandler())

	// Bufferboekhouding
	protected.Post("/buffer-transactions", ledger.CreateAdjustmentHandler())
	protected.Get("/buffer-transactions", ledger.ListTransactionsHandler())

	// Productcatalogus
	protected.Post("/products", catalog.CreateProductHandler())
	protected.Get("/products", catalog.ListProductsHandler())
	protected.Put("/products/:id", catalog.UpdateProductHandler())
	protected.Delete("/products/:id", catalog.DeleteProductHandler())

	// Spreadsheet-import
	protected.Post("/import/orders", importer.ImportOrdersHandler())

	// Auditlog
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server draait op poort:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
