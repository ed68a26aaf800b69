package importer

import (
	"fmt"
	"log"
	"strings"

	"madcrew-backend/internal/audit"
	"madcrew-backend/internal/database"
	"madcrew-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// ensureRound: zoekt de ronde op exacte naam of maakt hem aan (gesloten).
func ensureRound(name string) (*models.Round, error) {
	var round models.Round
	err := database.DB.
		Where("name = ?", name).
		Attrs(models.Round{Status: models.RoundStatusClosed}).
		FirstOrCreate(&round, models.Round{Name: name}).Error
	if err != nil {
		return nil, fmt.Errorf("ronde '%s' kon niet aangemaakt worden: %w", name, err)
	}
	return &round, nil
}

// wipeOrders: verwijdert alle bestaande bestellingen, met voortgang per 50.
func wipeOrders(progress func(string)) (int, error) {
	var orders []models.Order
	if err := database.DB.Find(&orders).Error; err != nil {
		return 0, err
	}
	progress("Verwijderen van alle bestaande orders gestart…")
	i := 0
	for _, o := range orders {
		if err := database.DB.Delete(&models.Order{}, "id = ?", o.ID).Error; err != nil {
			return i, err
		}
		i++
		if i%50 == 0 {
			progress(fmt.Sprintf("- %d orders verwijderd…", i))
		}
	}
	progress(fmt.Sprintf("Klaar: %d orders verwijderd.", i))
	return i, nil
}

// POST /api/import/orders  (multipart, veld "file"; optioneel ?wipe=true)
// Leest alleen het eerste werkblad.
func ImportOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bestand kon niet geüpload worden: "+err.Error())
		}

		name := strings.ToLower(fileHeader.Filename)
		if !strings.HasSuffix(name, ".xlsx") && !strings.HasSuffix(name, ".xls") {
			return fiber.NewError(fiber.StatusBadRequest, "Alleen .xlsx of .xls bestanden kunnen geïmporteerd worden")
		}

		var importLog []string
		push := func(m string) {
			importLog = append(importLog, m)
			log.Println(m)
		}

		if c.Query("wipe") == "true" || c.FormValue("wipe") == "true" {
			if _, err := wipeOrders(push); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Bestaande orders konden niet verwijderd worden")
			}
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bestand kon niet geopend worden: "+err.Error())
		}
		defer file.Close()

		excelFile, err := excelize.OpenReader(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Excel-bestand kon niet gelezen worden: "+err.Error())
		}
		defer excelFile.Close()

		sheetList := excelFile.GetSheetList()
		if len(sheetList) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Het Excel-bestand bevat geen werkbladen")
		}

		rows, err := excelFile.GetRows(sheetList[0])
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Werkblad kon niet gelezen worden: "+err.Error())
		}

		result, err := ParseSheet(rows)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		importLog = append(importLog, result.Log...)

		// Rondes vooraf oplossen zodat elke orderrij direct een id heeft
		roundIDs := make(map[string]*uint, len(result.RoundNames))
		for _, rn := range result.RoundNames {
			round, err := ensureRound(rn)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			roundIDs[rn] = &round.ID
		}

		imported := 0
		for _, po := range result.Orders {
			order := models.Order{
				Date:          po.Date,
				Customer:      po.Customer,
				Product:       po.Product,
				Color:         po.Color,
				Size:          po.Size,
				Qty:           po.Qty,
				Price:         po.Price,
				Total:         po.Total,
				Margin:        po.Margin,
				Paid:          po.Paid,
				Notes:         po.Notes,
				SentToPrinter: po.SentToPrinter,
				Misprint:      po.Misprint,
				Seq:           po.Seq,
			}
			if po.RoundName != "" {
				order.RoundID = roundIDs[po.RoundName]
			}

			if err := database.DB.Create(&order).Error; err != nil {
				push(fmt.Sprintf("Rij overgeslagen (opslaan mislukt): %s / %s", po.Date, po.Customer))
				continue
			}
			imported++
		}

		push(fmt.Sprintf("Import voltooid: %d orders, %d rondes, %d rijen zonder datum overgeslagen.",
			imported, len(result.RoundNames), result.Skipped))

		_ = audit.WriteLog(audit.LogOptions{
			Action: models.AuditActionImport,
			Note:   fmt.Sprintf("Excel-import: %d orders, %d rondes", imported, len(result.RoundNames)),
		})

		return c.JSON(fiber.Map{
			"imported": imported,
			"rounds":   len(result.RoundNames),
			"skipped":  result.Skipped,
			"log":      importLog,
		})
	}
}
