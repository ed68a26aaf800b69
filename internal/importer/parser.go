package importer

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Import van het "Verkoopoverzicht"-Excel. Rijen met "Bestelronde …" in de
// kolom Datum zijn ronde-markeringen; de rijen eronder krijgen een
// oplopend volgnummer (seq) tot de volgende markering.
//
// Kolommen worden op letterlijke titel opgezocht, niet op positie.
const (
	colDate          = "Datum"
	colCustomer      = "Naam"
	colProduct       = "Product"
	colColor         = "Kleur"
	colSize          = "Maat"
	colQty           = "Aantal"
	colPrice         = "Prijs"
	colTotal         = "Totaal"
	colPaid          = "Betaald (Ja/Nee)"
	colNotes         = "Opmerkingen"
	colSentToPrinter = "Naar drukker"
	colMisprint      = "Mis Druk"
	colMargin        = "Winst"
)

var roundMarkerRe = regexp.MustCompile(`(?i)bestelronde`)

// ParsedOrder: genormaliseerde orderrij uit het spreadsheet.
type ParsedOrder struct {
	RoundName     string // leeg: rij stond vóór de eerste markering
	Seq           int
	Date          string // "YYYY-MM-DD"
	Customer      string
	Product       string
	Color         string
	Size          string
	Qty           int
	Price         float64
	Total         float64
	Margin        float64
	Paid          string // ruwe celwaarde ("Ja"/"Nee"), bewust niet genormaliseerd
	Notes         string
	SentToPrinter string
	Misprint      bool
}

// SheetResult: uitkomst van het parsen van één werkblad.
type SheetResult struct {
	Orders     []ParsedOrder
	RoundNames []string // in volgorde van eerste voorkomen
	Skipped    int      // rijen zonder datum
	Log        []string
}

// ParseSheet: verwerkt de rijen van het eerste werkblad (eerste rij =
// kopregel). Rijen met een lege Datum-cel worden overgeslagen: niet
// geteld, geen volgnummer, niet geïmporteerd.
func ParseSheet(rows [][]string) (*SheetResult, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("het werkblad is leeg")
	}

	cols := make(map[string]int)
	for i, title := range rows[0] {
		cols[strings.TrimSpace(title)] = i
	}
	if _, ok := cols[colDate]; !ok {
		return nil, fmt.Errorf("kolom '%s' niet gevonden in de kopregel", colDate)
	}

	cell := func(row []string, title string) string {
		idx, ok := cols[title]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	res := &SheetResult{}
	currentRound := ""
	seqCounter := 0
	seenRound := make(map[string]bool)

	for _, row := range rows[1:] {
		rawDate := cell(row, colDate)

		if roundMarkerRe.MatchString(rawDate) {
			currentRound = rawDate
			seqCounter = 0 // reset per ronde
			if !seenRound[currentRound] {
				seenRound[currentRound] = true
				res.RoundNames = append(res.RoundNames, currentRound)
			}
			res.Log = append(res.Log, "Ronde gedetecteerd: "+currentRound)
			continue
		}

		if rawDate == "" {
			res.Skipped++
			continue
		}

		qty := toNumber(cell(row, colQty), 1)
		price := toNumber(cell(row, colPrice), 0)
		total := toNumber(cell(row, colTotal), qty*price)
		margin := toNumber(cell(row, colMargin), 0)

		seqCounter++

		res.Orders = append(res.Orders, ParsedOrder{
			RoundName:     currentRound,
			Seq:           seqCounter,
			Date:          ParseDateCell(rawDate),
			Customer:      cell(row, colCustomer),
			Product:       cell(row, colProduct),
			Color:         cell(row, colColor),
			Size:          cell(row, colSize),
			Qty:           int(qty),
			Price:         price,
			Total:         total,
			Margin:        margin,
			Paid:          cell(row, colPaid),
			Notes:         cell(row, colNotes),
			SentToPrinter: cell(row, colSentToPrinter),
			// truthy zoals het origineel: elke niet-lege cel telt als misdruk
			Misprint: cell(row, colMisprint) != "",
		})
	}

	return res, nil
}

// toNumber: getal met fallback. Ongeldige of niet-eindige invoer levert de
// default op, nooit een fout — bewust soepel voor import-robuustheid.
func toNumber(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	// Nederlandse Excel-export gebruikt soms een decimale komma
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// Excel telt dagen vanaf 1899-12-30
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

var dmyRe = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{2,4})$`)

// ParseDateCell: normaliseert een datumcel naar "YYYY-MM-DD" met
// UTC-kalendervelden (geen tijdzoneverschuiving). Drie vormen:
// een numeriek Excel-dagserieel, "D-M-Y" of "D/M/Y" (2- of 4-cijferig
// jaar), of een al geformatteerde string (ongewijzigd teruggegeven).
func ParseDateCell(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		d := excelEpoch.AddDate(0, 0, int(serial))
		return ymd(d)
	}

	if m := dmyRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			year += 2000
		}
		return ymd(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
	}

	return s
}

func ymd(d time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.UTC().Year(), int(d.UTC().Month()), d.UTC().Day())
}
