package bookkeeping

import "madcrew-backend/internal/models"

// Kostprijsafleiding per bestelling. Pure functies: geen database, geen
// bijwerkingen. Bij qty=0 is de kostprijs 0 (geen deling door nul); bij
// total < margin (inconsistente data) wordt de kostprijs op 0 geklemd in
// plaats van negatief te worden.

// UnitCost: inkoopprijs per stuk = max(0, total - margin) / qty.
func UnitCost(o models.Order) float64 {
	if o.Qty <= 0 {
		return 0
	}
	costTotal := o.Total - o.Margin
	if costTotal < 0 {
		costTotal = 0
	}
	return costTotal / float64(o.Qty)
}

// CostTotal: totale inkoopkosten van de bestelling.
func CostTotal(o models.Order) float64 {
	return UnitCost(o) * float64(o.Qty)
}

// KPISummary: geaggregeerde cijfers over een set bestellingen en
// buffer-transacties, optioneel gefilterd op één ronde.
type KPISummary struct {
	Revenue              float64 `json:"revenue"`                // omzet: som van totalen
	MarginSum            float64 `json:"margin_sum"`             // som van marges
	TransactionSum       float64 `json:"transaction_sum"`        // som van buffer-transacties
	Buffer               float64 `json:"buffer"`                 // marges + transacties
	EstimatedPrinterCost float64 `json:"estimated_printer_cost"` // kosten drukker (geschat)
	OrderCount           int     `json:"order_count"`
}

// Aggregate: berekent de KPI's. roundID nil betekent: alle rondes (ook
// transacties zonder ronde tellen dan mee).
func Aggregate(orders []models.Order, txs []models.BufferTransaction, roundID *uint) KPISummary {
	var sum KPISummary
	for _, o := range orders {
		sum.Revenue += o.Total
		sum.MarginSum += o.Margin
		sum.OrderCount++
	}
	for _, tx := range txs {
		if roundID != nil {
			if tx.RoundID == nil || *tx.RoundID != *roundID {
				continue
			}
		}
		sum.TransactionSum += tx.Amount
	}
	sum.Buffer = sum.MarginSum + sum.TransactionSum
	sum.EstimatedPrinterCost = sum.Revenue - sum.MarginSum
	if sum.EstimatedPrinterCost < 0 {
		sum.EstimatedPrinterCost = 0
	}
	return sum
}
