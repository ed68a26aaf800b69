package misprint

import (
	"errors"
	"math"

	"madcrew-backend/internal/bookkeeping"
	"madcrew-backend/internal/models"
)

// Levenscyclus van misdruk-voorraad per bestelling, afgeleid uit
// (MisprintQty, ResoldQty) en los van betaald/drukker/geleverd.
//
// De Plan*-functies zijn puur: ze valideren en rekenen het effect uit,
// de handlers passen het toe. Bij een afkeuring verandert er niets.

type State string

const (
	StateNone            State = "none"
	StateMisprinted      State = "misprinted"
	StatePartiallyResold State = "partially_resold"
	StateFullyResold     State = "fully_resold"
)

func StateOf(o models.Order) State {
	switch {
	case o.MisprintQty == 0:
		return StateNone
	case o.ResoldQty == 0:
		return StateMisprinted
	case o.ResoldQty < o.MisprintQty:
		return StatePartiallyResold
	default:
		return StateFullyResold
	}
}

// Available: resterende misdruk-voorraad van een bestelling.
func Available(o models.Order) int {
	n := o.MisprintQty - o.ResoldQty
	if n < 0 {
		return 0
	}
	return n
}

var (
	ErrInvalidQty   = errors.New("aantal moet een geheel getal van minimaal 1 zijn")
	ErrNoStock      = errors.New("geen misdruk-voorraad meer om te verkopen")
	ErrInvalidPrice = errors.New("verkoopbedrag per stuk moet een positief getal zijn")
)

// MisprintPlan: effect van het bijboeken van misdrukken.
type MisprintPlan struct {
	AddedQty    int
	PrevQty     int
	NewQty      int
	UnitCost    float64
	BufferDelta float64 // negatief: vervangen van misdruk kost geld
}

// PlanMisprint: valideert en berekent het effect van addedQty extra
// misdrukken. addedQty < 1 wordt afgekeurd.
func PlanMisprint(o models.Order, addedQty int) (MisprintPlan, error) {
	if addedQty < 1 {
		return MisprintPlan{}, ErrInvalidQty
	}
	unit := bookkeeping.UnitCost(o)
	return MisprintPlan{
		AddedQty:    addedQty,
		PrevQty:     o.MisprintQty,
		NewQty:      o.MisprintQty + addedQty,
		UnitCost:    unit,
		BufferDelta: -unit * float64(addedQty),
	}, nil
}

// ResalePlan: effect van een doorverkoop van misdruk-voorraad.
type ResalePlan struct {
	Qty          int // geklemd op [1, beschikbaar]
	PricePerUnit float64
	TotalAmount  float64
	PrevResold   int
	NewResold    int
}

// PlanResale: valideert en berekent een doorverkoop. Het gevraagde aantal
// wordt geklemd op de beschikbare voorraad; de klem is verplicht zodat
// ResoldQty nooit boven MisprintQty uitkomt.
func PlanResale(o models.Order, qty int, pricePerUnit float64) (ResalePlan, error) {
	available := Available(o)
	if available <= 0 {
		return ResalePlan{}, ErrNoStock
	}
	if pricePerUnit <= 0 || math.IsInf(pricePerUnit, 0) || math.IsNaN(pricePerUnit) {
		return ResalePlan{}, ErrInvalidPrice
	}

	if qty < 1 {
		qty = 1
	}
	if qty > available {
		qty = available
	}

	return ResalePlan{
		Qty:          qty,
		PricePerUnit: pricePerUnit,
		TotalAmount:  float64(qty) * pricePerUnit,
		PrevResold:   o.ResoldQty,
		NewResold:    o.ResoldQty + qty,
	}, nil
}

// StockRow: misdruk-voorraad gegroepeerd op product/kleur/maat.
type StockRow struct {
	Product    string `json:"product"`
	Color      string `json:"color"`
	Size       string `json:"size"`
	Misprinted int    `json:"misprinted"`
	Resold     int    `json:"resold"`
	Stock      int    `json:"stock"`
}

// GroupStock: aggregeert de misdruk-voorraad. Rijen zonder resterende
// voorraad vallen weg; sortering op product+kleur, dan maat.
func GroupStock(orders []models.Order) []StockRow {
	type key struct{ product, color, size string }
	byKey := make(map[key]*StockRow)
	var keys []key

	for _, o := range orders {
		if o.MisprintQty == 0 && o.ResoldQty == 0 {
			continue
		}
		k := key{o.Product, o.Color, o.Size}
		row, ok := byKey[k]
		if !ok {
			row = &StockRow{Product: o.Product, Color: o.Color, Size: o.Size}
			byKey[k] = row
			keys = append(keys, k)
		}
		row.Misprinted += o.MisprintQty
		row.Resold += o.ResoldQty
		row.Stock += Available(o)
	}

	rows := make([]StockRow, 0, len(keys))
	for _, k := range keys {
		if byKey[k].Stock > 0 {
			rows = append(rows, *byKey[k])
		}
	}

	sortStockRows(rows)
	return rows
}
