package bookkeeping

import (
	"testing"

	"madcrew-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func TestUnitCost(t *testing.T) {
	tests := []struct {
		name  string
		order models.Order
		want  float64
	}{
		{
			name:  "normale bestelling",
			order: models.Order{Qty: 3, Total: 45, Margin: 15},
			want:  10,
		},
		{
			name:  "marge groter dan totaal klemt op nul",
			order: models.Order{Qty: 2, Total: 10, Margin: 25},
			want:  0,
		},
		{
			name:  "qty nul geeft nul",
			order: models.Order{Qty: 0, Total: 50, Margin: 5},
			want:  0,
		},
		{
			name:  "negatieve qty geeft nul",
			order: models.Order{Qty: -1, Total: 50, Margin: 5},
			want:  0,
		},
		{
			name:  "zonder marge",
			order: models.Order{Qty: 4, Total: 60},
			want:  15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, UnitCost(tt.order), 1e-9)
		})
	}
}

func TestCostTotal(t *testing.T) {
	o := models.Order{Qty: 3, Total: 45, Margin: 15}
	require.InDelta(t, 30, CostTotal(o), 1e-9)

	require.Zero(t, CostTotal(models.Order{Qty: 0, Total: 45, Margin: 15}))
}

func TestAggregate(t *testing.T) {
	orders := []models.Order{
		{Total: 100, Margin: 10},
		{Total: 50, Margin: 5},
	}
	txs := []models.BufferTransaction{
		{Amount: -20},
	}

	sum := Aggregate(orders, txs, nil)

	require.InDelta(t, 150, sum.Revenue, 1e-9)
	require.InDelta(t, 15, sum.MarginSum, 1e-9)
	require.InDelta(t, -20, sum.TransactionSum, 1e-9)
	require.InDelta(t, -5, sum.Buffer, 1e-9)
	require.InDelta(t, 135, sum.EstimatedPrinterCost, 1e-9)
	require.Equal(t, 2, sum.OrderCount)
}

func TestAggregateRoundFilterOpTransacties(t *testing.T) {
	one, two := uint(1), uint(2)
	txs := []models.BufferTransaction{
		{Amount: -10, RoundID: &one},
		{Amount: -99, RoundID: &two},
		{Amount: 5, RoundID: nil}, // handmatige correctie zonder ronde
	}

	sum := Aggregate(nil, txs, &one)
	require.InDelta(t, -10, sum.TransactionSum, 1e-9)

	// zonder filter tellen alle transacties mee
	all := Aggregate(nil, txs, nil)
	require.InDelta(t, -104, all.TransactionSum, 1e-9)
}

func TestAggregatePrinterCostKlemtOpNul(t *testing.T) {
	orders := []models.Order{{Total: 10, Margin: 25}}
	sum := Aggregate(orders, nil, nil)
	require.Zero(t, sum.EstimatedPrinterCost)
	require.InDelta(t, 25, sum.Buffer, 1e-9)
}

func TestAggregateLeeg(t *testing.T) {
	sum := Aggregate(nil, nil, nil)
	require.Zero(t, sum.Revenue)
	require.Zero(t, sum.Buffer)
	require.Zero(t, sum.OrderCount)
}
