package misprint

import (
	"math"
	"testing"

	"madcrew-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func TestStateOf(t *testing.T) {
	tests := []struct {
		name  string
		order models.Order
		want  State
	}{
		{"geen misdruk", models.Order{}, StateNone},
		{"misdruk zonder verkoop", models.Order{MisprintQty: 3}, StateMisprinted},
		{"deels doorverkocht", models.Order{MisprintQty: 3, ResoldQty: 1}, StatePartiallyResold},
		{"volledig doorverkocht", models.Order{MisprintQty: 3, ResoldQty: 3}, StateFullyResold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, StateOf(tt.order))
		})
	}
}

func TestAvailable(t *testing.T) {
	require.Equal(t, 2, Available(models.Order{MisprintQty: 5, ResoldQty: 3}))
	require.Equal(t, 0, Available(models.Order{MisprintQty: 2, ResoldQty: 2}))
	// corrupte telling klemt op nul
	require.Equal(t, 0, Available(models.Order{MisprintQty: 1, ResoldQty: 4}))
}

func TestPlanMisprint(t *testing.T) {
	// kostprijs per stuk: (45 - 15) / 3 = 10
	order := models.Order{Qty: 3, Total: 45, Margin: 15, MisprintQty: 1}

	plan, err := PlanMisprint(order, 2)
	require.NoError(t, err)
	require.Equal(t, 2, plan.AddedQty)
	require.Equal(t, 1, plan.PrevQty)
	require.Equal(t, 3, plan.NewQty)
	require.InDelta(t, 10, plan.UnitCost, 1e-9)
	require.InDelta(t, -20, plan.BufferDelta, 1e-9)
}

func TestPlanMisprintAfkeuringen(t *testing.T) {
	order := models.Order{Qty: 1, Total: 10}

	_, err := PlanMisprint(order, 0)
	require.ErrorIs(t, err, ErrInvalidQty)

	_, err = PlanMisprint(order, -3)
	require.ErrorIs(t, err, ErrInvalidQty)
}

func TestPlanMisprintQtyNulOrderKostNiets(t *testing.T) {
	plan, err := PlanMisprint(models.Order{Qty: 0, Total: 50}, 1)
	require.NoError(t, err)
	require.Zero(t, plan.BufferDelta)
}

func TestPlanResale(t *testing.T) {
	order := models.Order{MisprintQty: 5, ResoldQty: 1}

	plan, err := PlanResale(order, 3, 15)
	require.NoError(t, err)
	require.Equal(t, 3, plan.Qty)
	require.InDelta(t, 45, plan.TotalAmount, 1e-9)
	require.Equal(t, 1, plan.PrevResold)
	require.Equal(t, 4, plan.NewResold)
}

func TestPlanResaleKlemtOpVoorraad(t *testing.T) {
	order := models.Order{MisprintQty: 3, ResoldQty: 1}

	plan, err := PlanResale(order, 99, 10)
	require.NoError(t, err)
	require.Equal(t, 2, plan.Qty)
	require.Equal(t, 3, plan.NewResold)

	// minder dan 1 gevraagd wordt 1
	plan, err = PlanResale(order, 0, 10)
	require.NoError(t, err)
	require.Equal(t, 1, plan.Qty)
}

func TestPlanResaleAfkeuringen(t *testing.T) {
	zonderVoorraad := models.Order{MisprintQty: 2, ResoldQty: 2}
	_, err := PlanResale(zonderVoorraad, 1, 10)
	require.ErrorIs(t, err, ErrNoStock)

	metVoorraad := models.Order{MisprintQty: 2}
	_, err = PlanResale(metVoorraad, 1, 0)
	require.ErrorIs(t, err, ErrInvalidPrice)

	_, err = PlanResale(metVoorraad, 1, -5)
	require.ErrorIs(t, err, ErrInvalidPrice)

	_, err = PlanResale(metVoorraad, 1, math.Inf(1))
	require.ErrorIs(t, err, ErrInvalidPrice)

	_, err = PlanResale(metVoorraad, 1, math.NaN())
	require.ErrorIs(t, err, ErrInvalidPrice)
}

func TestGroupStock(t *testing.T) {
	orders := []models.Order{
		{Product: "Hoodie", Color: "Zwart", Size: "L", MisprintQty: 2},
		{Product: "Hoodie", Color: "Zwart", Size: "L", MisprintQty: 3, ResoldQty: 1},
		{Product: "Hoodie", Color: "Zwart", Size: "M", MisprintQty: 1},
		{Product: "T-shirt", Color: "Wit", Size: "S", MisprintQty: 2, ResoldQty: 2}, // uitverkocht
		{Product: "Cap", Color: "Rood", Size: ""},                                 // nooit misdrukt
	}

	rows := GroupStock(orders)
	require.Len(t, rows, 2)

	require.Equal(t, "Hoodie", rows[0].Product)
	require.Equal(t, "L", rows[0].Size)
	require.Equal(t, 5, rows[0].Misprinted)
	require.Equal(t, 1, rows[0].Resold)
	require.Equal(t, 4, rows[0].Stock)

	require.Equal(t, "M", rows[1].Size)
	require.Equal(t, 1, rows[1].Stock)
}
