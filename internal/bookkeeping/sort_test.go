package bookkeeping

import (
	"testing"
	"time"

	"madcrew-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func TestSortOrdersOpSeqBinnenRonde(t *testing.T) {
	orders := []models.Order{
		{Customer: "C", Seq: 3, Date: "2024-01-01"},
		{Customer: "A", Seq: 1, Date: "2024-03-01"},
		{Customer: "B", Seq: 2, Date: "2024-02-01"},
	}

	sorted := SortOrders(orders, true)

	require.Equal(t, []string{"A", "B", "C"}, []string{sorted[0].Customer, sorted[1].Customer, sorted[2].Customer})
	// invoer blijft ongewijzigd
	require.Equal(t, "C", orders[0].Customer)
}

func TestSortOrdersOpDatumZonderSeq(t *testing.T) {
	orders := []models.Order{
		{Customer: "laat", Date: "2024-06-01"},
		{Customer: "vroeg", Date: "2024-01-15"},
		{Customer: "midden", Date: "2024-03-20"},
	}

	sorted := SortOrders(orders, true)
	require.Equal(t, "vroeg", sorted[0].Customer)
	require.Equal(t, "midden", sorted[1].Customer)
	require.Equal(t, "laat", sorted[2].Customer)
}

func TestSortOrdersGemengdeRondesAltijdOpDatum(t *testing.T) {
	// buiten één-ronde-weergave telt seq niet mee
	orders := []models.Order{
		{Customer: "b", Seq: 1, Date: "2024-05-01"},
		{Customer: "a", Seq: 9, Date: "2024-01-01"},
	}

	sorted := SortOrders(orders, false)
	require.Equal(t, "a", sorted[0].Customer)
}

func TestSortOrdersStabiel(t *testing.T) {
	orders := []models.Order{
		{Customer: "eerste", Date: "2024-01-01"},
		{Customer: "tweede", Date: "2024-01-01"},
	}

	sorted := SortOrders(orders, false)
	require.Equal(t, "eerste", sorted[0].Customer)
	require.Equal(t, "tweede", sorted[1].Customer)
}

func TestExtractRoundNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *int
	}{
		{"standaardnaam", "Bestelronde 12", intPtr(12)},
		{"spatie aan het eind", "Ronde 7 ", intPtr(7)},
		{"geen nummer", "Kerstspecial", nil},
		{"nummer middenin telt niet", "Ronde 3 extra", nil},
		{"leeg", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractRoundNumber(tt.in)
			if tt.want == nil {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.Equal(t, *tt.want, *got)
		})
	}
}

func intPtr(n int) *int { return &n }

func TestRoundCards(t *testing.T) {
	now := time.Now()
	r1 := models.Round{ID: 1, Name: "Bestelronde 1", Status: models.RoundStatusClosed, CreatedAt: now.Add(-48 * time.Hour)}
	r2 := models.Round{ID: 2, Name: "Bestelronde 2", Status: models.RoundStatusClosed, CreatedAt: now.Add(-24 * time.Hour)}
	r3 := models.Round{ID: 3, Name: "Bestelronde 3", Status: models.RoundStatusOpen, CreatedAt: now.Add(-72 * time.Hour)}

	id1, id2, id3 := r1.ID, r2.ID, r3.ID
	orders := []models.Order{
		{RoundID: &id1, Total: 100, Margin: 10},
		{RoundID: &id1, Total: 50, Margin: 5},
		{RoundID: &id2, Total: 200, Margin: 20},
		{RoundID: &id3, Total: 30, Margin: 3},
		{RoundID: nil, Total: 7, Margin: 1}, // zonder ronde
	}

	cards := RoundCards(orders, []models.Round{r1, r2, r3})
	require.Len(t, cards, 4)

	// open ronde eerst, ook al is hij het oudst
	require.Equal(t, "Bestelronde 3", cards[0].Name)
	// daarna op aanmaakdatum nieuw -> oud
	require.Equal(t, "Bestelronde 2", cards[1].Name)
	require.Equal(t, "Bestelronde 1", cards[2].Name)
	// de bucket zonder ronde sluit de rij
	require.Equal(t, "—", cards[3].Name)
	require.Nil(t, cards[3].RoundID)

	require.InDelta(t, 150, cards[2].Revenue, 1e-9)
	require.InDelta(t, 15, cards[2].MarginSum, 1e-9)
	require.Equal(t, 2, cards[2].Count)
}

func TestRoundCardsNaamnummerTiebreak(t *testing.T) {
	// zelfde aanmaakmoment: hoogste naamnummer eerst
	created := time.Now()
	r11 := models.Round{ID: 11, Name: "Ronde 11", Status: models.RoundStatusClosed, CreatedAt: created}
	r12 := models.Round{ID: 12, Name: "Ronde 12", Status: models.RoundStatusClosed, CreatedAt: created}

	id11, id12 := r11.ID, r12.ID
	orders := []models.Order{
		{RoundID: &id11, Total: 1},
		{RoundID: &id12, Total: 1},
	}

	cards := RoundCards(orders, []models.Round{r11, r12})
	require.Equal(t, "Ronde 12", cards[0].Name)
	require.Equal(t, "Ronde 11", cards[1].Name)
}

func TestRoundCardsOnbekendeRonde(t *testing.T) {
	// order verwijst naar een ronde die niet (meer) bestaat
	id := uint(99)
	cards := RoundCards([]models.Order{{RoundID: &id, Total: 5}}, nil)
	require.Len(t, cards, 1)
	require.Equal(t, "99", cards[0].Name)
}
