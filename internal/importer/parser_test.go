package importer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDateCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"excel-serieel", "44927", "2023-01-01"},
		{"d-m-jj", "5-3-24", "2024-03-05"},
		{"d/m/jjjj", "17/11/2023", "2023-11-17"},
		{"al genormaliseerd", "2024-06-01", "2024-06-01"},
		{"vrije tekst blijft staan", "volgende week", "volgende week"},
		{"leeg", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseDateCell(tt.in))
		})
	}
}

func TestToNumber(t *testing.T) {
	require.InDelta(t, 12.5, toNumber("12.5", 0), 1e-9)
	require.InDelta(t, 12.5, toNumber("12,5", 0), 1e-9) // decimale komma
	require.InDelta(t, 1, toNumber("", 1), 1e-9)
	require.InDelta(t, 1, toNumber("n.v.t.", 1), 1e-9)
}

func sheet(rows ...[]string) [][]string {
	header := []string{"Datum", "Naam", "Product", "Kleur", "Maat", "Aantal", "Prijs", "Totaal", "Betaald (Ja/Nee)", "Opmerkingen", "Naar drukker", "Mis Druk", "Winst"}
	return append([][]string{header}, rows...)
}

func TestParseSheetRondemarkeringenEnSeq(t *testing.T) {
	res, err := ParseSheet(sheet(
		[]string{"Bestelronde 1"},
		[]string{"1-2-24", "Anna", "Hoodie", "Zwart", "L", "2", "25", "50", "Ja", "", "", "", "10"},
		[]string{"2-2-24", "Bart", "T-shirt", "Wit", "M", "1", "15", "15", "Nee", "", "", "x", "3"},
		[]string{"Bestelronde 2"},
		[]string{"3-3-24", "Carla", "Cap", "Rood", "", "1", "12", "12", "Ja", "", "", "", "2"},
	))
	require.NoError(t, err)

	require.Equal(t, []string{"Bestelronde 1", "Bestelronde 2"}, res.RoundNames)
	require.Len(t, res.Orders, 3)

	// seq begint per ronde opnieuw bij 1
	require.Equal(t, "Bestelronde 1", res.Orders[0].RoundName)
	require.Equal(t, 1, res.Orders[0].Seq)
	require.Equal(t, 2, res.Orders[1].Seq)
	require.Equal(t, "Bestelronde 2", res.Orders[2].RoundName)
	require.Equal(t, 1, res.Orders[2].Seq)

	require.Equal(t, "2024-02-01", res.Orders[0].Date)
	require.Equal(t, "Anna", res.Orders[0].Customer)
	require.Equal(t, 2, res.Orders[0].Qty)
	require.InDelta(t, 50, res.Orders[0].Total, 1e-9)
	require.InDelta(t, 10, res.Orders[0].Margin, 1e-9)

	// elke niet-lege misdrukcel telt
	require.False(t, res.Orders[0].Misprint)
	require.True(t, res.Orders[1].Misprint)
}

func TestParseSheetLegeDatumWordtOvergeslagen(t *testing.T) {
	res, err := ParseSheet(sheet(
		[]string{"Bestelronde 1"},
		[]string{"", "Spook", "Hoodie"},
		[]string{"1-2-24", "Anna", "Hoodie", "", "", "1", "25", "25", "", "", "", "", "5"},
	))
	require.NoError(t, err)

	require.Equal(t, 1, res.Skipped)
	require.Len(t, res.Orders, 1)
	// de overgeslagen rij verbruikt geen volgnummer
	require.Equal(t, 1, res.Orders[0].Seq)
}

func TestParseSheetNumeriekeFallbacks(t *testing.T) {
	res, err := ParseSheet(sheet(
		[]string{"1-2-24", "Anna", "Hoodie", "", "", "", "", "", "", "", "", "", ""},
		[]string{"2-2-24", "Bart", "T-shirt", "", "", "3", "10", "", "", "", "", "", ""},
	))
	require.NoError(t, err)
	require.Len(t, res.Orders, 2)

	// alles leeg: qty 1, prijs 0, totaal 0, marge 0
	require.Equal(t, 1, res.Orders[0].Qty)
	require.Zero(t, res.Orders[0].Price)
	require.Zero(t, res.Orders[0].Total)
	require.Zero(t, res.Orders[0].Margin)

	// totaal ontbreekt: qty × prijs
	require.InDelta(t, 30, res.Orders[1].Total, 1e-9)
}

func TestParseSheetRijenVoorEersteMarkering(t *testing.T) {
	res, err := ParseSheet(sheet(
		[]string{"1-1-24", "Anna", "Hoodie", "", "", "1", "25", "25", "", "", "", "", "5"},
	))
	require.NoError(t, err)
	require.Len(t, res.Orders, 1)
	require.Empty(t, res.Orders[0].RoundName)
}

func TestParseSheetValidatie(t *testing.T) {
	_, err := ParseSheet(nil)
	require.Error(t, err)

	// kopregel zonder Datum-kolom
	_, err = ParseSheet([][]string{{"Naam", "Product"}})
	require.Error(t, err)
}

func TestParseSheetDubbeleMarkeringTeltEenKeer(t *testing.T) {
	res, err := ParseSheet(sheet(
		[]string{"Bestelronde 1"},
		[]string{"1-2-24", "Anna", "Hoodie", "", "", "1", "25", "25", "", "", "", "", "5"},
		[]string{"Bestelronde 1"},
		[]string{"2-2-24", "Bart", "Hoodie", "", "", "1", "25", "25", "", "", "", "", "5"},
	))
	require.NoError(t, err)

	require.Equal(t, []string{"Bestelronde 1"}, res.RoundNames)
	// seq reset bij elke markering, ook bij een herhaalde
	require.Equal(t, 1, res.Orders[1].Seq)
}
