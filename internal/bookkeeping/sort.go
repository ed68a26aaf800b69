package bookkeeping

import (
	"regexp"
	"sort"
	"strconv"

	"madcrew-backend/internal/models"
)

// SortOrders: presentatievolgorde van bestellingen. Binnen één ronde geldt
// het seq-nummer (oplopend) zodra minstens één bestelling er een heeft;
// anders de datumstring oplopend. Dat laatste veronderstelt ISO-datums
// (YYYY-MM-DD); andere formaten sorteren verkeerd — bekende beperking.
// De sortering is stabiel: gelijke sleutels houden de oorspronkelijke volgorde.
func SortOrders(orders []models.Order, singleRound bool) []models.Order {
	out := make([]models.Order, len(orders))
	copy(out, orders)

	if singleRound {
		hasSeq := false
		for _, o := range out {
			if o.Seq > 0 {
				hasSeq = true
				break
			}
		}
		if hasSeq {
			sort.SliceStable(out, func(i, j int) bool {
				return out[i].Seq < out[j].Seq
			})
			return out
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// laatste cijferreeks aan het einde van de naam
var trailingNumberRe = regexp.MustCompile(`(\d+)\s*$`)

// ExtractRoundNumber: haalt het nummer aan het einde van een rondenaam op
// ("Bestelronde 12" -> 12). nil als er geen nummer staat. Heuristiek over
// vrije tekst; alleen als tiebreak gebruikt.
func ExtractRoundNumber(name string) *int {
	m := trailingNumberRe.FindStringSubmatch(name)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

// RoundCard: samenvatting van één ronde voor het dashboard.
type RoundCard struct {
	RoundID   *uint              `json:"round_id"`
	Name      string             `json:"name"`
	Status    models.RoundStatus `json:"status"`
	Revenue   float64            `json:"revenue"`
	MarginSum float64            `json:"margin_sum"`
	Count     int                `json:"count"`

	createdAt int64
	numHint   *int
}

// RoundCards: groepeert bestellingen per ronde en sorteert de kaarten:
// open eerst, dan aanmaakdatum nieuw->oud, dan naamnummer aflopend
// ("Ronde 12" vóór "Ronde 11"), dan alfabetisch op naam.
// Bestellingen zonder ronde komen in een "—"-bucket.
func RoundCards(orders []models.Order, rounds []models.Round) []RoundCard {
	meta := make(map[uint]models.Round, len(rounds))
	for _, r := range rounds {
		meta[r.ID] = r
	}

	byRound := make(map[string]*RoundCard)
	var keys []string

	for _, o := range orders {
		key := "—"
		var card RoundCard
		if o.RoundID != nil {
			key = strconv.FormatUint(uint64(*o.RoundID), 10)
		}
		cur, ok := byRound[key]
		if !ok {
			card = RoundCard{RoundID: o.RoundID, Name: "—"}
			if o.RoundID != nil {
				if r, found := meta[*o.RoundID]; found {
					card.Name = r.Name
					card.Status = r.Status
					card.createdAt = r.CreatedAt.UnixMilli()
				} else {
					card.Name = key
				}
			}
			card.numHint = ExtractRoundNumber(card.Name)
			cur = &card
			byRound[key] = cur
			keys = append(keys, key)
		}
		cur.Revenue += o.Total
		cur.MarginSum += o.Margin
		cur.Count++
	}

	list := make([]RoundCard, 0, len(keys))
	for _, k := range keys {
		list = append(list, *byRound[k])
	}

	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]

		ao, bo := 1, 1
		if a.Status == models.RoundStatusOpen {
			ao = 0
		}
		if b.Status == models.RoundStatusOpen {
			bo = 0
		}
		if ao != bo {
			return ao < bo
		}

		if a.createdAt != 0 && b.createdAt != 0 && a.createdAt != b.createdAt {
			return a.createdAt > b.createdAt // nieuw -> oud
		}

		if a.numHint != nil && b.numHint != nil && *a.numHint != *b.numHint {
			return *a.numHint > *b.numHint // 12 vóór 11
		}

		return a.Name < b.Name
	})

	return list
}
