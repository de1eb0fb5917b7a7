package reports

import "strings"

// KeyCount is one bucket in a rollup, ordered by first appearance in the
// report rows so summaries are deterministic for a given input.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// ProductSLA is the per-product SLA compliance rollup.
type ProductSLA struct {
	Product       string `json:"product_name"`
	Met           int    `json:"met"`
	Breached      int    `json:"breached"`
	Indeterminate int    `json:"indeterminate"`
}

// Summary aggregates a report's rows into the rollups surfaced alongside the
// row-level data.
type Summary struct {
	Tickets             int          `json:"tickets"`
	SLAMet              int          `json:"sla_met"`
	SLABreached         int          `json:"sla_breached"`
	SLAIndeterminate    int          `json:"sla_indeterminate"`
	SLAByProduct        []ProductSLA `json:"sla_by_product"`
	Satisfaction        []KeyCount   `json:"satisfaction"`
	Verdicts            []KeyCount   `json:"verdicts"`
	Owners              []KeyCount   `json:"owners"`
	UnresolvedByProduct []KeyCount   `json:"unresolved_by_product"`
}

type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) results() []KeyCount {
	out := make([]KeyCount, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, KeyCount{Key: key, Count: c.counts[key]})
	}
	return out
}

// Summarize builds the rollups for a set of report rows. Tickets whose AI
// satisfaction could not be determined count under the "unknown" satisfaction
// bucket. A ticket is unresolved when its verdict is anything short of
// resolved within SLA to customer satisfaction.
func Summarize(rows []Row) Summary {
	summary := Summary{Tickets: len(rows)}

	products := newCounter()
	byProduct := make(map[string]*ProductSLA)
	satisfaction := newCounter()
	verdicts := newCounter()
	owners := newCounter()
	unresolved := newCounter()

	for _, row := range rows {
		if _, ok := byProduct[row.Product]; !ok {
			products.add(row.Product)
			byProduct[row.Product] = &ProductSLA{Product: row.Product}
		}
		bucket := byProduct[row.Product]

		switch {
		case row.SLAMet == nil:
			summary.SLAIndeterminate++
			bucket.Indeterminate++
		case *row.SLAMet:
			summary.SLAMet++
			bucket.Met++
		default:
			summary.SLABreached++
			bucket.Breached++
		}

		if row.Satisfaction != nil {
			satisfaction.add(strings.ToLower(*row.Satisfaction))
		} else {
			satisfaction.add("unknown")
		}

		verdicts.add(string(row.Verdict))
		owners.add(row.Owner)

		if row.Verdict != VerdictSatisfiedWithinSLA {
			unresolved.add(row.Product)
		}
	}

	for _, product := range products.order {
		summary.SLAByProduct = append(summary.SLAByProduct, *byProduct[product])
	}

	summary.Satisfaction = satisfaction.results()
	summary.Verdicts = verdicts.results()
	summary.Owners = owners.results()
	summary.UnresolvedByProduct = unresolved.results()

	return summary
}
