package policies

import (
	"net/url"

	"github.com/JaimeStill/tribunal/pkg/query"
	"github.com/JaimeStill/tribunal/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "policies", "p").
	Project("id", "ID").
	Project("category", "Category").
	Project("query", "Query").
	Project("owner", "Owner").
	Project("sla", "SLA").
	Project("position", "Position")

var defaultSort = query.SortField{Field: "Position", Descending: false}

func scanPolicy(s repository.Scanner) (Policy, error) {
	var p Policy
	err := s.Scan(
		&p.ID,
		&p.Category,
		&p.Query,
		&p.Owner,
		&p.SLA,
		&p.Position,
	)
	return p, err
}

// Filters holds optional criteria for policy list queries.
type Filters struct {
	Category *string `json:"category,omitempty"`
	Owner    *string `json:"owner,omitempty"`
}

// FiltersFromQuery extracts policy filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if v := values.Get("category"); v != "" {
		f.Category = &v
	}
	if v := values.Get("owner"); v != "" {
		f.Owner = &v
	}

	return f
}

// Apply adds the filter conditions to the query builder.
func (f Filters) Apply(qb *query.Builder) {
	qb.WhereEquals("Category", f.Category)
	qb.WhereContains("Owner", f.Owner)
}
