package api

import (
	"net/url"

	"todoterm/internal/model"
)

// EncodeCriteria serializes criteria as list-endpoint query parameters.
// Fields that mean "no constraint" are omitted entirely: no completed param
// when the filter is all, no search param when the term is empty, no
// category/priority when unselected. sort_by and order are always sent.
func EncodeCriteria(crit model.Criteria) string {
	q := url.Values{}

	switch crit.Filter {
	case model.FilterActive:
		q.Set("completed", "false")
	case model.FilterCompleted:
		q.Set("completed", "true")
	}

	if crit.Search != "" {
		q.Set("search", crit.Search)
	}
	if crit.Category != nil {
		q.Set("category", *crit.Category)
	}
	if crit.Priority != nil {
		q.Set("priority", string(*crit.Priority))
	}

	sortBy := crit.SortBy
	if sortBy == "" {
		sortBy = model.SortCreatedAt
	}
	order := crit.Order
	if order == "" {
		order = model.OrderDesc
	}
	q.Set("sort_by", string(sortBy))
	q.Set("order", string(order))

	return q.Encode()
}
