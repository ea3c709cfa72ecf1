package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoterm/internal/model"
)

func TestBuildCriteria(t *testing.T) {
	crit, err := buildCriteria("active", "  report ", "work", "high", "due_date", "asc")
	require.NoError(t, err)

	assert.Equal(t, model.FilterActive, crit.Filter)
	assert.Equal(t, "report", crit.Search)
	require.NotNil(t, crit.Category)
	assert.Equal(t, "work", *crit.Category)
	require.NotNil(t, crit.Priority)
	assert.Equal(t, model.PriorityHigh, *crit.Priority)
	assert.Equal(t, model.SortDueDate, crit.SortBy)
	assert.Equal(t, model.OrderAsc, crit.Order)
}

func TestBuildCriteriaDefaults(t *testing.T) {
	crit, err := buildCriteria("all", "", "", "", "created_at", "desc")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCriteria(), crit)
}

func TestBuildCriteriaRejectsBadValues(t *testing.T) {
	_, err := buildCriteria("done", "", "", "", "created_at", "desc")
	assert.ErrorContains(t, err, "invalid filter")

	_, err = buildCriteria("all", "", "", "urgent", "created_at", "desc")
	assert.ErrorContains(t, err, "invalid priority")

	_, err = buildCriteria("all", "", "", "", "id", "desc")
	assert.ErrorContains(t, err, "invalid sort key")

	_, err = buildCriteria("all", "", "", "", "created_at", "down")
	assert.ErrorContains(t, err, "invalid order")
}

func TestParseID(t *testing.T) {
	id, err := parseID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, bad := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := parseID(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
