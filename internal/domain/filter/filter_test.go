package filter

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 12, 9, 30, 0, 0, time.UTC)

func TestResolve_MonthUsesPickedDate(t *testing.T) {
	c, err := Params{Type: "month", Date: "2024-02-10"}.Resolve(now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), c.Start)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, int(999*time.Millisecond), time.UTC), c.End)
	assert.Equal(t, "2024-02-01", c.StartDate())
	assert.Equal(t, "2024-02-29", c.EndDate())
}

func TestResolve_MonthDefaultsToCurrentMonth(t *testing.T) {
	c, err := Params{Type: "month"}.Resolve(now)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-01", c.StartDate())
	assert.Equal(t, "2024-06-30", c.EndDate())
}

func TestResolve_RangeIsInclusive(t *testing.T) {
	c, err := Params{Type: "range", From: "2024-06-03", To: "2024-06-07"}.Resolve(now)
	require.NoError(t, err)

	assert.True(t, c.InRange(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)))
	assert.True(t, c.InRange(time.Date(2024, 6, 7, 23, 59, 59, 0, time.UTC)))
	assert.False(t, c.InRange(time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)))
	assert.False(t, c.InRange(time.Date(2024, 6, 2, 23, 59, 59, 0, time.UTC)))
}

func TestResolve_RangeWithoutToIsSingleDay(t *testing.T) {
	c, err := Params{Type: "range", From: "2024-06-03"}.Resolve(now)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-03", c.StartDate())
	assert.Equal(t, "2024-06-03", c.EndDate())
}

func TestResolve_ValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		p     Params
		field string
	}{
		{"unknown type", Params{Type: "week"}, "filter_type"},
		{"range without from", Params{Type: "range"}, "from"},
		{"from after to", Params{Type: "range", From: "2024-06-10", To: "2024-06-01"}, "to"},
		{"bad month date", Params{Type: "month", Date: "06/2024"}, "date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.p.Resolve(now)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tc.field)
		})
	}
}

func TestResolve_AllSentinelMeansNoFilter(t *testing.T) {
	c, err := Params{DepartmentID: "all", EmployeeID: ""}.Resolve(now)
	require.NoError(t, err)

	assert.Nil(t, c.DepartmentID)
	assert.Nil(t, c.EmployeeID)
	assert.False(t, c.Bounded())
	assert.True(t, c.Match(time.Time{}, "any-dept", "any-emp"))
}

func TestCriteria_MatchIsConjunctive(t *testing.T) {
	c, err := Params{Type: "range", From: "2024-06-01", To: "2024-06-30", DepartmentID: "d1", EmployeeID: "e1"}.Resolve(now)
	require.NoError(t, err)

	inside := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	outside := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, c.Match(inside, "d1", "e1"))
	assert.False(t, c.Match(outside, "d1", "e1"))
	assert.False(t, c.Match(inside, "d2", "e1"))
	assert.False(t, c.Match(inside, "d1", "e2"))
}

func TestCriteria_MatchMembers(t *testing.T) {
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	members := map[string]struct{}{"e1": {}}

	unfiltered := Criteria{}
	assert.True(t, unfiltered.MatchMembers(date, "e2", nil))

	dept := "d1"
	c := Criteria{DepartmentID: &dept}
	assert.True(t, c.MatchMembers(date, "e1", members))
	assert.False(t, c.MatchMembers(date, "e2", members))

	restricted := c.RestrictTo("e2")
	assert.False(t, restricted.MatchMembers(date, "e1", members))
}
