package storage

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func newCondition(conditions ...ConditionFunc) *Condition {
	c := &Condition{}
	for _, cond := range conditions {
		c = cond(c)
	}
	return c
}

func TestWhereAlwaysExcludesDeletedRows(t *testing.T) {
	is := is.New(t)

	c := newCondition()

	is.Equal("deleted = FALSE", c.Where())
}

func TestWhereJoinsPredicatesWithAnd(t *testing.T) {
	is := is.New(t)

	c := newCondition(WithSiteID("site-01"), WithName("pump"))

	where := c.Where()
	is.True(strings.Contains(where, "site_id = @site_id"))
	is.True(strings.Contains(where, "data->>'name' ILIKE '%' || @name || '%'"))
	is.Equal(3, len(strings.Split(where, " AND ")))
}

func TestTagsAreMarshalledForContainmentMatch(t *testing.T) {
	is := is.New(t)

	c := newCondition(WithTags([]string{"critical", "water"}))

	is.True(strings.Contains(c.Where(), "data->'tags' @> @tags::jsonb"))
	is.Equal(`["critical","water"]`, c.NamedArgs()["tags"])
}

func TestSafeRangeConditions(t *testing.T) {
	is := is.New(t)

	c := newCondition(WithMinSafe(2.5), WithMaxSafe(40))

	where := c.Where()
	is.True(strings.Contains(where, "(data->>'minSafe')::numeric >= @min_safe"))
	is.True(strings.Contains(where, "(data->>'maxSafe')::numeric <= @max_safe"))

	args := c.NamedArgs()
	is.Equal(2.5, args["min_safe"])
	is.Equal(40.0, args["max_safe"])
}

func TestNamedArgsOmitsUnsetConditions(t *testing.T) {
	is := is.New(t)

	c := newCondition(WithID("abc"))

	args := c.NamedArgs()
	is.Equal(1, len(args))
	is.Equal("abc", args["id"])
}

func TestOffsetLimit(t *testing.T) {
	is := is.New(t)

	c := newCondition(WithOffset(10), WithLimit(5))

	is.Equal("OFFSET 10 LIMIT 5 ", c.OffsetLimit())
}
