package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	ID       string
	SiteID   string
	Name     string
	Location string
	Tags     []string
	Kind     string
	SerialNo string

	MinSafe *float64
	MaxSafe *float64

	offset *int
	limit  *int
}

func WithID(id string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.ID = id
		return c
	}
}

func WithSiteID(siteID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.SiteID = siteID
		return c
	}
}

func WithName(name string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Name = name
		return c
	}
}

func WithLocation(location string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Location = location
		return c
	}
}

func WithTags(tags []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Tags = tags
		return c
	}
}

func WithKind(kind string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Kind = kind
		return c
	}
}

func WithSerialNo(serialNo string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.SerialNo = serialNo
		return c
	}
}

func WithMinSafe(min float64) ConditionFunc {
	return func(c *Condition) *Condition {
		c.MinSafe = &min
		return c
	}
}

func WithMaxSafe(max float64) ConditionFunc {
	return func(c *Condition) *Condition {
		c.MaxSafe = &max
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.ID != "" {
		args["id"] = c.ID
	}
	if c.SiteID != "" {
		args["site_id"] = c.SiteID
	}
	if c.Name != "" {
		args["name"] = c.Name
	}
	if c.Location != "" {
		args["location"] = c.Location
	}
	if len(c.Tags) > 0 {
		b, _ := json.Marshal(c.Tags)
		args["tags"] = string(b)
	}
	if c.Kind != "" {
		args["kind"] = c.Kind
	}
	if c.SerialNo != "" {
		args["serial_no"] = c.SerialNo
	}
	if c.MinSafe != nil {
		args["min_safe"] = *c.MinSafe
	}
	if c.MaxSafe != nil {
		args["max_safe"] = *c.MaxSafe
	}

	return args
}

func (c Condition) Where() string {
	where := []string{"deleted = FALSE"}

	if c.ID != "" {
		where = append(where, "id = @id")
	}
	if c.SiteID != "" {
		where = append(where, "site_id = @site_id")
	}
	if c.Name != "" {
		where = append(where, "data->>'name' ILIKE '%' || @name || '%'")
	}
	if c.Location != "" {
		where = append(where, "data->>'location' ILIKE '%' || @location || '%'")
	}
	if len(c.Tags) > 0 {
		where = append(where, "data->'tags' @> @tags::jsonb")
	}
	if c.Kind != "" {
		where = append(where, "kind = @kind")
	}
	if c.SerialNo != "" {
		where = append(where, "data->>'serialNo' = @serial_no")
	}
	if c.MinSafe != nil {
		where = append(where, "(data->>'minSafe')::numeric >= @min_safe")
	}
	if c.MaxSafe != nil {
		where = append(where, "(data->>'maxSafe')::numeric <= @max_safe")
	}

	return strings.Join(where, " AND ")
}

func (c Condition) OffsetLimit() string {
	offsetLimit := ""

	if c.offset != nil {
		offsetLimit += fmt.Sprintf("OFFSET %d ", *c.offset)
	}
	if c.limit != nil {
		offsetLimit += fmt.Sprintf("LIMIT %d ", *c.limit)
	}

	return offsetLimit
}
