package client

import (
	"context"
	"errors"
	"testing"

	"github.com/diwise/iot-facility-mgmt/internal/pkg/testutil"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/matryer/is"
	"github.com/prometheus/client_golang/prometheus"
)

func TestSiteClientRoundTrip(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	srv := testutil.NewSiteServer()
	defer srv.Close()

	c := NewSiteClient(srv.URL, NewMetrics(prometheus.NewRegistry()))

	created, err := c.Create(ctx, types.Site{Name: "pumpstation norr", Tags: []string{"water"}})
	is.NoErr(err)
	is.True(created.ID != "")

	got, err := c.Get(ctx, created.ID)
	is.NoErr(err)
	is.Equal(created, got)
}

func TestSiteClientGetReturnsNotFoundOnUnknownID(t *testing.T) {
	is := is.New(t)

	srv := testutil.NewSiteServer()
	defer srv.Close()

	c := NewSiteClient(srv.URL, NewMetrics(prometheus.NewRegistry()))

	_, err := c.Get(context.Background(), "nosuchsite")
	is.True(errors.Is(err, ErrNotFound))
}

func TestSiteClientUpdateThenGetReturnsUpdatedRecord(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	srv := testutil.NewSiteServer()
	defer srv.Close()

	c := NewSiteClient(srv.URL, NewMetrics(prometheus.NewRegistry()))

	created, err := c.Create(ctx, types.Site{Name: "pumpstation norr"})
	is.NoErr(err)

	created.Name = "pumpstation syd"
	is.NoErr(c.Update(ctx, created))

	got, err := c.Get(ctx, created.ID)
	is.NoErr(err)
	is.Equal("pumpstation syd", got.Name)
}

func TestSiteClientModifyReturnsPatchedRecord(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	srv := testutil.NewSiteServer()
	defer srv.Close()

	c := NewSiteClient(srv.URL, NewMetrics(prometheus.NewRegistry()))

	created, err := c.Create(ctx, types.Site{Name: "pumpstation norr", Priority: 1})
	is.NoErr(err)

	patched, err := c.Modify(ctx, created.ID, map[string]any{"priority": 3})
	is.NoErr(err)
	is.Equal(3, patched.Priority)
	is.Equal("pumpstation norr", patched.Name)
}

func TestSiteClientAllAppliesFilters(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	srv := testutil.NewSiteServer()
	defer srv.Close()

	c := NewSiteClient(srv.URL, NewMetrics(prometheus.NewRegistry()))

	_, err := c.Create(ctx, types.Site{Name: "pumpstation norr", Tags: []string{"water"}})
	is.NoErr(err)
	_, err = c.Create(ctx, types.Site{Name: "reningsverk", Tags: []string{"water", "critical"}})
	is.NoErr(err)

	result, err := c.All(ctx, types.SiteFilter{Tags: []string{"critical"}})
	is.NoErr(err)
	is.Equal(1, len(result))
	is.Equal("reningsverk", result[0].Name)
}

func TestSiteClientDelete(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	srv := testutil.NewSiteServer()
	defer srv.Close()

	c := NewSiteClient(srv.URL, NewMetrics(prometheus.NewRegistry()))

	created, err := c.Create(ctx, types.Site{Name: "pumpstation norr"})
	is.NoErr(err)

	is.NoErr(c.Delete(ctx, created.ID))

	_, err = c.Get(ctx, created.ID)
	is.True(errors.Is(err, ErrNotFound))
}
