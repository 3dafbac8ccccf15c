package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"log/slog"

	"github.com/diwise/iot-facility-mgmt/internal/pkg/application/sites"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateSiteReturnsCreatedRecord(t *testing.T) {
	is := is.New(t)

	svc := &sites.SiteServiceMock{
		CreateFunc: func(ctx context.Context, site types.Site) (types.Site, error) {
			site.ID = "site-01"
			return site, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/sites", strings.NewReader(`{"name":"pumpstation norr"}`))
	res := httptest.NewRecorder()

	createSiteHandler(discardLogger(), svc, false).ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)
	is.Equal(1, len(svc.CreateCalls()))

	var site types.Site
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &site))
	is.Equal("site-01", site.ID)
	is.Equal("pumpstation norr", site.Name)
}

func TestCreateSiteWithMalformedBodyReturns415(t *testing.T) {
	is := is.New(t)

	svc := &sites.SiteServiceMock{}

	req := httptest.NewRequest(http.MethodPost, "/v1/sites", strings.NewReader(`{"name":`))
	res := httptest.NewRecorder()

	createSiteHandler(discardLogger(), svc, false).ServeHTTP(res, req)

	is.Equal(http.StatusUnsupportedMediaType, res.Code)
	is.Equal(0, len(svc.CreateCalls()))
}

func TestGetSiteReturns404OnUnknownID(t *testing.T) {
	is := is.New(t)

	svc := &sites.SiteServiceMock{
		GetByIDFunc: func(ctx context.Context, siteID string) (types.Site, error) {
			return types.Site{}, sites.ErrSiteNotFound
		},
	}

	res := doRequest(svc, http.MethodGet, "/v1/sites/nosuchsite", "")

	is.Equal(http.StatusNotFound, res.Code)
}

func TestQuerySitesPassesFilterToService(t *testing.T) {
	is := is.New(t)

	var filter types.SiteFilter
	svc := &sites.SiteServiceMock{
		QueryFunc: func(ctx context.Context, f types.SiteFilter) ([]types.Site, error) {
			filter = f
			return []types.Site{}, nil
		},
	}

	res := doRequest(svc, http.MethodGet, "/v1/sites?name=pump&tags=critical,water&limit=5&skip=10", "")

	is.Equal(http.StatusOK, res.Code)
	is.Equal("pump", filter.Name)
	is.Equal([]string{"critical", "water"}, filter.Tags)
	is.Equal(5, filter.Limit)
	is.Equal(10, filter.Skip)
}

func TestUpdateSiteOverridesIDFromPath(t *testing.T) {
	is := is.New(t)

	svc := &sites.SiteServiceMock{
		UpdateFunc: func(ctx context.Context, site types.Site) error {
			return nil
		},
	}

	res := doRequest(svc, http.MethodPut, "/v1/sites/site-01", `{"id":"other","name":"n"}`)

	is.Equal(http.StatusNoContent, res.Code)
	is.Equal(1, len(svc.UpdateCalls()))
	is.Equal("site-01", svc.UpdateCalls()[0].Site.ID)
}

func TestPatchSiteReturnsMergedRecord(t *testing.T) {
	is := is.New(t)

	svc := &sites.SiteServiceMock{
		MergeFunc: func(ctx context.Context, siteID string, fields map[string]any) (types.Site, error) {
			return types.Site{ID: siteID, Name: "renamed"}, nil
		},
	}

	res := doRequest(svc, http.MethodPatch, "/v1/sites/site-01", `{"name":"renamed"}`)

	is.Equal(http.StatusOK, res.Code)

	var site types.Site
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &site))
	is.Equal("renamed", site.Name)
}

func TestDeleteSiteAcknowledges(t *testing.T) {
	is := is.New(t)

	svc := &sites.SiteServiceMock{
		DeleteFunc: func(ctx context.Context, siteID string) error {
			return nil
		},
	}

	res := doRequest(svc, http.MethodDelete, "/v1/sites/site-01", "")

	is.Equal(http.StatusOK, res.Code)
	is.Equal(`{"deleted":true}`, strings.TrimSpace(res.Body.String()))
}

func TestInternalErrorBodyIsSuppressedInProduction(t *testing.T) {
	is := is.New(t)

	svc := &sites.SiteServiceMock{
		GetByIDFunc: func(ctx context.Context, siteID string) (types.Site, error) {
			return types.Site{}, io.ErrUnexpectedEOF
		},
	}

	router := chi.NewRouter()
	RegisterSiteHandlers(context.Background(), router, svc, true)

	req := httptest.NewRequest(http.MethodGet, "/v1/sites/site-01", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	is.Equal(http.StatusInternalServerError, res.Code)
	is.Equal(http.StatusText(http.StatusInternalServerError), strings.TrimSpace(res.Body.String()))
}

func doRequest(svc sites.SiteService, method, target, body string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	RegisterSiteHandlers(context.Background(), router, svc, false)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	return res
}
