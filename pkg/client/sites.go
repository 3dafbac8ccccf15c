package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/diwise/iot-facility-mgmt/pkg/types"
)

type SiteClient interface {
	Create(ctx context.Context, site types.Site) (types.Site, error)
	All(ctx context.Context, filter types.SiteFilter) ([]types.Site, error)
	Get(ctx context.Context, siteID string) (types.Site, error)
	Update(ctx context.Context, site types.Site) error
	Modify(ctx context.Context, siteID string, fields map[string]any) (types.Site, error)
	Delete(ctx context.Context, siteID string) error
}

type siteClient struct {
	httpBackend
	metrics *Metrics
}

func NewSiteClient(siteSvcURL string, m *Metrics) SiteClient {
	return &siteClient{
		httpBackend: newHTTPBackend(siteSvcURL),
		metrics:     m,
	}
}

func (c *siteClient) Create(ctx context.Context, site types.Site) (types.Site, error) {
	return exec(ctx, c.metrics, "create-site", "site-svc", func(ctx context.Context) (types.Site, error) {
		body, code, err := c.do(ctx, http.MethodPost, c.url+"/v1/sites", site)
		if err != nil {
			return types.Site{}, err
		}
		if code != http.StatusCreated {
			return types.Site{}, fmt.Errorf("create site failed with status code %d", code)
		}

		var created types.Site
		err = json.Unmarshal(body, &created)
		if err != nil {
			return types.Site{}, fmt.Errorf("failed to unmarshal response body: %w", err)
		}

		return created, nil
	})
}

func (c *siteClient) All(ctx context.Context, filter types.SiteFilter) ([]types.Site, error) {
	return exec(ctx, c.metrics, "all-sites", "site-svc", func(ctx context.Context) ([]types.Site, error) {
		q := url.Values{}
		if filter.Name != "" {
			q.Set("name", filter.Name)
		}
		if filter.Location != "" {
			q.Set("location", filter.Location)
		}
		if len(filter.Tags) > 0 {
			q.Set("tags", strings.Join(filter.Tags, ","))
		}
		if filter.Limit > 0 {
			q.Set("limit", strconv.Itoa(filter.Limit))
		}
		if filter.Skip > 0 {
			q.Set("skip", strconv.Itoa(filter.Skip))
		}

		u := c.url + "/v1/sites"
		if len(q) > 0 {
			u += "?" + q.Encode()
		}

		body, code, err := c.do(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		if code != http.StatusOK {
			return nil, fmt.Errorf("query sites failed with status code %d", code)
		}

		result := []types.Site{}
		err = json.Unmarshal(body, &result)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal response body: %w", err)
		}

		return result, nil
	})
}

func (c *siteClient) Get(ctx context.Context, siteID string) (types.Site, error) {
	return exec(ctx, c.metrics, "get-site", "site-svc", func(ctx context.Context) (types.Site, error) {
		body, code, err := c.do(ctx, http.MethodGet, c.url+"/v1/sites/"+siteID, nil)
		if err != nil {
			return types.Site{}, err
		}
		if code == http.StatusNotFound {
			return types.Site{}, ErrNotFound
		}
		if code != http.StatusOK {
			return types.Site{}, fmt.Errorf("get site failed with status code %d", code)
		}

		var site types.Site
		err = json.Unmarshal(body, &site)
		if err != nil {
			return types.Site{}, fmt.Errorf("failed to unmarshal response body: %w", err)
		}

		return site, nil
	})
}

func (c *siteClient) Update(ctx context.Context, site types.Site) error {
	_, err := exec(ctx, c.metrics, "update-site", "site-svc", func(ctx context.Context) (struct{}, error) {
		_, code, err := c.do(ctx, http.MethodPut, c.url+"/v1/sites/"+site.ID, site)
		if err != nil {
			return struct{}{}, err
		}
		if code == http.StatusNotFound {
			return struct{}{}, ErrNotFound
		}
		if code != http.StatusNoContent {
			return struct{}{}, fmt.Errorf("update site failed with status code %d", code)
		}

		return struct{}{}, nil
	})
	return err
}

func (c *siteClient) Modify(ctx context.Context, siteID string, fields map[string]any) (types.Site, error) {
	return exec(ctx, c.metrics, "modify-site", "site-svc", func(ctx context.Context) (types.Site, error) {
		body, code, err := c.do(ctx, http.MethodPatch, c.url+"/v1/sites/"+siteID, fields)
		if err != nil {
			return types.Site{}, err
		}
		if code == http.StatusNotFound {
			return types.Site{}, ErrNotFound
		}
		if code != http.StatusOK {
			return types.Site{}, fmt.Errorf("modify site failed with status code %d", code)
		}

		var site types.Site
		err = json.Unmarshal(body, &site)
		if err != nil {
			return types.Site{}, fmt.Errorf("failed to unmarshal response body: %w", err)
		}

		return site, nil
	})
}

func (c *siteClient) Delete(ctx context.Context, siteID string) error {
	_, err := exec(ctx, c.metrics, "delete-site", "site-svc", func(ctx context.Context) (struct{}, error) {
		_, code, err := c.do(ctx, http.MethodDelete, c.url+"/v1/sites/"+siteID, nil)
		if err != nil {
			return struct{}{}, err
		}
		if code == http.StatusNotFound {
			return struct{}{}, ErrNotFound
		}
		if code != http.StatusOK {
			return struct{}{}, fmt.Errorf("delete site failed with status code %d", code)
		}

		return struct{}{}, nil
	})
	return err
}
