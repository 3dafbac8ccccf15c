package sites

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/iot-facility-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

var ErrSiteNotFound = fmt.Errorf("site not found")

//go:generate moq -rm -out sitesvc_mock.go . SiteService
type SiteService interface {
	Create(ctx context.Context, site types.Site) (types.Site, error)
	Query(ctx context.Context, filter types.SiteFilter) ([]types.Site, error)
	GetByID(ctx context.Context, siteID string) (types.Site, error)
	Update(ctx context.Context, site types.Site) error
	Merge(ctx context.Context, siteID string, fields map[string]any) (types.Site, error)
	Delete(ctx context.Context, siteID string) error
}

//go:generate moq -rm -out sitestorage_mock.go . SiteStorage
type SiteStorage interface {
	AddSite(ctx context.Context, site types.Site) error
	UpdateSite(ctx context.Context, site types.Site) error
	GetSite(ctx context.Context, conditions ...storage.ConditionFunc) (types.Site, error)
	QuerySites(ctx context.Context, conditions ...storage.ConditionFunc) ([]types.Site, error)
	DeleteSite(ctx context.Context, siteID string) error
}

type siteSvc struct {
	storage   SiteStorage
	messenger messaging.MsgContext
}

func New(s SiteStorage, m messaging.MsgContext) SiteService {
	return &siteSvc{
		storage:   s,
		messenger: m,
	}
}

func (svc *siteSvc) Create(ctx context.Context, site types.Site) (types.Site, error) {
	// ids are assigned here and immutable thereafter
	site.ID = uuid.NewString()

	if site.Tags == nil {
		site.Tags = []string{}
	}

	err := svc.storage.AddSite(ctx, site)
	if err != nil {
		return types.Site{}, err
	}

	err = svc.messenger.PublishOnTopic(ctx, &types.SiteCreated{
		Site:      site,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		logging.GetFromContext(ctx).Error("could not publish site.created", "site_id", site.ID, "err", err.Error())
	}

	return site, nil
}

func (svc *siteSvc) Query(ctx context.Context, filter types.SiteFilter) ([]types.Site, error) {
	conditions := make([]storage.ConditionFunc, 0)

	if filter.Name != "" {
		conditions = append(conditions, storage.WithName(filter.Name))
	}
	if filter.Location != "" {
		conditions = append(conditions, storage.WithLocation(filter.Location))
	}
	if len(filter.Tags) > 0 {
		conditions = append(conditions, storage.WithTags(filter.Tags))
	}
	if filter.Skip > 0 {
		conditions = append(conditions, storage.WithOffset(filter.Skip))
	}
	if filter.Limit > 0 {
		conditions = append(conditions, storage.WithLimit(filter.Limit))
	}

	return svc.storage.QuerySites(ctx, conditions...)
}

func (svc *siteSvc) GetByID(ctx context.Context, siteID string) (types.Site, error) {
	site, err := svc.storage.GetSite(ctx, storage.WithID(siteID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Site{}, ErrSiteNotFound
		}
		return types.Site{}, err
	}

	return site, nil
}

func (svc *siteSvc) Update(ctx context.Context, site types.Site) error {
	err := svc.storage.UpdateSite(ctx, site)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrSiteNotFound
		}
		return err
	}

	err = svc.messenger.PublishOnTopic(ctx, &types.SiteUpdated{
		Site:      site,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		logging.GetFromContext(ctx).Error("could not publish site.updated", "site_id", site.ID, "err", err.Error())
	}

	return nil
}

func (svc *siteSvc) Merge(ctx context.Context, siteID string, fields map[string]any) (types.Site, error) {
	log := logging.GetFromContext(ctx)

	site, err := svc.GetByID(ctx, siteID)
	if err != nil {
		return types.Site{}, err
	}

	for k, v := range fields {
		switch k {
		case "id":
			continue
		case "name":
			s, ok := v.(string)
			if ok {
				site.Name = s
			}
		case "location":
			s, ok := v.(string)
			if ok {
				site.Location = s
			}
		case "priority":
			// json numbers decode as float64
			f, ok := v.(float64)
			if ok {
				site.Priority = int(f)
			}
		case "tags":
			tags, ok := v.([]any)
			if ok {
				site.Tags = make([]string, 0, len(tags))
				for _, t := range tags {
					s, ok := t.(string)
					if ok {
						site.Tags = append(site.Tags, s)
					}
				}
			}
		default:
			log.Debug("field not mapped for merge", "site_id", siteID, "name", k)
		}
	}

	err = svc.Update(ctx, site)
	if err != nil {
		return types.Site{}, err
	}

	return site, nil
}

func (svc *siteSvc) Delete(ctx context.Context, siteID string) error {
	err := svc.storage.DeleteSite(ctx, siteID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrSiteNotFound
		}
		return err
	}

	err = svc.messenger.PublishOnTopic(ctx, &types.SiteDeleted{
		SiteID:    siteID,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		logging.GetFromContext(ctx).Error("could not publish site.deleted", "site_id", siteID, "err", err.Error())
	}

	return nil
}
