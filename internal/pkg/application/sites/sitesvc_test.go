package sites

import (
	"context"
	"errors"
	"testing"

	"github.com/diwise/iot-facility-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestCreateAssignsIDAndPublishesEvent(t *testing.T) {
	is := is.New(t)
	svc, store, msgCtx := testSetup()

	site, err := svc.Create(context.Background(), types.Site{Name: "pumpstation norr"})

	is.NoErr(err)
	is.True(site.ID != "")
	is.Equal([]string{}, site.Tags)
	is.Equal(1, len(store.AddSiteCalls()))
	is.Equal(1, len(msgCtx.PublishOnTopicCalls()))
	is.Equal("site.created", msgCtx.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestCreateSucceedsEvenIfPublishFails(t *testing.T) {
	is := is.New(t)
	svc, _, msgCtx := testSetup()

	msgCtx.PublishOnTopicFunc = func(ctx context.Context, message messaging.TopicMessage) error {
		return errors.New("broker unavailable")
	}

	_, err := svc.Create(context.Background(), types.Site{Name: "pumpstation norr"})

	is.NoErr(err)
}

func TestGetByIDMapsNoRowsToNotFound(t *testing.T) {
	is := is.New(t)
	svc, store, _ := testSetup()

	store.GetSiteFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Site, error) {
		return types.Site{}, storage.ErrNoRows
	}

	_, err := svc.GetByID(context.Background(), "nosuchsite")

	is.True(errors.Is(err, ErrSiteNotFound))
}

func TestMergeAppliesPartialFields(t *testing.T) {
	is := is.New(t)
	svc, store, _ := testSetup()

	store.GetSiteFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Site, error) {
		return types.Site{ID: "site-01", Name: "old", Priority: 1, Tags: []string{"water"}}, nil
	}

	site, err := svc.Merge(context.Background(), "site-01", map[string]any{
		"name":     "new",
		"priority": float64(3),
		"tags":     []any{"water", "critical"},
	})

	is.NoErr(err)
	is.Equal("new", site.Name)
	is.Equal(3, site.Priority)
	is.Equal([]string{"water", "critical"}, site.Tags)
	is.Equal(1, len(store.UpdateSiteCalls()))
}

func testSetup() (SiteService, *SiteStorageMock, *messaging.MsgContextMock) {
	store := &SiteStorageMock{
		AddSiteFunc: func(ctx context.Context, site types.Site) error {
			return nil
		},
		UpdateSiteFunc: func(ctx context.Context, site types.Site) error {
			return nil
		},
		DeleteSiteFunc: func(ctx context.Context, siteID string) error {
			return nil
		},
	}
	msgCtx := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	return New(store, msgCtx), store, msgCtx
}
