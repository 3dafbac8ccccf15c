package switches

import (
	"context"
	"errors"
	"testing"

	"github.com/diwise/iot-facility-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestInstallDefaultsToFirstDeclaredState(t *testing.T) {
	is := is.New(t)
	svc, store, _ := testSetup()

	sw, err := svc.Install(context.Background(), types.Switch{
		SiteID: "site-01",
		Name:   "main valve",
		States: []string{"open", "closed"},
	})

	is.NoErr(err)
	is.True(sw.ID != "")
	is.Equal("open", sw.State)
	is.Equal(1, len(store.AddSwitchCalls()))
}

func TestInstallRequiresDeclaredStates(t *testing.T) {
	is := is.New(t)
	svc, _, _ := testSetup()

	_, err := svc.Install(context.Background(), types.Switch{SiteID: "site-01", Name: "main valve"})

	is.True(err != nil)
}

func TestSetStateRejectsUndeclaredState(t *testing.T) {
	is := is.New(t)
	svc, store, msgCtx := testSetup()

	store.GetSwitchFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Switch, error) {
		return types.Switch{ID: "switch-01", States: []string{"open", "closed"}}, nil
	}

	err := svc.SetState(context.Background(), "switch-01", "halfway")

	is.True(errors.Is(err, ErrInvalidState))
	is.Equal(0, len(store.SetSwitchStateCalls()))
	is.Equal(0, len(msgCtx.PublishOnTopicCalls()))
}

func TestSetStatePublishesStateChangedEvent(t *testing.T) {
	is := is.New(t)
	svc, store, msgCtx := testSetup()

	store.GetSwitchFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Switch, error) {
		return types.Switch{ID: "switch-01", State: "open", States: []string{"open", "closed"}}, nil
	}

	err := svc.SetState(context.Background(), "switch-01", "closed")

	is.NoErr(err)
	is.Equal(1, len(store.SetSwitchStateCalls()))
	is.Equal(1, len(msgCtx.PublishOnTopicCalls()))
	is.Equal("switch.stateChanged", msgCtx.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestRemoveMapsNoRowsToNotFound(t *testing.T) {
	is := is.New(t)
	svc, store, _ := testSetup()

	store.DeleteSwitchFunc = func(ctx context.Context, switchID string) error {
		return storage.ErrNoRows
	}

	err := svc.Remove(context.Background(), "nosuchswitch")

	is.True(errors.Is(err, ErrSwitchNotFound))
}

func testSetup() (SwitchService, *SwitchStorageMock, *messaging.MsgContextMock) {
	store := &SwitchStorageMock{
		AddSwitchFunc: func(ctx context.Context, sw types.Switch) error {
			return nil
		},
		SetSwitchStateFunc: func(ctx context.Context, switchID, state string) error {
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
