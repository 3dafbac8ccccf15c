package switches

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/diwise/iot-facility-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

var (
	ErrSwitchNotFound = fmt.Errorf("switch not found")
	ErrInvalidState   = fmt.Errorf("state is not among the declared states of the switch")
)

//go:generate moq -rm -out switchsvc_mock.go . SwitchService
type SwitchService interface {
	Install(ctx context.Context, sw types.Switch) (types.Switch, error)
	Query(ctx context.Context, siteID string) ([]types.Switch, error)
	GetByID(ctx context.Context, switchID string) (types.Switch, error)
	SetState(ctx context.Context, switchID, state string) error
	Remove(ctx context.Context, switchID string) error
}

//go:generate moq -rm -out switchstorage_mock.go . SwitchStorage
type SwitchStorage interface {
	AddSwitch(ctx context.Context, sw types.Switch) error
	GetSwitch(ctx context.Context, conditions ...storage.ConditionFunc) (types.Switch, error)
	QuerySwitches(ctx context.Context, conditions ...storage.ConditionFunc) ([]types.Switch, error)
	SetSwitchState(ctx context.Context, switchID, state string) error
	DeleteSwitch(ctx context.Context, switchID string) error
}

type switchSvc struct {
	storage   SwitchStorage
	messenger messaging.MsgContext
}

func New(s SwitchStorage, m messaging.MsgContext) SwitchService {
	return &switchSvc{
		storage:   s,
		messenger: m,
	}
}

func (svc *switchSvc) Install(ctx context.Context, sw types.Switch) (types.Switch, error) {
	sw.ID = uuid.NewString()

	if len(sw.States) == 0 {
		return types.Switch{}, fmt.Errorf("a switch must declare at least one valid state")
	}

	if sw.State == "" {
		sw.State = sw.States[0]
	}

	if !slices.Contains(sw.States, sw.State) {
		return types.Switch{}, ErrInvalidState
	}

	err := svc.storage.AddSwitch(ctx, sw)
	if err != nil {
		return types.Switch{}, err
	}

	return sw, nil
}

func (svc *switchSvc) Query(ctx context.Context, siteID string) ([]types.Switch, error) {
	conditions := make([]storage.ConditionFunc, 0)

	if siteID != "" {
		conditions = append(conditions, storage.WithSiteID(siteID))
	}

	return svc.storage.QuerySwitches(ctx, conditions...)
}

func (svc *switchSvc) GetByID(ctx context.Context, switchID string) (types.Switch, error) {
	sw, err := svc.storage.GetSwitch(ctx, storage.WithID(switchID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Switch{}, ErrSwitchNotFound
		}
		return types.Switch{}, err
	}

	return sw, nil
}

func (svc *switchSvc) SetState(ctx context.Context, switchID, state string) error {
	sw, err := svc.GetByID(ctx, switchID)
	if err != nil {
		return err
	}

	if !slices.Contains(sw.States, state) {
		return ErrInvalidState
	}

	err = svc.storage.SetSwitchState(ctx, switchID, state)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrSwitchNotFound
		}
		return err
	}

	err = svc.messenger.PublishOnTopic(ctx, &types.SwitchStateChanged{
		SwitchID:  switchID,
		State:     state,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		logging.GetFromContext(ctx).Error("could not publish switch.stateChanged", "switch_id", switchID, "err", err.Error())
	}

	return nil
}

func (svc *switchSvc) Remove(ctx context.Context, switchID string) error {
	err := svc.storage.DeleteSwitch(ctx, switchID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrSwitchNotFound
		}
		return err
	}

	return nil
}
