package sensors

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

var ErrSensorNotFound = fmt.Errorf("sensor not found")

//go:generate moq -rm -out sensorsvc_mock.go . SensorService
type SensorService interface {
	Create(ctx context.Context, sensor types.Sensor) (types.Sensor, error)
	Query(ctx context.Context, filter types.SensorFilter) ([]types.Sensor, error)
	GetByID(ctx context.Context, sensorID string) (types.Sensor, error)
	Update(ctx context.Context, sensor types.Sensor) error
	Merge(ctx context.Context, sensorID string, fields map[string]any) (types.Sensor, error)
	Delete(ctx context.Context, sensorID string) error
}

//go:generate moq -rm -out sensorstorage_mock.go . SensorStorage
type SensorStorage interface {
	AddSensor(ctx context.Context, sensor types.Sensor) error
	UpdateSensor(ctx context.Context, sensor types.Sensor) error
	GetSensor(ctx context.Context, conditions ...storage.ConditionFunc) (types.Sensor, error)
	QuerySensors(ctx context.Context, conditions ...storage.ConditionFunc) ([]types.Sensor, error)
	DeleteSensor(ctx context.Context, sensorID string) error
}

type sensorSvc struct {
	storage   SensorStorage
	messenger messaging.MsgContext
}

func New(s SensorStorage, m messaging.MsgContext) SensorService {
	return &sensorSvc{
		storage:   s,
		messenger: m,
	}
}

func (svc *sensorSvc) Create(ctx context.Context, sensor types.Sensor) (types.Sensor, error) {
	sensor.ID = uuid.NewString()

	err := svc.storage.AddSensor(ctx, sensor)
	if err != nil {
		return types.Sensor{}, err
	}

	err = svc.messenger.PublishOnTopic(ctx, &types.SensorCreated{
		Sensor:    sensor,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		logging.GetFromContext(ctx).Error("could not publish sensor.created", "sensor_id", sensor.ID, "err", err.Error())
	}

	return sensor, nil
}

func (svc *sensorSvc) Query(ctx context.Context, filter types.SensorFilter) ([]types.Sensor, error) {
	conditions := make([]storage.ConditionFunc, 0)

	if filter.SiteID != "" {
		conditions = append(conditions, storage.WithSiteID(filter.SiteID))
	}
	if filter.Name != "" {
		conditions = append(conditions, storage.WithName(filter.Name))
	}
	if filter.MinSafe != nil {
		conditions = append(conditions, storage.WithMinSafe(*filter.MinSafe))
	}
	if filter.MaxSafe != nil {
		conditions = append(conditions, storage.WithMaxSafe(*filter.MaxSafe))
	}
	if filter.Skip > 0 {
		conditions = append(conditions, storage.WithOffset(filter.Skip))
	}
	if filter.Limit > 0 {
		conditions = append(conditions, storage.WithLimit(filter.Limit))
	}

	return svc.storage.QuerySensors(ctx, conditions...)
}

func (svc *sensorSvc) GetByID(ctx context.Context, sensorID string) (types.Sensor, error) {
	sensor, err := svc.storage.GetSensor(ctx, storage.WithID(sensorID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Sensor{}, ErrSensorNotFound
		}
		return types.Sensor{}, err
	}

	return sensor, nil
}

func (svc *sensorSvc) Update(ctx context.Context, sensor types.Sensor) error {
	err := svc.storage.UpdateSensor(ctx, sensor)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrSensorNotFound
		}
		return err
	}

	err = svc.messenger.PublishOnTopic(ctx, &types.SensorUpdated{
		Sensor:    sensor,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		logging.GetFromContext(ctx).Error("could not publish sensor.updated", "sensor_id", sensor.ID, "err", err.Error())
	}

	return nil
}

func (svc *sensorSvc) Merge(ctx context.Context, sensorID string, fields map[string]any) (types.Sensor, error) {
	log := logging.GetFromContext(ctx)

	sensor, err := svc.GetByID(ctx, sensorID)
	if err != nil {
		return types.Sensor{}, err
	}

	for k, v := range fields {
		switch k {
		case "id":
			continue
		case "siteId":
			s, ok := v.(string)
			if ok {
				sensor.SiteID = s
			}
		case "name":
			s, ok := v.(string)
			if ok {
				sensor.Name = s
			}
		case "unit":
			s, ok := v.(string)
			if ok {
				sensor.Unit = s
			}
		case "minSafe":
			f, ok := v.(float64)
			if ok {
				sensor.MinSafe = f
			}
		case "maxSafe":
			f, ok := v.(float64)
			if ok {
				sensor.MaxSafe = f
			}
		default:
			log.Debug("field not mapped for merge", "sensor_id", sensorID, "name", k)
		}
	}

	err = svc.Update(ctx, sensor)
	if err != nil {
		return types.Sensor{}, err
	}

	return sensor, nil
}

func (svc *sensorSvc) Delete(ctx context.Context, sensorID string) error {
	err := svc.storage.DeleteSensor(ctx, sensorID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrSensorNotFound
		}
		return err
	}

	err = svc.messenger.PublishOnTopic(ctx, &types.SensorDeleted{
		SensorID:  sensorID,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		logging.GetFromContext(ctx).Error("could not publish sensor.deleted", "sensor_id", sensorID, "err", err.Error())
	}

	return nil
}
