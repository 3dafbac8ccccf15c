package types

import "time"

type SiteCreated struct {
	Site      Site      `json:"site"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *SiteCreated) ContentType() string {
	return "application/json"
}
func (s *SiteCreated) TopicName() string {
	return "site.created"
}

type SiteUpdated struct {
	Site      Site      `json:"site"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *SiteUpdated) ContentType() string {
	return "application/json"
}
func (s *SiteUpdated) TopicName() string {
	return "site.updated"
}

type SiteDeleted struct {
	SiteID    string    `json:"siteId"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *SiteDeleted) ContentType() string {
	return "application/json"
}
func (s *SiteDeleted) TopicName() string {
	return "site.deleted"
}

type SensorCreated struct {
	Sensor    Sensor    `json:"sensor"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *SensorCreated) ContentType() string {
	return "application/json"
}
func (s *SensorCreated) TopicName() string {
	return "sensor.created"
}

type SensorUpdated struct {
	Sensor    Sensor    `json:"sensor"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *SensorUpdated) ContentType() string {
	return "application/json"
}
func (s *SensorUpdated) TopicName() string {
	return "sensor.updated"
}

type SensorDeleted struct {
	SensorID  string    `json:"sensorId"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *SensorDeleted) ContentType() string {
	return "application/json"
}
func (s *SensorDeleted) TopicName() string {
	return "sensor.deleted"
}

type SwitchStateChanged struct {
	SwitchID  string    `json:"switchId"`
	State     string    `json:"state"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *SwitchStateChanged) ContentType() string {
	return "application/json"
}
func (s *SwitchStateChanged) TopicName() string {
	return "switch.stateChanged"
}

type AssetCreated struct {
	Asset     Asset     `json:"asset"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AssetCreated) ContentType() string {
	return "application/json"
}
func (a *AssetCreated) TopicName() string {
	return "asset.created"
}

type AssetDeleted struct {
	AssetID   string    `json:"assetId"`
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AssetDeleted) ContentType() string {
	return "application/json"
}
func (a *AssetDeleted) TopicName() string {
	return "asset.deleted"
}
