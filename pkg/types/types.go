package types

// Site is the top level grouping that sensors, switches and assets
// belong to via their SiteID.
type Site struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Priority int      `json:"priority"`
	Tags     []string `json:"tags"`
}

type Sensor struct {
	ID      string  `json:"id"`
	SiteID  string  `json:"siteId"`
	Name    string  `json:"name"`
	Unit    string  `json:"unit"`
	MinSafe float64 `json:"minSafe"`
	MaxSafe float64 `json:"maxSafe"`
}

type Switch struct {
	ID     string   `json:"id"`
	SiteID string   `json:"siteId"`
	Name   string   `json:"name"`
	State  string   `json:"state"`
	States []string `json:"states"`
}

const (
	AssetKindAlarm  string = "alarm"
	AssetKindCamera string = "camera"
)

// Asset is a tagged union of the two asset kinds. Kind is the
// discriminator and is set by the owning backend, never inferred
// from which optional fields happen to be present.
type Asset struct {
	ID       string `json:"id"`
	SiteID   string `json:"siteId"`
	Kind     string `json:"kind"`
	SerialNo string `json:"serialNo"`

	// Material is only set on alarms, Resolution only on cameras.
	Material   string `json:"material,omitempty"`
	Resolution string `json:"resolution,omitempty"`
}

func (a Asset) IsAlarm() bool {
	return a.Kind == AssetKindAlarm
}

func (a Asset) IsCamera() bool {
	return a.Kind == AssetKindCamera
}

// SiteFilter narrows collection queries. Zero values mean "no
// constraint". Text matches are substring matches, tags is an
// inclusion test.
type SiteFilter struct {
	Name     string
	Location string
	Tags     []string
	Limit    int
	Skip     int
}

type SensorFilter struct {
	SiteID  string
	Name    string
	MinSafe *float64
	MaxSafe *float64
	Limit   int
	Skip    int
}
