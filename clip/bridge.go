package clip

import "encoding/json"

// BridgeData is the bridge's own resource entry. There is exactly one per
// bridge, so the cache keeps it in a singleton slot rather than a map.
type BridgeData struct {
	ID       string       `json:"id"`
	IDv1     string       `json:"id_v1,omitempty"`
	Owner    *ResourceRef `json:"owner,omitempty"`
	BridgeID string       `json:"bridge_id"`
	TimeZone *TimeZone    `json:"time_zone,omitempty"`
}

type TimeZone struct {
	TimeZone string `json:"time_zone"`
}

type HomeKit struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}

type Matter struct {
	ID         string `json:"id"`
	HasQRCode  bool   `json:"has_qr_code,omitempty"`
	MaxFabrics int    `json:"max_fabrics,omitempty"`
}

type MatterFabric struct {
	ID         string            `json:"id"`
	Status     string            `json:"status,omitempty"`
	FabricData *MatterFabricData `json:"fabric_data,omitempty"`
}

type MatterFabricData struct {
	Label     string `json:"label,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type Geolocation struct {
	ID           string `json:"id"`
	IsConfigured bool   `json:"is_configured"`
}

type GeofenceClient struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// BehaviorScript is a bridge-side automation script definition; instances of
// it are configured as BehaviorInstance resources.
type BehaviorScript struct {
	ID          string          `json:"id"`
	Description string          `json:"description,omitempty"`
	Metadata    *ScriptMetadata `json:"metadata,omitempty"`
	Version     string          `json:"version,omitempty"`
}

type ScriptMetadata struct {
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
}

type BehaviorInstance struct {
	ID            string          `json:"id"`
	ScriptID      string          `json:"script_id"`
	Enabled       bool            `json:"enabled"`
	Status        string          `json:"status,omitempty"`
	Configuration json.RawMessage `json:"configuration,omitempty"`
	Metadata      *ScriptMetadata `json:"metadata,omitempty"`
}

type Entertainment struct {
	ID       string       `json:"id"`
	Owner    *ResourceRef `json:"owner,omitempty"`
	Renderer bool         `json:"renderer"`
	Proxy    bool         `json:"proxy"`
}

type EntertainmentConfiguration struct {
	ID                string        `json:"id"`
	Metadata          SceneMetadata `json:"metadata"`
	ConfigurationType string        `json:"configuration_type,omitempty"`
	Status            string        `json:"status,omitempty"`
	ActiveStreamer    *ResourceRef  `json:"active_streamer,omitempty"`
}
