package clip

// Device is a physical product exposing one or more services.
type Device struct {
	ID          string         `json:"id"`
	IDv1        string         `json:"id_v1,omitempty"`
	ProductData *ProductData   `json:"product_data,omitempty"`
	Metadata    DeviceMetadata `json:"metadata"`
	Services    []ResourceRef  `json:"services,omitempty"`
}

func (d Device) Ref() ResourceRef {
	return ResourceRef{ID: d.ID, Type: RTypeDevice}
}

func (d Device) Name() string { return d.Metadata.Name }

// Service returns the device's service ref of the given kind, if present.
func (d Device) Service(rt ResourceType) (ResourceRef, bool) {
	for _, svc := range d.Services {
		if svc.Type == rt {
			return svc, true
		}
	}
	return ResourceRef{}, false
}

type DeviceMetadata struct {
	Name      string `json:"name"`
	Archetype string `json:"archetype,omitempty"`
}

type ProductData struct {
	ModelID          string `json:"model_id,omitempty"`
	ManufacturerName string `json:"manufacturer_name,omitempty"`
	ProductName      string `json:"product_name,omitempty"`
	ProductArchetype string `json:"product_archetype,omitempty"`
	Certified        bool   `json:"certified,omitempty"`
	SoftwareVersion  string `json:"software_version,omitempty"`
}

type DevicePower struct {
	ID         string       `json:"id"`
	Owner      *ResourceRef `json:"owner,omitempty"`
	PowerState *PowerState  `json:"power_state,omitempty"`
}

type PowerState struct {
	BatteryState string `json:"battery_state,omitempty"`
	BatteryLevel int    `json:"battery_level,omitempty"`
}

type DeviceSoftwareUpdate struct {
	ID    string       `json:"id"`
	Owner *ResourceRef `json:"owner,omitempty"`
	State string       `json:"state,omitempty"`
}

type ZigbeeConnectivity struct {
	ID         string       `json:"id"`
	Owner      *ResourceRef `json:"owner,omitempty"`
	Status     string       `json:"status,omitempty"`
	MacAddress string       `json:"mac_address,omitempty"`
}

type ZGPConnectivity struct {
	ID       string       `json:"id"`
	Owner    *ResourceRef `json:"owner,omitempty"`
	Status   string       `json:"status,omitempty"`
	SourceID string       `json:"source_id,omitempty"`
}

type ZigbeeDeviceDiscovery struct {
	ID     string       `json:"id"`
	Owner  *ResourceRef `json:"owner,omitempty"`
	Status string       `json:"status,omitempty"`
}
