package clip

import "encoding/json"

type ResourceType string

const (
	RTypeDevice                     ResourceType = "device"
	RTypeBridgeHome                 ResourceType = "bridge_home"
	RTypeRoom                       ResourceType = "room"
	RTypeZone                       ResourceType = "zone"
	RTypeLight                      ResourceType = "light"
	RTypeButton                     ResourceType = "button"
	RTypeRelativeRotary             ResourceType = "relative_rotary"
	RTypeTemperature                ResourceType = "temperature"
	RTypeLightLevel                 ResourceType = "light_level"
	RTypeMotion                     ResourceType = "motion"
	RTypeCameraMotion               ResourceType = "camera_motion"
	RTypeContact                    ResourceType = "contact"
	RTypeTamper                     ResourceType = "tamper"
	RTypeEntertainment              ResourceType = "entertainment"
	RTypeGroupedLight               ResourceType = "grouped_light"
	RTypeDevicePower                ResourceType = "device_power"
	RTypeDeviceSoftwareUpdate       ResourceType = "device_software_update"
	RTypeZigbeeBridgeConnectivity   ResourceType = "zigbee_bridge_connectivity"
	RTypeZigbeeConnectivity         ResourceType = "zigbee_connectivity"
	RTypeZgpConnectivity            ResourceType = "zgp_connectivity"
	RTypeBridge                     ResourceType = "bridge"
	RTypeZigbeeDeviceDiscovery      ResourceType = "zigbee_device_discovery"
	RTypeHomekit                    ResourceType = "homekit"
	RTypeMatter                     ResourceType = "matter"
	RTypeMatterFabric               ResourceType = "matter_fabric"
	RTypeScene                      ResourceType = "scene"
	RTypeEntertainmentConfiguration ResourceType = "entertainment_configuration"
	RTypePublicImage                ResourceType = "public_image"
	RTypeAuthV1                     ResourceType = "auth_v1"
	RTypeBehaviorScript             ResourceType = "behavior_script"
	RTypeBehaviorInstance           ResourceType = "behavior_instance"
	RTypeGeofence                   ResourceType = "geofence"
	RTypeGeofenceClient             ResourceType = "geofence_client"
	RTypeGeolocation                ResourceType = "geolocation"
	RTypeSmartScene                 ResourceType = "smart_scene"

	// RTypeUnknown is a catch-all for kinds this client does not model. Wire
	// payloads with unrecognized type tags keep their raw tag in the envelope;
	// consumers treat any unregistered tag the same way.
	RTypeUnknown ResourceType = "unknown"
)

// ResourceRef is an (id, kind) pair: the only information needed to reference
// or delete a resource without knowing its full shape.
type ResourceRef struct {
	ID   string       `json:"rid"`
	Type ResourceType `json:"rtype"`
}

// Resource is one self-describing resource payload as the bridge sends it.
// Data holds the full raw body, including the type and id fields, so the
// payload stays opaque until a consumer decodes it into a typed struct.
type Resource struct {
	Type ResourceType
	ID   string
	Data json.RawMessage
}

func (r *Resource) UnmarshalJSON(data []byte) error {
	var head struct {
		Type ResourceType `json:"type"`
		ID   string       `json:"id"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	r.Type = head.Type
	r.ID = head.ID
	r.Data = append(r.Data[:0], data...)
	return nil
}

func (r Resource) MarshalJSON() ([]byte, error) {
	if len(r.Data) == 0 {
		return []byte("null"), nil
	}
	return r.Data, nil
}

func (r Resource) Ref() ResourceRef {
	return ResourceRef{ID: r.ID, Type: r.Type}
}
