package mirror

import "github.com/nvasilev/huemirror/clip"

// Per-kind cache reads. Each kind gets a get-by-id, a list, and a count;
// all of them serve from the local cache and never touch the network.

func (c *Client) Light(id string) (clip.Light, bool) {
	return getOne[clip.Light](c.cache, clip.RTypeLight, id)
}

func (c *Client) Lights() []clip.Light {
	return listAll[clip.Light](c.cache, clip.RTypeLight)
}

func (c *Client) NumLights() int { return c.cache.countKind(clip.RTypeLight) }

func (c *Client) Scene(id string) (clip.Scene, bool) {
	return getOne[clip.Scene](c.cache, clip.RTypeScene, id)
}

func (c *Client) Scenes() []clip.Scene {
	return listAll[clip.Scene](c.cache, clip.RTypeScene)
}

func (c *Client) NumScenes() int { return c.cache.countKind(clip.RTypeScene) }

func (c *Client) SmartScene(id string) (clip.SmartScene, bool) {
	return getOne[clip.SmartScene](c.cache, clip.RTypeSmartScene, id)
}

func (c *Client) SmartScenes() []clip.SmartScene {
	return listAll[clip.SmartScene](c.cache, clip.RTypeSmartScene)
}

func (c *Client) NumSmartScenes() int { return c.cache.countKind(clip.RTypeSmartScene) }

func (c *Client) Room(id string) (clip.Room, bool) {
	return getOne[clip.Room](c.cache, clip.RTypeRoom, id)
}

func (c *Client) Rooms() []clip.Room {
	return listAll[clip.Room](c.cache, clip.RTypeRoom)
}

func (c *Client) NumRooms() int { return c.cache.countKind(clip.RTypeRoom) }

func (c *Client) Zone(id string) (clip.Zone, bool) {
	return getOne[clip.Zone](c.cache, clip.RTypeZone, id)
}

func (c *Client) Zones() []clip.Zone {
	return listAll[clip.Zone](c.cache, clip.RTypeZone)
}

func (c *Client) NumZones() int { return c.cache.countKind(clip.RTypeZone) }

func (c *Client) GroupedLight(id string) (clip.GroupedLight, bool) {
	return getOne[clip.GroupedLight](c.cache, clip.RTypeGroupedLight, id)
}

func (c *Client) GroupedLights() []clip.GroupedLight {
	return listAll[clip.GroupedLight](c.cache, clip.RTypeGroupedLight)
}

func (c *Client) NumGroupedLights() int { return c.cache.countKind(clip.RTypeGroupedLight) }

func (c *Client) BridgeHome(id string) (clip.BridgeHome, bool) {
	return getOne[clip.BridgeHome](c.cache, clip.RTypeBridgeHome, id)
}

func (c *Client) BridgeHomes() []clip.BridgeHome {
	return listAll[clip.BridgeHome](c.cache, clip.RTypeBridgeHome)
}

func (c *Client) Device(id string) (clip.Device, bool) {
	return getOne[clip.Device](c.cache, clip.RTypeDevice, id)
}

func (c *Client) Devices() []clip.Device {
	return listAll[clip.Device](c.cache, clip.RTypeDevice)
}

func (c *Client) NumDevices() int { return c.cache.countKind(clip.RTypeDevice) }

func (c *Client) DevicePower(id string) (clip.DevicePower, bool) {
	return getOne[clip.DevicePower](c.cache, clip.RTypeDevicePower, id)
}

func (c *Client) DevicePowers() []clip.DevicePower {
	return listAll[clip.DevicePower](c.cache, clip.RTypeDevicePower)
}

func (c *Client) DeviceSoftwareUpdate(id string) (clip.DeviceSoftwareUpdate, bool) {
	return getOne[clip.DeviceSoftwareUpdate](c.cache, clip.RTypeDeviceSoftwareUpdate, id)
}

func (c *Client) DeviceSoftwareUpdates() []clip.DeviceSoftwareUpdate {
	return listAll[clip.DeviceSoftwareUpdate](c.cache, clip.RTypeDeviceSoftwareUpdate)
}

func (c *Client) Button(id string) (clip.Button, bool) {
	return getOne[clip.Button](c.cache, clip.RTypeButton, id)
}

func (c *Client) Buttons() []clip.Button {
	return listAll[clip.Button](c.cache, clip.RTypeButton)
}

func (c *Client) NumButtons() int { return c.cache.countKind(clip.RTypeButton) }

func (c *Client) RelativeRotary(id string) (clip.RelativeRotary, bool) {
	return getOne[clip.RelativeRotary](c.cache, clip.RTypeRelativeRotary, id)
}

func (c *Client) RelativeRotaries() []clip.RelativeRotary {
	return listAll[clip.RelativeRotary](c.cache, clip.RTypeRelativeRotary)
}

func (c *Client) Motion(id string) (clip.Motion, bool) {
	return getOne[clip.Motion](c.cache, clip.RTypeMotion, id)
}

func (c *Client) Motions() []clip.Motion {
	return listAll[clip.Motion](c.cache, clip.RTypeMotion)
}

func (c *Client) NumMotions() int { return c.cache.countKind(clip.RTypeMotion) }

func (c *Client) CameraMotion(id string) (clip.CameraMotion, bool) {
	return getOne[clip.CameraMotion](c.cache, clip.RTypeCameraMotion, id)
}

func (c *Client) CameraMotions() []clip.CameraMotion {
	return listAll[clip.CameraMotion](c.cache, clip.RTypeCameraMotion)
}

func (c *Client) Contact(id string) (clip.Contact, bool) {
	return getOne[clip.Contact](c.cache, clip.RTypeContact, id)
}

func (c *Client) Contacts() []clip.Contact {
	return listAll[clip.Contact](c.cache, clip.RTypeContact)
}

func (c *Client) Tamper(id string) (clip.Tamper, bool) {
	return getOne[clip.Tamper](c.cache, clip.RTypeTamper, id)
}

func (c *Client) Tampers() []clip.Tamper {
	return listAll[clip.Tamper](c.cache, clip.RTypeTamper)
}

func (c *Client) Temperature(id string) (clip.Temperature, bool) {
	return getOne[clip.Temperature](c.cache, clip.RTypeTemperature, id)
}

func (c *Client) Temperatures() []clip.Temperature {
	return listAll[clip.Temperature](c.cache, clip.RTypeTemperature)
}

func (c *Client) LightLevel(id string) (clip.LightLevel, bool) {
	return getOne[clip.LightLevel](c.cache, clip.RTypeLightLevel, id)
}

func (c *Client) LightLevels() []clip.LightLevel {
	return listAll[clip.LightLevel](c.cache, clip.RTypeLightLevel)
}

func (c *Client) ZigbeeConnectivity(id string) (clip.ZigbeeConnectivity, bool) {
	return getOne[clip.ZigbeeConnectivity](c.cache, clip.RTypeZigbeeConnectivity, id)
}

func (c *Client) ZigbeeConnectivities() []clip.ZigbeeConnectivity {
	return listAll[clip.ZigbeeConnectivity](c.cache, clip.RTypeZigbeeConnectivity)
}

func (c *Client) ZGPConnectivity(id string) (clip.ZGPConnectivity, bool) {
	return getOne[clip.ZGPConnectivity](c.cache, clip.RTypeZgpConnectivity, id)
}

func (c *Client) ZGPConnectivities() []clip.ZGPConnectivity {
	return listAll[clip.ZGPConnectivity](c.cache, clip.RTypeZgpConnectivity)
}

func (c *Client) ZigbeeDeviceDiscovery(id string) (clip.ZigbeeDeviceDiscovery, bool) {
	return getOne[clip.ZigbeeDeviceDiscovery](c.cache, clip.RTypeZigbeeDeviceDiscovery, id)
}

func (c *Client) ZigbeeDeviceDiscoveries() []clip.ZigbeeDeviceDiscovery {
	return listAll[clip.ZigbeeDeviceDiscovery](c.cache, clip.RTypeZigbeeDeviceDiscovery)
}

func (c *Client) HomeKit(id string) (clip.HomeKit, bool) {
	return getOne[clip.HomeKit](c.cache, clip.RTypeHomekit, id)
}

func (c *Client) HomeKits() []clip.HomeKit {
	return listAll[clip.HomeKit](c.cache, clip.RTypeHomekit)
}

func (c *Client) Matter(id string) (clip.Matter, bool) {
	return getOne[clip.Matter](c.cache, clip.RTypeMatter, id)
}

func (c *Client) Matters() []clip.Matter {
	return listAll[clip.Matter](c.cache, clip.RTypeMatter)
}

func (c *Client) MatterFabric(id string) (clip.MatterFabric, bool) {
	return getOne[clip.MatterFabric](c.cache, clip.RTypeMatterFabric, id)
}

func (c *Client) MatterFabrics() []clip.MatterFabric {
	return listAll[clip.MatterFabric](c.cache, clip.RTypeMatterFabric)
}

func (c *Client) Geolocation(id string) (clip.Geolocation, bool) {
	return getOne[clip.Geolocation](c.cache, clip.RTypeGeolocation, id)
}

func (c *Client) Geolocations() []clip.Geolocation {
	return listAll[clip.Geolocation](c.cache, clip.RTypeGeolocation)
}

func (c *Client) GeofenceClient(id string) (clip.GeofenceClient, bool) {
	return getOne[clip.GeofenceClient](c.cache, clip.RTypeGeofenceClient, id)
}

func (c *Client) GeofenceClients() []clip.GeofenceClient {
	return listAll[clip.GeofenceClient](c.cache, clip.RTypeGeofenceClient)
}

func (c *Client) BehaviorScript(id string) (clip.BehaviorScript, bool) {
	return getOne[clip.BehaviorScript](c.cache, clip.RTypeBehaviorScript, id)
}

func (c *Client) BehaviorScripts() []clip.BehaviorScript {
	return listAll[clip.BehaviorScript](c.cache, clip.RTypeBehaviorScript)
}

func (c *Client) BehaviorInstance(id string) (clip.BehaviorInstance, bool) {
	return getOne[clip.BehaviorInstance](c.cache, clip.RTypeBehaviorInstance, id)
}

func (c *Client) BehaviorInstances() []clip.BehaviorInstance {
	return listAll[clip.BehaviorInstance](c.cache, clip.RTypeBehaviorInstance)
}

func (c *Client) Entertainment(id string) (clip.Entertainment, bool) {
	return getOne[clip.Entertainment](c.cache, clip.RTypeEntertainment, id)
}

func (c *Client) Entertainments() []clip.Entertainment {
	return listAll[clip.Entertainment](c.cache, clip.RTypeEntertainment)
}

func (c *Client) EntertainmentConfiguration(id string) (clip.EntertainmentConfiguration, bool) {
	return getOne[clip.EntertainmentConfiguration](c.cache, clip.RTypeEntertainmentConfiguration, id)
}

func (c *Client) EntertainmentConfigurations() []clip.EntertainmentConfiguration {
	return listAll[clip.EntertainmentConfiguration](c.cache, clip.RTypeEntertainmentConfiguration)
}

// Count reports how many entries of the given kind the cache holds.
func (c *Client) Count(rt clip.ResourceType) int { return c.cache.countKind(rt) }
