package mirror

import "errors"

// ErrNoGroupedLight is returned when a room or zone has no grouped_light
// service to address.
var ErrNoGroupedLight = errors.New("group has no grouped_light service")
