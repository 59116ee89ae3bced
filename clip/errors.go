package clip

import "errors"

// ErrNotFound is returned when a by-id fetch comes back with an empty data
// set.
var ErrNotFound = errors.New("resource not found")

type errorResponse struct {
	Errors []BridgeError `json:"errors"`
}

// BridgeError is an error the bridge itself reported, with a human-readable
// description.
type BridgeError struct {
	Description string `json:"description"`
}

func (e BridgeError) Error() string {
	return e.Description
}

func joinBridgeErrors(bridgeErrors []BridgeError) error {
	errs := make([]error, len(bridgeErrors))
	for i, e := range bridgeErrors {
		errs[i] = e
	}
	return errors.Join(errs...)
}
