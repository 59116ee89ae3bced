package clip

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const discoveryURL = "https://discovery.meethue.com"

// DiscoveredBridge is one entry from the Hue discovery endpoint.
type DiscoveredBridge struct {
	ID                string `json:"id"`
	InternalIPAddress string `json:"internalipaddress"`
	Port              int    `json:"port"`
}

// Discover looks up bridges on the local network via the Hue discovery
// endpoint. The endpoint reports bridges that have phoned home from the same
// public IP as the caller.
func Discover(ctx context.Context) ([]DiscoveredBridge, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, discoveryURL, nil)
	if err != nil {
		return nil, err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discovery endpoint: %s", res.Status)
	}

	var bridges []DiscoveredBridge
	if err := json.NewDecoder(res.Body).Decode(&bridges); err != nil {
		return nil, fmt.Errorf("decode discovery response: %w", err)
	}
	return bridges, nil
}

type registerResponse struct {
	Success *struct {
		Username  string `json:"username"`
		ClientKey string `json:"clientkey"`
	} `json:"success"`
	Error *BridgeError `json:"error"`
}

// AppKey is the credential pair minted by Register. Key authenticates CLIP
// requests; ClientKey is only needed for the entertainment streaming
// transport, which this package does not manage.
type AppKey struct {
	Key       string
	ClientKey string
}

// Register creates a new application key on the bridge. The link button must
// have been pressed within the last 30 seconds, otherwise the bridge rejects
// the request with a "link button not pressed" error.
func (c *Client) Register(ctx context.Context, appName, instanceName string) (AppKey, error) {
	body, err := json.Marshal(map[string]any{
		"devicetype":        fmt.Sprintf("%s#%s", appName, instanceName),
		"generateclientkey": true,
	})
	if err != nil {
		return AppKey{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.absURL("/api"), bytes.NewReader(body))
	if err != nil {
		return AppKey{}, err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return AppKey{}, err
	}
	defer res.Body.Close()

	var replies []registerResponse
	if err := json.NewDecoder(res.Body).Decode(&replies); err != nil {
		return AppKey{}, fmt.Errorf("decode register response: %w", err)
	}
	for _, reply := range replies {
		if reply.Error != nil {
			return AppKey{}, *reply.Error
		}
		if reply.Success != nil {
			return AppKey{Key: reply.Success.Username, ClientKey: reply.Success.ClientKey}, nil
		}
	}
	return AppKey{}, fmt.Errorf("register: empty response")
}
