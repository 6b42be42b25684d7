package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// client wraps a resty client preconfigured with the headers the mock
// expects on every call.
type client struct {
	http *resty.Client
}

func newClient(baseURL, conversation string) *client {
	if conversation == "" {
		conversation = "ibectl-" + uuid.NewString()[:8]
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Conversation", conversation).
		SetHeader("X-Application", "IBE").
		SetHeader("X-Flow", "revenue").
		SetTimeout(30 * time.Second)
	return &client{http: c}
}

func (c *client) do(method, path string, body any) ([]byte, error) {
	req := c.http.R()
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("http %d on %s %s: %s", resp.StatusCode(), method, path, resp.String())
	}
	return resp.Body(), nil
}

func (c *client) doJSON(method, path string, body any) (map[string]any, error) {
	data, err := c.do(method, path, body)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	if errObj, ok := out["error"].(map[string]any); ok {
		return nil, fmt.Errorf("%v: %v", errObj["code"], errObj["message"])
	}
	return out, nil
}

func (c *client) search(origin, destination, date string) ([]byte, error) {
	return c.do("POST", "/api/v1/flights/search", map[string]any{
		"searchParams": map[string]any{
			"routes": []map[string]any{
				{"origin": origin, "destination": destination, "departureDate": date},
			},
		},
	})
}
