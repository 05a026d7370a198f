// Package overpass implements the SpotSource and ShopSource ports
// against the public Overpass OpenStreetMap API.
package overpass

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

const defaultBaseURL = "https://overpass-api.de/api/interpreter"

// Client posts Overpass QL queries and maps the returned elements to
// raw spot records. The client is safe for concurrent use.
type Client struct {
	session *http.Client
	baseURL string
}

func NewClient() *Client {
	return &Client{
		// Overpass evaluates queries server-side; generous timeout.
		session: &http.Client{Timeout: 45 * time.Second},
		baseURL: defaultBaseURL,
	}
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

type element struct {
	Type   string            `json:"type"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

type overpassResponse struct {
	Elements []element `json:"elements"`
}

func (c *Client) newRequest(ctx context.Context, query string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// doWithRetry retries transient failures (network errors, 429, 5xx)
// using exponential backoff while respecting context cancellation.
func (c *Client) doWithRetry(ctx context.Context, query string) (*http.Response, error) {
	const maxAttempts = 4
	backoff := 500 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := c.newRequest(ctx, query)
		if err != nil {
			return nil, err
		}

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case 429, 500, 502, 503, 504:
				retry = true
			}
		}

		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}

		if !retry || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}

// query runs one Overpass QL query and converts usable elements to raw
// spots. Elements without a name tag or without coordinates are dropped
// here so the scoring step only ever sees schedulable candidates.
func (c *Client) query(ctx context.Context, op string, query string) (_ []ports.RawSpot, err error) {
	defer obs.Time(ctx, op)(&err)

	resp, err := c.doWithRetry(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("overpass query: %w", err)
	}
	defer resp.Body.Close()

	var decoded overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode overpass response: %w", err)
	}

	out := make([]ports.RawSpot, 0, len(decoded.Elements))
	for _, el := range decoded.Elements {
		if el.Tags["name"] == "" {
			continue
		}

		lat, lon := el.Lat, el.Lon
		// Ways and relations carry a computed center instead of
		// node coordinates.
		if el.Type != "node" && el.Center != nil {
			lat, lon = el.Center.Lat, el.Center.Lon
		}
		if lat == 0 && lon == 0 {
			continue
		}

		out = append(out, ports.RawSpot{
			Tags:   el.Tags,
			Coords: domain.Coordinates{Lat: lat, Lon: lon},
		})
	}

	return out, nil
}
