// Package simulation talks to the external discrete-event simulation engine.
package simulation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/logging"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
)

// EngineClient handles communication with the simulation engine. It never
// retries; outbound calls are paced by a limiter.
type EngineClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewEngineClient creates a client. rps <= 0 disables pacing.
func NewEngineClient(baseURL string, timeout time.Duration, rps float64) *EngineClient {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	limit := rate.Inf
	burst := 1
	if rps > 0 {
		limit = rate.Limit(rps)
		burst = max(1, int(rps))
	}
	return &EngineClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, burst),
	}
}

// BuildRequest maps a graph to the engine's request shape.
func BuildRequest(g domain.Graph, horizonDays int) RunRequest {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	req := RunRequest{
		Nodes:   make([]WireNode, 0, len(g.Nodes)),
		Links:   make([]WireLink, 0, len(g.Edges)),
		Demands: append([]domain.Demand{}, g.Demands...),
		SimTime: horizonDays,
	}
	for _, n := range g.Nodes {
		req.Nodes = append(req.Nodes, WireNode{
			ID: n.ID,
			Data: WireNodeData{
				Label:      n.Label,
				NodeType:   string(n.Role),
				Parameters: n.Parameters.Clone(),
			},
		})
	}
	for _, e := range g.Edges {
		req.Links = append(req.Links, WireLink{ID: e.ID, Source: e.Source, Target: e.Target, Data: e.Parameters})
	}
	return req
}

// Run posts the graph to {baseURL}/simulate. Every error is a *Failure.
func (c *EngineClient) Run(ctx context.Context, g domain.Graph, horizonDays int) (*Result, error) {
	log := logging.New(ctx)
	reqBody := BuildRequest(g, horizonDays)

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, engineFailure("failed to marshal request", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, transportFailure(fmt.Errorf("rate limiter: %w", err))
	}

	url := fmt.Sprintf("%s/simulate", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, transportFailure(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("simulation.run", err)
		return nil, transportFailure(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportFailure(fmt.Errorf("failed to read response: %w", err))
	}
	log.Infof("simulation.run", "status=%d nodes=%d links=%d sim_time=%d latency=%s",
		resp.StatusCode, len(reqBody.Nodes), len(reqBody.Links), reqBody.SimTime, time.Since(start))

	var decoded runResponse
	decodeErr := json.Unmarshal(body, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := fmt.Sprintf("status %d", resp.StatusCode)
		if msg := failureMessage(decoded); decodeErr == nil && msg != "" {
			detail = msg
		} else if s := strings.TrimSpace(string(body)); s != "" {
			detail = fmt.Sprintf("status %d: %s", resp.StatusCode, s)
		}
		return nil, engineFailure(detail, nil)
	}
	if decodeErr != nil {
		return nil, engineFailure("malformed response", decodeErr)
	}
	if !decoded.Success {
		msg := failureMessage(decoded)
		if msg == "" {
			msg = "unknown error"
		}
		return nil, engineFailure(msg, nil)
	}

	res := &Result{
		HorizonDays:   reqBody.SimTime,
		InventoryData: decoded.InventoryData,
		Raw:           json.RawMessage(body),
	}
	if decoded.Metrics != nil {
		res.Metrics = *decoded.Metrics
	}
	if res.InventoryData == nil {
		res.InventoryData = map[string]Series{}
	}
	return res, nil
}

// failureMessage prefers the engine's error field, then a string detail
// (the engine's framework wraps exceptions as {"detail": "..."}).
func failureMessage(r runResponse) string {
	if r.Error != "" {
		return r.Error
	}
	if len(r.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(r.Detail, &s); err == nil {
		return s
	}
	return string(r.Detail)
}
