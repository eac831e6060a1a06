package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"spacesync-backend/config"
)

// apiResponse is the advice service's response envelope.
type apiResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    Advice `json:"data"`
}

// HTTPSuggester posts snapshots to the configured advice endpoint.
type HTTPSuggester struct {
	cfg    config.SuggestConfig
	client *http.Client
}

// NewHTTPSuggester creates a client for the configured advice service.
func NewHTTPSuggester(cfg config.SuggestConfig) *HTTPSuggester {
	return &HTTPSuggester{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Suggest sends the snapshot and decodes the ranked suggestions.
func (s *HTTPSuggester) Suggest(ctx context.Context, snapshot Snapshot) (*Advice, error) {
	jsonBody, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range s.cfg.Headers {
		req.Header.Set(key, value)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal advice response: %w", err)
	}

	if apiResp.Code != 0 {
		return nil, fmt.Errorf("advice service returned non-zero application code: %d (%s)", apiResp.Code, apiResp.Message)
	}

	return &apiResp.Data, nil
}

// StubSuggester is a deterministic Suggester for tests and local
// development: it proposes swapping the two desks of the lowest-scoring
// pair.
type StubSuggester struct{}

// Suggest implements Suggester without calling out anywhere.
func (StubSuggester) Suggest(_ context.Context, snapshot Snapshot) (*Advice, error) {
	advice := &Advice{Assessment: "No scored pairs; nothing to improve."}
	if len(snapshot.Pairs) == 0 {
		return advice, nil
	}

	worst := snapshot.Pairs[0]
	for _, p := range snapshot.Pairs[1:] {
		if p.Overall < worst.Overall {
			worst = p
		}
	}

	advice.Assessment = fmt.Sprintf("Global average %.1f; the weakest neighbouring pair scores %d.", snapshot.GlobalAverage, worst.Overall)
	advice.Suggestions = []Suggestion{{
		PersonA:             worst.PersonA,
		DeskA:               worst.DeskA,
		PersonB:             worst.PersonB,
		DeskB:               worst.DeskB,
		Reason:              "Lowest-scoring adjacent pair on the floor.",
		ExpectedImprovement: float64(100-worst.Overall) / 10,
	}}
	return advice, nil
}
