package rewards

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Sumantkumarraj20/KLD/internal/logger"
)

// Client talks to the family rewards service that keeps the kids'
// point balances.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.Default().WithPrefix("rewards"),
	}
}

type awardRequest struct {
	KidID  string `json:"kid_id"`
	Points int    `json:"points"`
	Reason string `json:"reason"`
}

type awardResponse struct {
	Balance int `json:"balance"`
}

type balanceResponse struct {
	KidID   string `json:"kid_id"`
	Balance int    `json:"balance"`
}

// AwardPoints credits points to a kid's reward balance and returns the
// new balance.
func (c *Client) AwardPoints(ctx context.Context, kidID string, points int, reason string) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("rewards").WithField("kid_id", kidID)
	url := fmt.Sprintf("%s/points/award", c.baseURL)

	log.Debug("awarding %d points: %s", points, reason)
	start := time.Now()

	payload, err := json.Marshal(awardRequest{KidID: kidID, Points: points, Reason: reason})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		log.Error("failed to create request: %v", err)
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("failed to award points: %v", err)
		return 0, err
	}
	defer resp.Body.Close()

	log.Debug("award response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("award request failed: status=%d, body=%s", resp.StatusCode, string(body))
		return 0, fmt.Errorf("award status %d: %s", resp.StatusCode, string(body))
	}

	var out awardResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Error("failed to decode award response: %v", err)
		return 0, err
	}

	log.Info("awarded %d points to kid %s, balance now %d", points, kidID, out.Balance)
	return out.Balance, nil
}

// Balance fetches a kid's current reward balance.
func (c *Client) Balance(ctx context.Context, kidID string) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("rewards").WithField("kid_id", kidID)
	url := fmt.Sprintf("%s/points/%s", c.baseURL, kidID)

	log.Debug("fetching balance")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("failed to create request: %v", err)
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("failed to fetch balance: %v", err)
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("balance request failed: status=%d, body=%s", resp.StatusCode, string(body))
		return 0, fmt.Errorf("balance status %d: %s", resp.StatusCode, string(body))
	}

	var out balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Error("failed to decode balance response: %v", err)
		return 0, err
	}
	return out.Balance, nil
}
