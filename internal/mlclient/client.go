package mlclient

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// The ML backend is a single-tenant collaborator; keep request pressure low
	rateLimit = 5 // requests per second
	rateBurst = 10

	// Retry configuration for transient failures
	maxRetries   = 3
	initialDelay = 1 * time.Second
)

// Client talks to the external ML backend over HTTP with rate limiting.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewClient creates a new ML backend client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), rateBurst),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Health pings the backend's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ml backend unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ml backend unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

// AnalyzeRecipe requests tags, nutrition and pairing suggestions for a recipe.
func (c *Client) AnalyzeRecipe(ctx context.Context, req *RecipeAnalysisRequest) (*RecipeAnalysisResponse, error) {
	var out RecipeAnalysisResponse
	if err := c.post(ctx, "/recipe_analysis", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeFoodImage sends an encoded image for dish analysis. The response
// shape is provider-defined, so it stays an opaque document.
func (c *Client) AnalyzeFoodImage(ctx context.Context, image string) (map[string]any, error) {
	var out map[string]any
	if err := c.post(ctx, "/recipe_analysis", &ImageAnalysisRequest{Image: image}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecommendRecipes asks for recipe recommendations matching a query.
func (c *Client) RecommendRecipes(ctx context.Context, req *RecipeRecommendationRequest) (map[string]any, error) {
	var out map[string]any
	if err := c.post(ctx, "/recommend", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GenerateMealPlan asks for a generated multi-day meal plan.
func (c *Client) GenerateMealPlan(ctx context.Context, req *MealPlanRequest) (map[string]any, error) {
	var out map[string]any
	if err := c.post(ctx, "/meal_plan", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FlyerDinner asks for a dinner plan built from the products on a grocery
// flyer image.
func (c *Client) FlyerDinner(ctx context.Context, req *FlyerDinnerRequest) (map[string]any, error) {
	var out map[string]any
	if err := c.post(ctx, "/flyer_dinner", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ChatSimple sends a non-streaming chat message.
func (c *Client) ChatSimple(ctx context.Context, req *ChatRequest) (map[string]any, error) {
	var out map[string]any
	if err := c.post(ctx, "/chat/simple", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ChatStream opens the streaming chat endpoint and invokes emit for each
// typed frame. It returns once an end/error frame arrives, the stream
// closes, or the context is cancelled.
func (c *Client) ChatStream(ctx context.Context, req *ChatRequest, emit func(ChatFrame) error) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("chat request failed: status %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// SSE framing prefixes payload lines with "data: "
		line = strings.TrimPrefix(line, "data: ")

		var frame ChatFrame
		if err := json.Unmarshal([]byte(line), &frame); err != nil {
			continue
		}
		if err := emit(frame); err != nil {
			return err
		}
		if frame.Type == FrameEnd || frame.Type == FrameError {
			return nil
		}
	}
	return scanner.Err()
}

// post sends a JSON request with rate limiting and retry on transient errors.
func (c *Client) post(ctx context.Context, path string, reqBody, respBody any) error {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	delay := initialDelay

	for attempt := 0; attempt < maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
		} else {
			data, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()

			switch {
			case readErr != nil:
				lastErr = readErr
			case resp.StatusCode == http.StatusOK:
				if respBody == nil {
					return nil
				}
				if err := json.Unmarshal(data, respBody); err != nil {
					return fmt.Errorf("failed to decode response from %s: %w", path, err)
				}
				return nil
			case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
				lastErr = fmt.Errorf("ml backend returned status %d", resp.StatusCode)
			default:
				// Client errors are not retryable
				return fmt.Errorf("ml backend returned status %d: %s", resp.StatusCode, string(data))
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}

	return fmt.Errorf("request to %s failed after %d attempts: %w", path, maxRetries, lastErr)
}
