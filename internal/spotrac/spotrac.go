package spotrac

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://www.spotrac.com"

	// Spotrac throttles scrapers aggressively
	requestsPerSecond = 1
	requestBurst      = 3

	breakerFailures = 3
	breakerCooldown = 2 * time.Minute
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
}

func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "spotrac",
			Timeout: breakerCooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breakerFailures
			},
		}),
	}
}

// Search looks up players by name. Spotrac redirects straight to the player
// page when the query is unambiguous.
func (c *Client) Search(ctx context.Context, query string) (*SearchResult, error) {
	searchURL := fmt.Sprintf("%s/search?q=%s", c.baseURL, url.QueryEscape(query))

	resp, err := c.get(ctx, searchURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	finalURL := resp.Request.URL.String()
	if strings.Contains(finalURL, "/player/") && !strings.Contains(finalURL, "/search") {
		parts := strings.Split(strings.TrimRight(finalURL, "/"), "/")
		name := strings.Title(strings.ReplaceAll(parts[len(parts)-1], "-", " "))
		return &SearchResult{
			Type: "single",
			PlayerResults: []PlayerSearchResult{
				{Name: name, URL: finalURL, ID: playerIDFromURL(finalURL)},
			},
		}, nil
	}

	return ParseSearchResults(resp.Body)
}

// GetPlayerContract fetches and parses a player's contract page
func (c *Client) GetPlayerContract(ctx context.Context, playerURL string) (*ContractInfo, error) {
	if strings.HasPrefix(playerURL, "/") {
		playerURL = c.baseURL + playerURL
	}

	resp, err := c.get(ctx, playerURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return ParseContractInfo(resp.Body)
}

// get fetches a page through the rate limiter and circuit breaker
func (c *Client) get(ctx context.Context, target string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.do(ctx, target)
	})
	if err != nil {
		return nil, err
	}
	return result.(*http.Response), nil
}

func (c *Client) do(ctx context.Context, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/137.0.0.0 Safari/537.36")
}
