package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ClientConfig represents the configuration for the catalog API client.
type ClientConfig struct {
	APIURL      string
	AccessToken string        // optional; sent as a Bearer token when set
	PageLimit   int           // Default: 100
	Timeout     time.Duration // Default: 30 seconds
}

// Client is a product catalog API client.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	pageLimit   int
}

// NewClient creates a new catalog API client.
func NewClient(config ClientConfig) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	pageLimit := config.PageLimit
	if pageLimit <= 0 {
		pageLimit = 100
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     config.APIURL,
		accessToken: config.AccessToken,
		pageLimit:   pageLimit,
	}
}

// ListProducts fetches one page of products.
func (c *Client) ListProducts(limit, skip int) (*ProductsResponse, error) {
	endpoint := fmt.Sprintf("%s/products", c.baseURL)

	queryParams := url.Values{}
	queryParams.Set("limit", fmt.Sprintf("%d", limit))
	queryParams.Set("skip", fmt.Sprintf("%d", skip))

	req, err := http.NewRequest("GET", fmt.Sprintf("%s?%s", endpoint, queryParams.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.accessToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var productsResp ProductsResponse
	if err := json.NewDecoder(resp.Body).Decode(&productsResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &productsResp, nil
}

// FetchAllProducts fetches the full catalog with pagination.
func (c *Client) FetchAllProducts() ([]Product, error) {
	var allProducts []Product
	skip := 0

	for {
		resp, err := c.ListProducts(c.pageLimit, skip)
		if err != nil {
			return nil, fmt.Errorf("failed to list products (skip=%d): %w", skip, err)
		}

		if len(resp.Products) == 0 {
			break
		}

		allProducts = append(allProducts, resp.Products...)

		if len(resp.Products) < c.pageLimit {
			break
		}
		if resp.Total > 0 && len(allProducts) >= resp.Total {
			break
		}

		skip += c.pageLimit
	}

	return allProducts, nil
}

// parseError parses an error response from the catalog API.
func (c *Client) parseError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("catalog API error (status %d): failed to read error response", resp.StatusCode)
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Message == "" {
		return fmt.Errorf("catalog API error (status %d): %s", resp.StatusCode, string(body))
	}

	return fmt.Errorf("catalog API error: %s", errResp.Message)
}
