package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bookhaven/bookhaven-golang/internal/models"
)

// Client talks to the Google Books volumes API for book discovery and
// catalog imports. It has no SDK; the API is plain JSON over HTTPS.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a catalog client. baseURL may be overridden for tests.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Volume is one catalog record mapped into our vocabulary.
type Volume struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Authors      []string `json:"authors"`
	Categories   []string `json:"categories"`
	Description  string   `json:"description"`
	ISBN         string   `json:"isbn,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Availability string   `json:"availability"`
}

// Search queries the catalog and returns up to limit volumes.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Volume, error) {
	if limit < 1 || limit > 40 {
		limit = 10
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(limit))
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	var resp searchResponse
	if err := c.getJSON(ctx, c.baseURL+"/volumes?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	volumes := make([]Volume, 0, len(resp.Items))
	for _, item := range resp.Items {
		volumes = append(volumes, item.toVolume())
	}
	return volumes, nil
}

// GetVolume fetches a single catalog record by its volume ID.
func (c *Client) GetVolume(ctx context.Context, id string) (*Volume, error) {
	u := c.baseURL + "/volumes/" + url.PathEscape(id)
	if c.apiKey != "" {
		u += "?key=" + url.QueryEscape(c.apiKey)
	}

	var item volumeItem
	if err := c.getJSON(ctx, u, &item); err != nil {
		return nil, err
	}

	v := item.toVolume()
	return &v, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrVolumeNotFound
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("catalog api error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}
	return nil
}

// ErrVolumeNotFound means the requested catalog volume does not exist.
var ErrVolumeNotFound = fmt.Errorf("catalog volume not found")

type searchResponse struct {
	Items []volumeItem `json:"items"`
}

type volumeItem struct {
	ID         string `json:"id"`
	VolumeInfo struct {
		Title               string   `json:"title"`
		Authors             []string `json:"authors"`
		Categories          []string `json:"categories"`
		Description         string   `json:"description"`
		IndustryIdentifiers []struct {
			Type       string `json:"type"`
			Identifier string `json:"identifier"`
		} `json:"industryIdentifiers"`
	} `json:"volumeInfo"`
	SaleInfo struct {
		Saleability string `json:"saleability"`
		ListPrice   *struct {
			Amount float64 `json:"amount"`
		} `json:"listPrice"`
	} `json:"saleInfo"`
}

func (item volumeItem) toVolume() Volume {
	v := Volume{
		ID:           item.ID,
		Title:        item.VolumeInfo.Title,
		Authors:      item.VolumeInfo.Authors,
		Categories:   item.VolumeInfo.Categories,
		Description:  item.VolumeInfo.Description,
		Availability: mapSaleability(item.SaleInfo.Saleability),
	}
	if v.Authors == nil {
		v.Authors = []string{}
	}
	if v.Categories == nil {
		v.Categories = []string{}
	}
	for _, ident := range item.VolumeInfo.IndustryIdentifiers {
		if ident.Type == "ISBN_13" {
			v.ISBN = ident.Identifier
			break
		}
		if ident.Type == "ISBN_10" && v.ISBN == "" {
			v.ISBN = ident.Identifier
		}
	}
	if item.SaleInfo.ListPrice != nil {
		amount := item.SaleInfo.ListPrice.Amount
		v.Price = &amount
	}
	return v
}

func mapSaleability(s string) string {
	switch s {
	case "FOR_SALE", "FREE":
		return models.AvailabilityAvailable
	case "PREORDER":
		return models.AvailabilityPreOrder
	default:
		return models.AvailabilityOutOfStock
	}
}
