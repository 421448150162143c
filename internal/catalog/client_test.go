package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/bookhaven-golang/internal/models"
)

const searchPayload = `{
	"items": [
		{
			"id": "vol-1",
			"volumeInfo": {
				"title": "The Left Hand of Darkness",
				"authors": ["Ursula K. Le Guin"],
				"categories": ["Fiction"],
				"description": "An envoy on a frozen planet.",
				"industryIdentifiers": [
					{"type": "ISBN_10", "identifier": "0441478123"},
					{"type": "ISBN_13", "identifier": "9780441478125"}
				]
			},
			"saleInfo": {
				"saleability": "FOR_SALE",
				"listPrice": {"amount": 14.99}
			}
		},
		{
			"id": "vol-2",
			"volumeInfo": {
				"title": "Upcoming Title"
			},
			"saleInfo": {
				"saleability": "PREORDER"
			}
		}
	]
}`

func TestSearchMapsVolumes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volumes", r.URL.Path)
		assert.Equal(t, "left hand darkness", r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("maxResults"))
		w.Write([]byte(searchPayload))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	volumes, err := client.Search(context.Background(), "left hand darkness", 5)
	require.NoError(t, err)
	require.Len(t, volumes, 2)

	first := volumes[0]
	assert.Equal(t, "vol-1", first.ID)
	assert.Equal(t, "The Left Hand of Darkness", first.Title)
	assert.Equal(t, []string{"Ursula K. Le Guin"}, first.Authors)
	assert.Equal(t, models.AvailabilityAvailable, first.Availability)
	require.NotNil(t, first.Price)
	assert.InDelta(t, 14.99, *first.Price, 0.0001)
	// ISBN_13 wins over ISBN_10.
	assert.Equal(t, "9780441478125", first.ISBN)

	second := volumes[1]
	assert.Equal(t, models.AvailabilityPreOrder, second.Availability)
	assert.Nil(t, second.Price)
	assert.Empty(t, second.ISBN)
	// Missing lists come back as empty slices, not nil, so they serialize as [].
	assert.NotNil(t, second.Authors)
	assert.NotNil(t, second.Categories)
}

func TestSearchClampsLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("maxResults"))
		w.Write([]byte(`{"items": []}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	volumes, err := client.Search(context.Background(), "anything", 500)
	require.NoError(t, err)
	assert.Empty(t, volumes)
}

func TestGetVolumeNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.GetVolume(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrVolumeNotFound)
}

func TestGetVolumeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.GetVolume(context.Background(), "vol-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrVolumeNotFound)
}

func TestGetVolumeSendsAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volumes/vol-1", r.URL.Path)
		assert.Equal(t, "secret-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{"id": "vol-1", "volumeInfo": {"title": "T"}, "saleInfo": {"saleability": "FOR_SALE"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-key")
	volume, err := client.GetVolume(context.Background(), "vol-1")
	require.NoError(t, err)
	assert.Equal(t, "vol-1", volume.ID)
}

func TestMapSaleability(t *testing.T) {
	assert.Equal(t, models.AvailabilityAvailable, mapSaleability("FOR_SALE"))
	assert.Equal(t, models.AvailabilityAvailable, mapSaleability("FREE"))
	assert.Equal(t, models.AvailabilityPreOrder, mapSaleability("PREORDER"))
	assert.Equal(t, models.AvailabilityOutOfStock, mapSaleability("NOT_FOR_SALE"))
	assert.Equal(t, models.AvailabilityOutOfStock, mapSaleability(""))
}
