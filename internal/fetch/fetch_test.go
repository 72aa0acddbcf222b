package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `{
	"data": [
		{
			"id": "11111111-2222-3333-4444-555555555555",
			"issued_at_date": "2024-03-01",
			"badge_template": {
				"name": "Cilium Certified Associate",
				"image_url": "https://images.credly.com/cca.png",
				"issuer": {
					"entities": [{"entity": {"name": "Isovalent"}}]
				}
			}
		}
	]
}`

func TestBadges_Success(t *testing.T) {
	var gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer server.Close()

	badges, err := Badges(context.Background(), server.URL, nil)
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "Isovalent", badges[0].IssuerName())
	assert.Equal(t, "2024-03-01", badges[0].IssuedAtDate)
}

func TestBadges_EmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	badges, err := Badges(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Empty(t, badges)
}

func TestBadges_InvalidURL(t *testing.T) {
	_, err := Badges(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestBadges_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Badges(context.Background(), server.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestBadges_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": [`))
	}))
	defer server.Close()

	_, err := Badges(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response body")
}

func TestBadges_MissingDataKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": "rate limited"}`))
	}))
	defer server.Close()

	_, err := Badges(context.Background(), server.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), `missing top-level "data" key`)
}

func TestBadges_NullData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": null}`))
	}))
	defer server.Close()

	_, err := Badges(context.Background(), server.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), `missing top-level "data" key`)
}

func TestBadges_UnexpectedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"unexpected": "object"}}`))
	}))
	defer server.Close()

	_, err := Badges(context.Background(), server.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestBadges_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close() // immediately, so the request fails

	_, err := Badges(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP request failed")
}
