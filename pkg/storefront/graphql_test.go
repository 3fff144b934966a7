package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefrontkit/checkout/pkg/mockapi"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func stubHTTPClient(fn roundTripFunc) *http.Client {
	return &http.Client{Transport: fn}
}

func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestClientMocked(t *testing.T) {
	router := mockapi.NewRouter(mockapi.NewBackend())
	shopCtx := NewContext("shop.myshopify.com", "2023-01")

	assert.False(t, NewClient(shopCtx, true).Mocked())
	assert.True(t, NewClient(shopCtx, true, WithMockRouter(router)).Mocked())
}

func TestClientMockUnknownOperation(t *testing.T) {
	router := mockapi.NewRouter(mockapi.NewBackend())
	client := NewClient(NewContext("shop.myshopify.com", "2023-01"), true, WithMockRouter(router))

	_, err := client.Query(context.Background(), "query shop {\n    name\n}", nil)
	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestClientHTTPQuery(t *testing.T) {
	var captured *http.Request
	var capturedBody []byte

	client := NewClient(
		NewContext("shop.myshopify.com", "2023-01").WithStorefrontToken("sf-token"),
		true,
		WithHTTPClient(stubHTTPClient(func(req *http.Request) (*http.Response, error) {
			captured = req
			var err error
			capturedBody, err = io.ReadAll(req.Body)
			require.NoError(t, err)
			return jsonResponse(`{"data":{"cart":{"id":"gid://shopify/Cart/abc"}}}`), nil
		})),
	)

	data, err := client.Query(context.Background(), "\n  query cart { id }\n", map[string]any{"cartId": "abc"})
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "https://shop.myshopify.com/api/2023-01/graphql.json", captured.URL.String())
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
	assert.Equal(t, "sf-token", captured.Header.Get("X-Shopify-Storefront-Access-Token"))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(capturedBody, &payload))
	assert.Equal(t, "query cart { id }", payload["query"])
	assert.Equal(t, map[string]any{"cartId": "abc"}, payload["variables"])

	cart, ok := data["cart"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "gid://shopify/Cart/abc", cart["id"])
	assert.NotNil(t, client.LastResponse())
}

func TestClientHTTPAdminHeader(t *testing.T) {
	var captured *http.Request

	client := NewClient(
		NewContext("shop.myshopify.com", "2023-01").WithAdminToken("admin-token"),
		false,
		WithHTTPClient(stubHTTPClient(func(req *http.Request) (*http.Response, error) {
			captured = req
			return jsonResponse(`{"data":{"shop":{}}}`), nil
		})),
	)

	_, err := client.Query(context.Background(), "query shop { name }", nil)
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, "https://shop.myshopify.com/admin/api/2023-01/graphql.json", captured.URL.String())
	assert.Equal(t, "admin-token", captured.Header.Get("X-Shopify-Access-Token"))
	assert.Empty(t, captured.Header.Get("X-Shopify-Storefront-Access-Token"))
}

func TestClientHTTPGraphqlErrors(t *testing.T) {
	client := NewClient(
		NewContext("shop.myshopify.com", "2023-01"),
		true,
		WithHTTPClient(stubHTTPClient(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(`{"errors":[{"message":"Throttled"}]}`), nil
		})),
	)

	_, err := client.Query(context.Background(), "query cart { id }", nil)
	require.ErrorIs(t, err, ErrGraphqlErrors)
	assert.Contains(t, err.Error(), "Throttled")
	assert.NotNil(t, client.LastError())
	assert.NotNil(t, client.LastResponse())
}

func TestClientHTTPUserErrors(t *testing.T) {
	client := NewClient(
		NewContext("shop.myshopify.com", "2023-01"),
		true,
		WithHTTPClient(stubHTTPClient(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(`{"userErrors":[{"field":["cartId"],"message":"The specified cart does not exist."}]}`), nil
		})),
	)

	_, err := client.Query(context.Background(), "mutation cartLinesAdd { id }", nil)
	require.ErrorIs(t, err, ErrGraphqlErrors)
	assert.NotNil(t, client.LastError())
}

func TestClientHTTPEmptyData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "null data", body: `{"data":null}`},
		{name: "no data key", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(
				NewContext("shop.myshopify.com", "2023-01"),
				true,
				WithHTTPClient(stubHTTPClient(func(req *http.Request) (*http.Response, error) {
					return jsonResponse(tt.body), nil
				})),
			)

			_, err := client.Query(context.Background(), "query cart { id }", nil)
			require.ErrorIs(t, err, ErrEmptyResponse)
		})
	}
}
