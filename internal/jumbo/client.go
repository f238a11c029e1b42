// Package jumbo provides a client for the Jumbo supermarket mobile API.
//
// A Session handles authentication and owns the session token. A Client
// issues the typed API calls: store profile, delivery/pickup time slots,
// orders and basket operations.
package jumbo

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

// BaseURL is the production endpoint of the Jumbo mobile API.
const BaseURL = "https://mobileapi.jumbo.com"

const (
	loginPath   = "/v9/users/login"
	profilePath = "/v9/users/me"
	slotsPath   = "/v9/stores/slots"
	ordersPath  = "/v9/users/me/orders"
	basketPath  = "/v9/basket"
)

// Fulfilment types accepted by the slots endpoint.
const (
	FulfilmentHomeDelivery = "homeDelivery"
	FulfilmentCollection   = "collection"
)

// Client issues typed calls against the Jumbo mobile API, authenticated
// through its Session. Store-scoped calls (slots) require a synced store.
type Client struct {
	Session    *Session
	HTTPClient *http.Client
	BaseURL    string
	logger     *slog.Logger

	lock  sync.RWMutex
	store *Store
}

// NewClient returns a Client using the given session for authentication.
func NewClient(session *Session, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		Session:    session,
		HTTPClient: httpClient,
		BaseURL:    BaseURL,
		logger:     logger,
	}
}

// SetStore sets (or, with nil, clears) the store used for store-scoped calls.
func (c *Client) SetStore(store *Store) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.store = store
}

// Store returns the currently configured store.
func (c *Client) Store() (Store, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	if c.store == nil {
		return Store{}, false
	}
	return *c.store, true
}

// GetProfile fetches the user profile and returns the store it references.
func (c *Client) GetProfile(ctx context.Context) (Store, error) {
	var response profileResponse
	if err := c.call(ctx, http.MethodGet, profilePath, nil, nil, &response); err != nil {
		return Store{}, err
	}
	return response.User.Data.Store, nil
}

// SyncStore refreshes the store from the remote profile and makes it the
// store for subsequent store-scoped calls.
func (c *Client) SyncStore(ctx context.Context) (Store, error) {
	store, err := c.GetProfile(ctx)
	if err != nil {
		return Store{}, err
	}
	c.SetStore(&store)
	return store, nil
}

// GetDeliverySlots lists the home-delivery time slots for the synced store,
// grouped by day. The remote API returns a 7-day window.
func (c *Client) GetDeliverySlots(ctx context.Context) ([]SlotDay, error) {
	return c.getSlots(ctx, FulfilmentHomeDelivery)
}

// GetPickupSlots lists the in-store pickup time slots for the synced store.
func (c *Client) GetPickupSlots(ctx context.Context) ([]SlotDay, error) {
	return c.getSlots(ctx, FulfilmentCollection)
}

func (c *Client) getSlots(ctx context.Context, fulfilment string) ([]SlotDay, error) {
	store, ok := c.Store()
	if !ok {
		return nil, ErrNotConfigured
	}

	query := url.Values{}
	query.Set("storeId", store.ID)
	query.Set("fulfilment", fulfilment)
	query.Set("limit", "7")

	var response slotsResponse
	if err := c.call(ctx, http.MethodGet, slotsPath, query, nil, &response); err != nil {
		return nil, err
	}
	return response.TimeSlots.Data, nil
}

// GetOrders lists all orders for the current user.
func (c *Client) GetOrders(ctx context.Context) ([]Order, error) {
	var response ordersResponse
	if err := c.call(ctx, http.MethodGet, ordersPath, nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Orders.Data, nil
}

// GetBasket fetches the current basket contents.
func (c *Client) GetBasket(ctx context.Context) (Basket, error) {
	query := url.Values{}
	query.Set("withMOV", "false")

	var response basketResponse
	if err := c.call(ctx, http.MethodGet, basketPath, query, nil, &response); err != nil {
		return Basket{}, err
	}
	return response.Basket.Data, nil
}

// AddProduct adds one unit of the given SKU to the basket and returns the
// remote response verbatim.
func (c *Client) AddProduct(ctx context.Context, sku string) (json.RawMessage, error) {
	form := url.Values{}
	form.Set("sku", sku)
	form.Set("unit", "pieces")
	form.Set("quantity", "1")

	var response json.RawMessage
	if err := c.call(ctx, http.MethodPost, basketPath, nil, form, &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) call(ctx context.Context, method, path string, query, form url.Values, response any) error {
	token, err := c.Session.Token(ctx)
	if err != nil {
		return err
	}

	target := c.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	req.Header.Set(tokenHeader, token)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.logger.Debug("call failed", slog.String("path", path), slog.Any("err", err))
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Debug("call failed", slog.String("path", path), slog.String("status", resp.Status))
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(payload)}
	}

	return json.NewDecoder(resp.Body).Decode(response)
}
