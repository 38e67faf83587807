package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rupeshthakur8550/FoodSpace/entity"
)

// Order is the seller-facing wire shape of one order line. Price and
// Quantity are immutable once created; only Status changes.
type Order struct {
	ID          uint               `json:"id"`
	ItemID      uint               `json:"itemId"`
	Name        string             `json:"name"`
	Image       string             `json:"image"`
	Price       decimal.Decimal    `json:"price"`
	Quantity    int                `json:"quantity"`
	Status      entity.OrderStatus `json:"status"`
	DeliveryRef string             `json:"delivery"`
}

// Total is the display total for the line.
func (o Order) Total() decimal.Decimal {
	return o.Price.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// DeliveryAddress is the flat field-name → value mapping bound to one order
// via its delivery reference.
type DeliveryAddress map[string]string

// Item is a catalog entry as served by /api/item/getallitems.
type Item struct {
	ID          uint            `json:"ID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	SellerID    uint            `json:"sellerId"`
}

// Client talks to the storefront service. It performs no retries and holds
// no state; every failure is reported as a *FetchError.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) FetchOrders(ctx context.Context, sellerID uint) ([]Order, error) {
	const op = "fetch orders"
	url := fmt.Sprintf("%s/api/order/getorder/%d", c.baseURL, sellerID)

	res, err := c.get(ctx, op, url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var body struct {
		Orders []Order `json:"orders"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOrder, err)
	}
	return body.Orders, nil
}

func (c *Client) UpdateStatus(ctx context.Context, sellerID, orderID uint, status entity.OrderStatus) error {
	const op = "update status"
	url := fmt.Sprintf("%s/api/order/updatestatus/%d", c.baseURL, sellerID)

	payload, err := json.Marshal(map[string]any{"orderId": orderID, "status": status})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return &FetchError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Op: op, Err: err}
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &FetchError{Op: op, StatusCode: res.StatusCode}
	}
	return nil
}

func (c *Client) FetchAddress(ctx context.Context, ref string) (DeliveryAddress, error) {
	const op = "fetch address"
	url := fmt.Sprintf("%s/api/delivery/getaddress/%s", c.baseURL, ref)

	res, err := c.get(ctx, op, url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var body struct {
		Delivery DeliveryAddress `json:"delivery"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}
	return body.Delivery, nil
}

func (c *Client) FetchItems(ctx context.Context, location string) ([]Item, error) {
	const op = "fetch items"
	url := c.baseURL + "/api/item/getallitems"

	payload, err := json.Marshal(map[string]string{"location": location})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &FetchError{Op: op, StatusCode: res.StatusCode}
	}

	var body struct {
		Data []Item `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}
	return body.Data, nil
}

func (c *Client) get(ctx context.Context, op, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		res.Body.Close()
		return nil, &FetchError{Op: op, StatusCode: res.StatusCode}
	}
	return res, nil
}
