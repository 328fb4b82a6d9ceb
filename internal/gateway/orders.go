package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
)

func (c *Client) CreateOrder(ctx context.Context, draft entities.OrderDraft) (OrderReceipt, error) {
	var res createOrderResponse
	if err := c.do(ctx, "CreateOrder", http.MethodPost, "/orders", newCreateOrderRequest(draft), &res); err != nil {
		return OrderReceipt{}, err
	}
	return OrderReceipt{
		OrderID: string(res.OrderID),
		QRCode:  res.QRCode,
		Status:  res.Status,
		Message: res.Message,
	}, nil
}

func (c *Client) ListNGOOrders(ctx context.Context, ngoID string) ([]entities.Order, error) {
	var res []orderDTO
	path := "/orders/ngo/" + url.PathEscape(ngoID)
	if err := c.do(ctx, "ListNGOOrders", http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	orders := ordersToEntities(res)
	for i := range orders {
		if orders[i].NGOID == "" {
			orders[i].NGOID = ngoID
		}
	}
	return orders, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]entities.Order, error) {
	var res []orderDTO
	if err := c.do(ctx, "ListOrders", http.MethodGet, "/orders", nil, &res); err != nil {
		return nil, err
	}
	return ordersToEntities(res), nil
}
