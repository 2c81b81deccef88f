// Package remote holds the HTTP client for the order service. The chat
// engine only knows the dialog.Submitter contract; the wire shapes here
// mirror the order service API.
package remote

import (
	"context"
	"fmt"
	"net/http"

	"lourini/app/services/chat/internal/bot/dialog"

	"github.com/zeromicro/go-zero/rest/httpc"
)

type OrderClient struct {
	endpoint string
}

func NewOrderClient(endpoint string) *OrderClient {
	return &OrderClient{endpoint: endpoint}
}

type customerWire struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Postcode  string `json:"postcode"`
}

type orderItemWire struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	FabricClass string `json:"fabricClass,omitempty"`
	FabricName  string `json:"fabricName,omitempty"`
	Size        string `json:"size,omitempty"`
	Quantity    int64  `json:"quantity"`
	Price       int64  `json:"price"`
}

type createOrderReq struct {
	Customer customerWire    `json:"customer"`
	Items    []orderItemWire `json:"items"`
}

type createOrderResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Order   struct {
		Id          int64  `json:"id"`
		OrderNumber string `json:"orderNumber"`
	} `json:"order"`
}

// Submit posts the finalized order. A non-2xx status or success=false is an
// error; the conversation decides how to surface it to the user.
func (c *OrderClient) Submit(ctx context.Context, payload *dialog.OrderPayload) (*dialog.OrderRef, error) {
	req := createOrderReq{
		Customer: customerWire{
			FirstName: payload.Customer.FirstName,
			LastName:  payload.Customer.LastName,
			Email:     payload.Customer.Email,
			Phone:     payload.Customer.Phone,
			Address:   payload.Customer.Address,
			City:      payload.Customer.City,
			Postcode:  payload.Customer.Postcode,
		},
		Items: make([]orderItemWire, 0, len(payload.Items)),
	}
	for _, it := range payload.Items {
		req.Items = append(req.Items, orderItemWire{
			Name:        it.Name,
			Category:    it.Category,
			FabricClass: it.FabricClass,
			FabricName:  it.FabricName,
			Size:        it.Size,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	resp, err := httpc.Do(ctx, http.MethodPost, c.endpoint+"/orders", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out createOrderResp
	if err := httpc.ParseJsonBody(resp, &out); err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK || !out.Success {
		return nil, fmt.Errorf("order service rejected order: status %d: %s", resp.StatusCode, out.Message)
	}

	return &dialog.OrderRef{
		Id:          out.Order.Id,
		OrderNumber: out.Order.OrderNumber,
	}, nil
}
