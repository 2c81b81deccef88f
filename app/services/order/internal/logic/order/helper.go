package logic

import (
	"time"

	orderdal "lourini/app/dal/order"
	"lourini/app/services/order/internal/types"
)

func toOrderView(o *orderdal.Orders) *types.OrderView {
	return &types.OrderView{
		Id:                o.Id,
		OrderNumber:       o.OrderNumber,
		CustomerFirstName: o.CustomerFirstName,
		CustomerLastName:  o.CustomerLastName,
		CustomerEmail:     o.CustomerEmail,
		CustomerPhone:     o.CustomerPhone,
		TotalAmount:       o.TotalAmount,
		Status:            o.Status,
		PaymentStatus:     o.PaymentStatus,
		CreatedAt:         o.CreatedAt.UTC().Format(time.RFC3339),
	}
}
