// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"database/sql"

	orderdal "lourini/app/dal/order"
	"lourini/app/common/consts/errno"
	"lourini/app/common/response"
	"lourini/app/common/snowflake"
	"lourini/app/services/order/internal/mq"
	"lourini/app/services/order/internal/svc"
	"lourini/app/services/order/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type CreateOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateOrderLogic {
	return &CreateOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreateOrderLogic) CreateOrder(req *types.CreateOrderRequest) (resp *types.CreateOrderResponse, err error) {
	if req.Customer.FirstName == "" || req.Customer.Email == "" || len(req.Items) == 0 {
		return nil, errors.New(int(errno.InvalidParam), "Invalid order data")
	}

	city := req.Customer.City
	if city == "" {
		city = "Lisboa"
	}
	postcode := req.Customer.Postcode
	if postcode == "" {
		postcode = "1000"
	}

	var total int64
	for i := range req.Items {
		qty := req.Items[i].Quantity
		if qty <= 0 {
			qty = 1
		}
		req.Items[i].Quantity = qty
		total += req.Items[i].Price * qty
	}

	order := &orderdal.Orders{
		OrderNumber:       snowflake.OrderNumber(),
		CustomerFirstName: req.Customer.FirstName,
		CustomerLastName:  req.Customer.LastName,
		CustomerEmail:     req.Customer.Email,
		CustomerPhone:     req.Customer.Phone,
		CustomerAddress:   req.Customer.Address,
		CustomerCity:      city,
		CustomerPostcode:  postcode,
		TotalAmount:       total,
		Status:            orderdal.StatusPending,
		PaymentStatus:     orderdal.PaymentPending,
	}

	res, err := l.svcCtx.Orders.Insert(l.ctx, order)
	if err != nil {
		l.Logger.Error("logic: insert order failed: ", err)
		return nil, errors.New(int(errno.InternalError), "Failed to create order")
	}
	orderId, err := res.LastInsertId()
	if err != nil {
		l.Logger.Error("logic: read order id failed: ", err)
		return nil, errors.New(int(errno.InternalError), "Failed to create order")
	}

	for _, item := range req.Items {
		_, err := l.svcCtx.OrdItm.Insert(l.ctx, &orderdal.OrderItems{
			OrderId:         orderId,
			ProductName:     item.Name,
			ProductCategory: item.Category,
			FabricClass:     nullString(item.FabricClass),
			FabricName:      nullString(item.FabricName),
			Size:            nullString(item.Size),
			Quantity:        item.Quantity,
			UnitPrice:       item.Price,
		})
		if err != nil {
			l.Logger.Error("logic: insert order item failed: ", err)
			return nil, errors.New(int(errno.InternalError), "Failed to create order")
		}
	}

	mq.EnqueueOrderEmails(l.svcCtx, mq.EmailTaskPayload{
		OrderId:     orderId,
		OrderNumber: order.OrderNumber,
		Email:       order.CustomerEmail,
	})

	if err := mq.PublishOrderCreated(l.ctx, l.svcCtx, mq.OrderCreatedEvent{
		OrderId:     orderId,
		OrderNumber: order.OrderNumber,
		Email:       order.CustomerEmail,
		TotalAmount: total,
		ItemCount:   len(req.Items),
	}); err != nil {
		l.Logger.Error("logic: publish order event failed: ", err)
	}

	resp = &types.CreateOrderResponse{
		Envelope: response.Ok("Order created successfully"),
		Order: &types.OrderRef{
			Id:          orderId,
			OrderNumber: order.OrderNumber,
		},
	}
	return
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
