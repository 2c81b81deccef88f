// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

import "lourini/app/common/response"

type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city,optional"`
	Postcode  string `json:"postcode,optional"`
}

type OrderItemInfo struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	FabricClass string `json:"fabricClass,optional"`
	FabricName  string `json:"fabricName,optional"`
	Size        string `json:"size,optional"`
	Quantity    int64  `json:"quantity,optional"`
	Price       int64  `json:"price"`
}

type CreateOrderRequest struct {
	Customer CustomerInfo    `json:"customer"`
	Items    []OrderItemInfo `json:"items"`
}

type CreateOrderResponse struct {
	response.Envelope
	Order *OrderRef `json:"order,omitempty"`
}

type OrderRef struct {
	Id          int64  `json:"id"`
	OrderNumber string `json:"orderNumber"`
}

type TrackOrderRequest struct {
	OrderNumber string `path:"orderNumber"`
}

type OrderView struct {
	Id                int64           `json:"id"`
	OrderNumber       string          `json:"orderNumber"`
	CustomerFirstName string          `json:"customerFirstName"`
	CustomerLastName  string          `json:"customerLastName"`
	CustomerEmail     string          `json:"customerEmail"`
	CustomerPhone     string          `json:"customerPhone,omitempty"`
	TotalAmount       int64           `json:"totalAmount"`
	Status            string          `json:"status"`
	PaymentStatus     string          `json:"paymentStatus"`
	CreatedAt         string          `json:"createdAt"`
	Items             []OrderItemInfo `json:"items,omitempty"`
}

type TrackOrderResponse struct {
	response.Envelope
	Order *OrderView `json:"order,omitempty"`
}

type ListOrdersRequest struct {
	Page  int64 `form:"page,optional,default=1"`
	Limit int64 `form:"limit,optional,default=20"`
}

type Pagination struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type ListOrdersResponse struct {
	response.Envelope
	Orders     []OrderView `json:"orders"`
	Pagination Pagination  `json:"pagination"`
}

type UpdateOrderStatusRequest struct {
	Id     int64  `path:"id"`
	Status string `json:"status"`
}

type UpdateOrderStatusResponse struct {
	response.Envelope
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DashboardMetrics struct {
	TotalOrders    int64         `json:"totalOrders"`
	TotalSales     int64         `json:"totalSales"`
	OrdersByStatus []StatusCount `json:"ordersByStatus"`
	RecentOrders   []OrderView   `json:"recentOrders"`
}

type DashboardMetricsResponse struct {
	response.Envelope
	Metrics *DashboardMetrics `json:"metrics,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminUser struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	response.Envelope
	Token     string     `json:"token,omitempty"`
	ExpiresIn int64      `json:"expiresIn,omitempty"`
	User      *AdminUser `json:"user,omitempty"`
}
