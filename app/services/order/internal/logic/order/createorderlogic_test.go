package logic

import (
	"context"
	"database/sql"
	"testing"

	orderdal "lourini/app/dal/order"
	"lourini/app/services/order/internal/config"
	"lourini/app/services/order/internal/svc"
	"lourini/app/services/order/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResult struct{ id int64 }

func (r fakeResult) LastInsertId() (int64, error) { return r.id, nil }
func (r fakeResult) RowsAffected() (int64, error) { return 1, nil }

type fakeOrdersModel struct {
	orders map[int64]*orderdal.Orders
	nextId int64
}

func newFakeOrdersModel() *fakeOrdersModel {
	return &fakeOrdersModel{orders: make(map[int64]*orderdal.Orders)}
}

func (m *fakeOrdersModel) Insert(_ context.Context, data *orderdal.Orders) (sql.Result, error) {
	m.nextId++
	cp := *data
	cp.Id = m.nextId
	m.orders[cp.Id] = &cp
	return fakeResult{id: cp.Id}, nil
}

func (m *fakeOrdersModel) FindOne(_ context.Context, id int64) (*orderdal.Orders, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, orderdal.ErrNotFound
	}
	return o, nil
}

func (m *fakeOrdersModel) FindOneByOrderNumber(_ context.Context, orderNumber string) (*orderdal.Orders, error) {
	for _, o := range m.orders {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return nil, orderdal.ErrNotFound
}

func (m *fakeOrdersModel) Update(_ context.Context, data *orderdal.Orders) error {
	if _, ok := m.orders[data.Id]; !ok {
		return orderdal.ErrNotFound
	}
	m.orders[data.Id] = data
	return nil
}

func (m *fakeOrdersModel) Delete(_ context.Context, id int64) error {
	delete(m.orders, id)
	return nil
}

func (m *fakeOrdersModel) List(_ context.Context, offset, limit int64) ([]*orderdal.Orders, error) {
	out := make([]*orderdal.Orders, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, nil
}

func (m *fakeOrdersModel) CountAll(_ context.Context) (int64, error) {
	return int64(len(m.orders)), nil
}

func (m *fakeOrdersModel) SumTotalAmount(_ context.Context) (int64, error) {
	var sum int64
	for _, o := range m.orders {
		sum += o.TotalAmount
	}
	return sum, nil
}

func (m *fakeOrdersModel) CountByStatus(_ context.Context) ([]*orderdal.StatusCount, error) {
	counts := make(map[string]int64)
	for _, o := range m.orders {
		counts[o.Status]++
	}
	out := make([]*orderdal.StatusCount, 0, len(counts))
	for status, n := range counts {
		out = append(out, &orderdal.StatusCount{Status: status, Count: n})
	}
	return out, nil
}

func (m *fakeOrdersModel) Recent(_ context.Context, limit int64) ([]*orderdal.Orders, error) {
	return m.List(context.Background(), 0, limit)
}

type fakeOrderItemsModel struct {
	items  []*orderdal.OrderItems
	nextId int64
}

func (m *fakeOrderItemsModel) Insert(_ context.Context, data *orderdal.OrderItems) (sql.Result, error) {
	m.nextId++
	cp := *data
	cp.Id = m.nextId
	m.items = append(m.items, &cp)
	return fakeResult{id: cp.Id}, nil
}

func (m *fakeOrderItemsModel) FindOne(_ context.Context, id int64) (*orderdal.OrderItems, error) {
	for _, it := range m.items {
		if it.Id == id {
			return it, nil
		}
	}
	return nil, orderdal.ErrNotFound
}

func (m *fakeOrderItemsModel) Update(_ context.Context, data *orderdal.OrderItems) error {
	return nil
}

func (m *fakeOrderItemsModel) Delete(_ context.Context, id int64) error {
	return nil
}

func (m *fakeOrderItemsModel) ListByOrderId(_ context.Context, orderId int64) ([]*orderdal.OrderItems, error) {
	out := make([]*orderdal.OrderItems, 0)
	for _, it := range m.items {
		if it.OrderId == orderId {
			out = append(out, it)
		}
	}
	return out, nil
}

func testServiceContext() (*svc.ServiceContext, *fakeOrdersModel, *fakeOrderItemsModel) {
	orders := newFakeOrdersModel()
	items := &fakeOrderItemsModel{}
	sc := &svc.ServiceContext{
		Config: config.Config{},
		Orders: orders,
		OrdItm: items,
	}
	return sc, orders, items
}

func validRequest() *types.CreateOrderRequest {
	return &types.CreateOrderRequest{
		Customer: types.CustomerInfo{
			FirstName: "João",
			LastName:  "Silva",
			Email:     "joao@example.com",
			Phone:     "912345678",
			Address:   "Rua das Flores 10",
		},
		Items: []types.OrderItemInfo{
			{Name: "Modelo Lisboa", Category: "Móveis", Size: "3 Lugares", Quantity: 2, Price: 850},
			{Name: "Atlantis", Category: "Tecidos", FabricClass: "Classe A", FabricName: "Atlantis", Quantity: 5, Price: 35},
		},
	}
}

func TestCreateOrder(t *testing.T) {
	sc, orders, items := testServiceContext()
	l := NewCreateOrderLogic(context.Background(), sc)

	resp, err := l.CreateOrder(validRequest())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Order)
	assert.True(t, len(resp.Order.OrderNumber) > 4)

	stored, err := orders.FindOne(context.Background(), resp.Order.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1875), stored.TotalAmount)
	assert.Equal(t, orderdal.StatusPending, stored.Status)
	assert.Equal(t, orderdal.PaymentPending, stored.PaymentStatus)
	// defaults applied when the customer omits them
	assert.Equal(t, "Lisboa", stored.CustomerCity)
	assert.Equal(t, "1000", stored.CustomerPostcode)

	lines, err := items.ListByOrderId(context.Background(), resp.Order.Id)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Modelo Lisboa", lines[0].ProductName)
	assert.False(t, lines[0].FabricClass.Valid)
	assert.True(t, lines[1].FabricClass.Valid)
	assert.Equal(t, "Classe A", lines[1].FabricClass.String)
}

func TestCreateOrderDefaultsQuantity(t *testing.T) {
	sc, orders, items := testServiceContext()
	l := NewCreateOrderLogic(context.Background(), sc)

	req := validRequest()
	req.Items = []types.OrderItemInfo{{Name: "Cadeira Dining", Category: "Móveis", Price: 180}}

	resp, err := l.CreateOrder(req)
	require.NoError(t, err)

	stored, err := orders.FindOne(context.Background(), resp.Order.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(180), stored.TotalAmount)

	lines, _ := items.ListByOrderId(context.Background(), resp.Order.Id)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].Quantity)
}

func TestCreateOrderRejectsInvalidData(t *testing.T) {
	sc, _, _ := testServiceContext()
	l := NewCreateOrderLogic(context.Background(), sc)

	req := validRequest()
	req.Items = nil
	_, err := l.CreateOrder(req)
	assert.Error(t, err)

	req = validRequest()
	req.Customer.Email = ""
	_, err = l.CreateOrder(req)
	assert.Error(t, err)
}

func TestTrackOrder(t *testing.T) {
	sc, _, _ := testServiceContext()
	created, err := NewCreateOrderLogic(context.Background(), sc).CreateOrder(validRequest())
	require.NoError(t, err)

	l := NewTrackOrderLogic(context.Background(), sc)
	resp, err := l.TrackOrder(&types.TrackOrderRequest{OrderNumber: created.Order.OrderNumber})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Order)
	assert.Equal(t, created.Order.OrderNumber, resp.Order.OrderNumber)
	assert.Len(t, resp.Order.Items, 2)

	_, err = l.TrackOrder(&types.TrackOrderRequest{OrderNumber: "ORD-missing"})
	assert.Error(t, err)
}

func TestUpdateOrderStatus(t *testing.T) {
	sc, orders, _ := testServiceContext()
	created, err := NewCreateOrderLogic(context.Background(), sc).CreateOrder(validRequest())
	require.NoError(t, err)

	l := NewUpdateOrderStatusLogic(context.Background(), sc)
	resp, err := l.UpdateOrderStatus(&types.UpdateOrderStatusRequest{
		Id:     created.Order.Id,
		Status: orderdal.StatusShipped,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	stored, _ := orders.FindOne(context.Background(), created.Order.Id)
	assert.Equal(t, orderdal.StatusShipped, stored.Status)

	_, err = l.UpdateOrderStatus(&types.UpdateOrderStatusRequest{Id: created.Order.Id, Status: "bogus"})
	assert.Error(t, err)

	_, err = l.UpdateOrderStatus(&types.UpdateOrderStatusRequest{Id: 9999, Status: orderdal.StatusShipped})
	assert.Error(t, err)
}

func TestDashboardMetrics(t *testing.T) {
	sc, _, _ := testServiceContext()
	_, err := NewCreateOrderLogic(context.Background(), sc).CreateOrder(validRequest())
	require.NoError(t, err)

	l := NewDashboardMetricsLogic(context.Background(), sc)
	resp, err := l.DashboardMetrics()
	require.NoError(t, err)
	require.NotNil(t, resp.Metrics)
	assert.Equal(t, int64(1), resp.Metrics.TotalOrders)
	assert.Equal(t, int64(1875), resp.Metrics.TotalSales)
	require.Len(t, resp.Metrics.OrdersByStatus, 1)
	assert.Equal(t, orderdal.StatusPending, resp.Metrics.OrdersByStatus[0].Status)
	assert.Len(t, resp.Metrics.RecentOrders, 1)
}
