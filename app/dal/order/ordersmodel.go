package order

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ OrdersModel = (*customOrdersModel)(nil)

type (
	// OrdersModel is an interface to be customized, add more methods here,
	// and implement the added methods in customOrdersModel.
	OrdersModel interface {
		ordersModel
		// List returns orders with pagination (desc by created_at)
		List(ctx context.Context, offset, limit int64) ([]*Orders, error)
		// CountAll returns the total number of orders
		CountAll(ctx context.Context) (int64, error)
		// SumTotalAmount returns the sum of total_amount over all orders
		SumTotalAmount(ctx context.Context) (int64, error)
		// CountByStatus returns order counts grouped by status
		CountByStatus(ctx context.Context) ([]*StatusCount, error)
		// Recent returns the most recent orders
		Recent(ctx context.Context, limit int64) ([]*Orders, error)
	}

	customOrdersModel struct {
		*defaultOrdersModel
	}

	// StatusCount is one row of the by-status breakdown.
	StatusCount struct {
		Status string `db:"status"`
		Count  int64  `db:"count"`
	}
)

// NewOrdersModel returns a model for the database table.
func NewOrdersModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) OrdersModel {
	return &customOrdersModel{
		defaultOrdersModel: newOrdersModel(conn, c, opts...),
	}
}

func (m *customOrdersModel) List(ctx context.Context, offset, limit int64) ([]*Orders, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var rows []Orders
	query := fmt.Sprintf("select %s from %s order by `created_at` desc limit ? offset ?", ordersRows, m.table)
	if err := m.QueryRowsNoCacheCtx(ctx, &rows, query, limit, offset); err != nil {
		return nil, err
	}
	res := make([]*Orders, 0, len(rows))
	for i := range rows {
		res = append(res, &rows[i])
	}
	return res, nil
}

func (m *customOrdersModel) CountAll(ctx context.Context) (int64, error) {
	var total int64
	q := fmt.Sprintf("select count(1) from %s", m.table)
	if err := m.QueryRowNoCacheCtx(ctx, &total, q); err != nil {
		return 0, err
	}
	return total, nil
}

func (m *customOrdersModel) SumTotalAmount(ctx context.Context) (int64, error) {
	var sum int64
	q := fmt.Sprintf("select coalesce(sum(`total_amount`), 0) from %s", m.table)
	if err := m.QueryRowNoCacheCtx(ctx, &sum, q); err != nil {
		return 0, err
	}
	return sum, nil
}

func (m *customOrdersModel) CountByStatus(ctx context.Context) ([]*StatusCount, error) {
	var rows []StatusCount
	q := fmt.Sprintf("select `status`, count(1) as `count` from %s group by `status`", m.table)
	if err := m.QueryRowsNoCacheCtx(ctx, &rows, q); err != nil {
		return nil, err
	}
	res := make([]*StatusCount, 0, len(rows))
	for i := range rows {
		res = append(res, &rows[i])
	}
	return res, nil
}

func (m *customOrdersModel) Recent(ctx context.Context, limit int64) ([]*Orders, error) {
	if limit <= 0 {
		limit = 5
	}
	var rows []Orders
	query := fmt.Sprintf("select %s from %s order by `created_at` desc limit ?", ordersRows, m.table)
	if err := m.QueryRowsNoCacheCtx(ctx, &rows, query, limit); err != nil {
		return nil, err
	}
	res := make([]*Orders, 0, len(rows))
	for i := range rows {
		res = append(res, &rows[i])
	}
	return res, nil
}
