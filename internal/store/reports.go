package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/jekabolt/organic-reports/internal/entity"
	"github.com/shopspring/decimal"
)

type orderRow struct {
	ID          int             `db:"id"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	CreatedAt   time.Time       `db:"created_at"`
}

type orderItemRow struct {
	OrderID     int             `db:"order_id"`
	ProductID   sql.NullInt64   `db:"product_id"`
	ProductName string          `db:"product_name"`
	Quantity    int             `db:"quantity"`
	Price       decimal.Decimal `db:"price"`
}

type productRow struct {
	ID       int    `db:"id"`
	Name     string `db:"name"`
	Stock    int    `db:"stock"`
	Category string `db:"category"`
}

type userRow struct {
	ID        int       `db:"id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

// GetOrders returns every order with its items.
func (ms *MYSQLStore) GetOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := QueryListNamed[orderRow](ctx, ms.db, `
		SELECT id, total_amount, created_at
		FROM orders
		ORDER BY created_at, id`, nil)
	if err != nil {
		return nil, fmt.Errorf("can't get orders: %w", err)
	}

	items, err := QueryListNamed[orderItemRow](ctx, ms.db, `
		SELECT
			oi.order_id,
			oi.product_id,
			COALESCE(oi.product_name, p.name, '') AS product_name,
			oi.quantity,
			oi.price
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		ORDER BY oi.order_id, oi.id`, nil)
	if err != nil {
		return nil, fmt.Errorf("can't get order items: %w", err)
	}

	itemsByOrder := make(map[int][]entity.OrderItem, len(orders))
	for _, it := range items {
		ei := entity.OrderItem{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.Price,
		}
		if it.ProductID.Valid {
			ei.ProductID = strconv.FormatInt(it.ProductID.Int64, 10)
		}
		itemsByOrder[it.OrderID] = append(itemsByOrder[it.OrderID], ei)
	}

	res := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, entity.Order{
			ID:        strconv.Itoa(o.ID),
			CreatedAt: o.CreatedAt,
			Amount:    o.TotalAmount,
			Items:     itemsByOrder[o.ID],
		})
	}
	return res, nil
}

// GetProducts returns at most limit products, all of them when limit <= 0.
func (ms *MYSQLStore) GetProducts(ctx context.Context, limit int) ([]entity.Product, error) {
	query := `
		SELECT
			p.id,
			p.name,
			p.stock,
			COALESCE(c.name, '') AS category
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.id`
	params := map[string]any{}
	if limit > 0 {
		query += ` LIMIT :limit`
		params["limit"] = limit
	}

	products, err := QueryListNamed[productRow](ctx, ms.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("can't get products: %w", err)
	}

	res := make([]entity.Product, 0, len(products))
	for _, p := range products {
		category := p.Category
		if category == "" {
			category = entity.UnknownCategory
		}
		stock := p.Stock
		if stock < 0 {
			stock = 0
		}
		res = append(res, entity.Product{
			ID:       strconv.Itoa(p.ID),
			Name:     p.Name,
			Stock:    stock,
			Category: category,
		})
	}
	return res, nil
}

func (ms *MYSQLStore) GetUsers(ctx context.Context) ([]entity.User, error) {
	users, err := QueryListNamed[userRow](ctx, ms.db, `
		SELECT id, status, created_at
		FROM users
		ORDER BY id`, nil)
	if err != nil {
		return nil, fmt.Errorf("can't get users: %w", err)
	}

	res := make([]entity.User, 0, len(users))
	for _, u := range users {
		res = append(res, entity.User{
			ID:        strconv.Itoa(u.ID),
			CreatedAt: u.CreatedAt,
			Status:    u.Status,
		})
	}
	return res, nil
}
