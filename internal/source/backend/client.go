// Package backend reads raw storefront collections from the storefront API.
package backend

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jekabolt/organic-reports/internal/dto"
	"github.com/jekabolt/organic-reports/internal/entity"
	"github.com/jekabolt/organic-reports/internal/source/rest"
)

type Config struct {
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type Client struct {
	cli *rest.Client
}

func New(c *Config) *Client {
	return &Client{cli: rest.New(c.BaseURL, c.Token, c.Timeout)}
}

func (c *Client) GetOrders(ctx context.Context) ([]entity.Order, error) {
	var res dto.OrdersResponse
	if err := c.cli.GetJSON(ctx, "/orders", nil, &res); err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return dto.ConvertOrdersToEntity(res.Orders), nil
}

func (c *Client) GetProducts(ctx context.Context, limit int) ([]entity.Product, error) {
	var params map[string]string
	if limit > 0 {
		params = map[string]string{"limit": strconv.Itoa(limit)}
	}
	var res dto.ProductsResponse
	if err := c.cli.GetJSON(ctx, "/products", params, &res); err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	return dto.ConvertProductsToEntity(res.Products), nil
}

func (c *Client) GetUsers(ctx context.Context) ([]entity.User, error) {
	var res dto.UsersResponse
	if err := c.cli.GetJSON(ctx, "/users", nil, &res); err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	return dto.ConvertUsersToEntity(res.Users), nil
}
