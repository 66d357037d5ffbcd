package http

import (
	"tableorders/internal/core/application/usecases/queries"
	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/order"
	"tableorders/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toProduct(p queries.ProductView) servers.Product {
	product := servers.Product{
		Id:    p.ID,
		Name:  p.Name,
		Price: p.Price.String(),
	}
	if p.Category != "" {
		category := p.Category
		product.Category = &category
	}
	return product
}

func toCart(c queries.CartView) servers.Cart {
	lines := make([]servers.CartLine, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = servers.CartLine{
			ProductId: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice.String(),
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal.String(),
		}
	}

	return servers.Cart{
		Id:        c.ID.Bytes(),
		Lines:     lines,
		Total:     c.Total.String(),
		ItemCount: c.ItemCount,
		LineCount: len(c.Lines),
	}
}

func toOrder(o queries.OrderView) servers.Order {
	lines := make([]servers.OrderLine, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = servers.OrderLine{
			ProductId: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice.String(),
			Quantity:  l.Quantity,
		}
	}

	return servers.Order{
		Id:          o.ID.Bytes(),
		TableNumber: o.TableNumber,
		Lines:       lines,
		Total:       o.Total.String(),
		Status:      servers.OrderStatus(o.Status.String()),
		CreatedAt:   o.CreatedAt,
	}
}

func toOrders(views []queries.OrderView) []servers.Order {
	response := make([]servers.Order, len(views))
	for i, v := range views {
		response[i] = toOrder(v)
	}
	return response
}

func toOrderStats(c order.StatusCounts) servers.OrderStats {
	return servers.OrderStats{
		Pending:       c.Of(order.Pending),
		InPreparation: c.Of(order.InPreparation),
		Prepared:      c.Of(order.Prepared),
		Delivered:     c.Of(order.Delivered),
		Total:         c.Total(),
	}
}
