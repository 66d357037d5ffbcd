// Package orderrepo persists the Order aggregate in PostgreSQL through GORM.
// An order is stored as one row in orders and one row per line in order_lines.
package orderrepo

import (
	"time"

	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders table. Total is denormalized so reports can aggregate without joins.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TableNumber int             `gorm:"type:smallint;not null"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status      int             `gorm:"not null;index"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	Version     int             `gorm:"not null;default:0"`
	Lines       []OrderLineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one row of order_lines. Position keeps the line order of the cart.
type OrderLineDTO struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"not null"`
	ProductID string          `gorm:"not null"`
	Name      string          `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	id := aggregate.ID().Bytes()

	lines := aggregate.Lines()
	lineDTOs := make([]OrderLineDTO, 0, len(lines))
	for i, l := range lines {
		lineDTOs = append(lineDTOs, OrderLineDTO{
			OrderID:   id,
			Position:  i,
			ProductID: l.ProductID(),
			Name:      l.Name(),
			UnitPrice: l.UnitPrice().Amount(),
			Quantity:  l.Quantity(),
		})
	}

	return OrderDTO{
		ID:          id,
		TableNumber: aggregate.Table().Int(),
		Total:       aggregate.Total().Amount(),
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
		Version:     aggregate.Version(),
		Lines:       lineDTOs,
	}
}

// toDomain rebuilds the aggregate. The total is recomputed from the lines.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	table, err := kernel.NewTableNumber(dto.TableNumber)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		price, priceErr := kernel.NewMoney(l.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		line, lineErr := order.NewLine(l.ProductID, l.Name, price, l.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, table, lines, dto.CreatedAt, order.Status(dto.Status), dto.Version)
}
