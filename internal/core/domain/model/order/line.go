package order

import (
	"errors"
	"fmt"
	"strings"

	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/pkg/errs"
)

// Line is an immutable snapshot of a cart line taken at submission.
type Line struct {
	productID string
	name      string
	unitPrice kernel.Money
	quantity  int
}

// NewLine validates a line snapshot.
func NewLine(productID, name string, unitPrice kernel.Money, quantity int) (Line, error) {
	var errList []error
	if strings.TrimSpace(productID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("productId"))
	}
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if err := errors.Join(errList...); err != nil {
		return Line{}, err
	}

	return Line{productID: productID, name: name, unitPrice: unitPrice, quantity: quantity}, nil
}

func (l Line) ProductID() string {
	return l.productID
}

func (l Line) Name() string {
	return l.name
}

func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.Mul(l.quantity)
}
