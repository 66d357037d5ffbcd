package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"tableorders/internal/pkg/errs"
	"tableorders/internal/pkg/guard"
)

// Bounds of the venue's table numbering. Validation, the settings endpoint and every
// message about table numbers read these two constants.
const (
	TableNumberMin = 1
	TableNumberMax = 410
)

// ErrTableNumberIsNotConstructed is returned when validating a zero-value TableNumber.
var ErrTableNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"table number must be created via NewTableNumber or ParseTableNumber")

// TableNumber is the table an order is served to, always within [TableNumberMin, TableNumberMax].
//
//	table, err := kernel.NewTableNumber(7)
//	if err != nil {
//	    // err is *errs.ValueIsOutOfRangeError
//	}
type TableNumber struct { //nolint:recvcheck //using for validation
	value int
	guard guard.ConstructorGuard
}

// NewTableNumber returns a ValueIsOutOfRangeError when n is outside the venue's bounds.
// Both bounds are inclusive.
func NewTableNumber(n int) (TableNumber, error) {
	t := TableNumber{guard: guard.NewConstructorGuard()}
	if err := t.setValue(n); err != nil {
		return TableNumber{}, err
	}
	return t, nil
}

// ParseTableNumber parses text typed at the table-number input. Surrounding whitespace is
// ignored; anything that is not a base-10 integer is a ValueIsInvalidError. Parsing never
// falls back to a default table.
func ParseTableNumber(s string) (TableNumber, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return TableNumber{}, errs.NewValueIsInvalidErrorWithCause("tableNumber", fmt.Errorf("%q is not a number", s))
	}
	return NewTableNumber(n)
}

// TableNumberHint renders the valid range for input placeholders, e.g. "1-410".
func TableNumberHint() string {
	return fmt.Sprintf("%d-%d", TableNumberMin, TableNumberMax)
}

func (t TableNumber) Validate() error {
	return t.guard.Validate(ErrTableNumberIsNotConstructed)
}

func (t TableNumber) Int() int {
	return t.value
}

func (t TableNumber) String() string {
	return strconv.Itoa(t.value)
}

func (t TableNumber) IsEqual(other TableNumber) bool {
	return t.value == other.value
}

func (t *TableNumber) setValue(n int) error {
	if n < TableNumberMin || n > TableNumberMax {
		return errs.NewValueIsOutOfRangeError("tableNumber", n, TableNumberMin, TableNumberMax)
	}
	t.value = n
	return nil
}
