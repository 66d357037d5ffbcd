package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"tableorders/internal/pkg/errs"
)

// ParseQuantity parses quantity text from a cart line editor. It returns a ValueIsInvalidError
// for text that is not an integer instead of substituting a default. Zero and negative
// results are returned as-is: the cart treats them as a removal.
func ParseQuantity(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, errs.NewValueIsRequiredError("quantity")
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%q is not an integer", s))
	}
	return n, nil
}
