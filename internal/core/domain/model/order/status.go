package order

import (
	"fmt"
	"strings"

	"tableorders/internal/pkg/errs"
)

// Status is the fulfillment state of an order.
//
// State transitions (strictly forward, one step at a time):
//
//	Pending ──> InPreparation ──> Prepared ──> Delivered
//
// Delivered is terminal. Unknown is the invalid zero value.
type Status int

const (
	Unknown Status = iota
	Pending
	InPreparation
	Prepared
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Pending:       "Pending",
		InPreparation: "InPreparation",
		Prepared:      "Prepared",
		Delivered:     "Delivered",
	}
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, InPreparation, Prepared, Delivered}
}

// ParseStatus maps a status name, case-insensitively, to its Status.
func ParseStatus(s string) (Status, error) {
	for _, status := range Statuses() {
		if strings.EqualFold(strings.TrimSpace(s), status.String()) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and values outside the lifecycle.
func (s Status) Validate() error {
	if s < Pending || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Next returns the immediate successor. Delivered and invalid statuses have none and
// yield an IllegalTransitionError.
func (s Status) Next() (Status, error) {
	if s.Validate() != nil || s.IsTerminal() {
		return Unknown, errs.NewIllegalTransitionError(s, Unknown)
	}
	return s + 1, nil
}

// CanAdvanceTo returns nil only when target is the immediate successor of s.
// Skips, regressions and self-transitions are IllegalTransitionErrors.
func (s Status) CanAdvanceTo(target Status) error {
	next, err := s.Next()
	if err != nil || next != target {
		return errs.NewIllegalTransitionError(s, target)
	}
	return nil
}
