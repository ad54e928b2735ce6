package expense

import (
	"errors"
	"strconv"
)

// Validation failures, in the order the checks run. Only the first failing
// check's error is reported.
var (
	ErrNoCategory       = errors.New("Please select a category")
	ErrIncompleteFields = errors.New("Please complete all fields.")
	ErrAmountNotNumeric = errors.New("Invalid amount. Numeric values only.")
)

// ValidateEntryForm checks an expense form before any request is sent.
//
// The fields check intentionally passes when either description or amount is
// non-empty; both are not required. In practice an empty amount still fails
// the numeric check, so the effective requirement is a parseable amount plus
// an optional description.
func ValidateEntryForm(category Category, description, amount string) error {
	if category == CategoryDefault {
		return ErrNoCategory
	}
	if description == "" && amount == "" {
		return ErrIncompleteFields
	}
	if _, err := strconv.ParseFloat(amount, 64); err != nil {
		return ErrAmountNotNumeric
	}
	return nil
}
