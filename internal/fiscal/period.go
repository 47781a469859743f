// Package fiscal converts calendar months into crop-year periods.
//
// The sales reports are keyed by the ano-safra, which opens in April:
// April is period 1, March is period 12.
package fiscal

import (
	"fmt"
	"strconv"
	"time"

	apperrors "sellincli/internal/errors"
)

// Period returns the crop-year period of a calendar month as a decimal
// string, or an INVALID_ARGUMENT error for months outside 1-12.
func Period(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", apperrors.NewInvalidArgument(
			fmt.Sprintf("month must be between 1 and 12, got %d", month))
	}

	switch {
	case month == 4:
		return "1", nil
	case month >= 5:
		return strconv.Itoa(month - 3), nil
	default:
		return strconv.Itoa(month + 9), nil
	}
}

// Current returns the period of the running calendar month. Output file
// names are stamped with it so consecutive monthly runs never collide.
func Current() string {
	p, _ := Period(int(time.Now().Month()))
	return p
}
