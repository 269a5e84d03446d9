// Package laptime converts between lap time strings (M:SS.mmm) and seconds.
package laptime

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Fallback is displayed for values that cannot be formatted.
const Fallback = "0:00.000"

// ErrMalformed is returned by Parse for strings that are not lap times.
var ErrMalformed = errors.New("laptime: malformed time")

var sixty = decimal.NewFromInt(60)

// Parse converts "M:SS.mmm" into seconds. The older "M:SS:mmm" form, with the
// milliseconds as a third colon separated field, is accepted as well.
func Parse(s string) (float64, error) {
	d, err := parse(s)
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}

// Seconds is Parse without the error: malformed input counts as zero.
func Seconds(s string) float64 {
	f, _ := Parse(s)
	return f
}

func parse(s string) (decimal.Decimal, error) {
	malformed := fmt.Errorf("%w: %q", ErrMalformed, s)

	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 || !digits(parts[0]) {
		return decimal.Zero, malformed
	}
	minutes, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return decimal.Zero, malformed
	}

	var secs decimal.Decimal
	if len(parts) == 3 {
		if !digits(parts[1]) || !digits(parts[2]) {
			return decimal.Zero, malformed
		}
		whole, _ := strconv.ParseInt(parts[1], 10, 64)
		millis, _ := strconv.ParseInt(parts[2], 10, 64)
		secs = decimal.NewFromInt(whole).Add(decimal.New(millis, -3))
	} else {
		whole, frac, hasFrac := strings.Cut(parts[1], ".")
		if !digits(whole) || (hasFrac && !digits(frac)) {
			return decimal.Zero, malformed
		}
		if secs, err = decimal.NewFromString(parts[1]); err != nil {
			return decimal.Zero, malformed
		}
	}
	if secs.GreaterThanOrEqual(sixty) {
		return decimal.Zero, malformed
	}

	return decimal.NewFromInt(minutes).Mul(sixty).Add(secs), nil
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Format renders seconds as M:SS.mmm. The value is rounded to milliseconds
// before it is split into minutes, so 59.9996 becomes 1:00.000.
// Negative, NaN and infinite values yield Fallback.
func Format(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return Fallback
	}
	total := decimal.NewFromFloat(seconds).Round(3)
	minutes := total.Div(sixty).Floor()
	rest := total.Sub(minutes.Mul(sixty)).StringFixed(3)
	if len(rest) < 6 {
		rest = strings.Repeat("0", 6-len(rest)) + rest
	}
	return minutes.String() + ":" + rest
}

// Tick is the chart axis label for seconds: Format without the milliseconds.
func Tick(seconds float64) string {
	whole, _, _ := strings.Cut(Format(seconds), ".")
	return whole
}
