// Package odds provides price normalization between odds formats.
//
// The staking engine never interprets a Price itself; everything goes through
// the Converter capability so callers can swap in a remote normalizer service
// or a fake for tests.
package odds

import (
	"errors"

	"github.com/yourusername/stake-engine/internal/models"
)

var (
	// ErrUnknownFormat indicates a price carried a format tag the converter
	// does not recognize.
	ErrUnknownFormat = errors.New("unknown price format")

	// ErrInvalidPrice indicates a price value is not interpretable in its
	// tagged format, or cannot be expressed in the requested target format.
	ErrInvalidPrice = errors.New("invalid price value")

	// ErrConverterUnavailable indicates the remote conversion service is unreachable.
	ErrConverterUnavailable = errors.New("conversion service unavailable")
)

// Converter normalizes a tagged price into the requested target format.
type Converter interface {
	Convert(price models.Price, target models.PriceFormat) (float64, error)
}

// Probability converts a price to a fair win probability.
func Probability(c Converter, price models.Price) (float64, error) {
	return c.Convert(price, models.FormatProbability)
}

// Decimal converts a price to a decimal payout multiplier.
func Decimal(c Converter, price models.Price) (float64, error) {
	return c.Convert(price, models.FormatDecimal)
}
