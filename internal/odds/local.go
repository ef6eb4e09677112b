package odds

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yourusername/stake-engine/internal/metrics"
	"github.com/yourusername/stake-engine/internal/models"
)

// LocalConverter is a pure in-process Converter supporting the probability,
// decimal, moneyline and fractional formats. It is the default normalizer;
// deployments that run a shared normalizer service use HTTPConverter instead.
type LocalConverter struct{}

// NewLocalConverter creates a new in-process converter.
func NewLocalConverter() *LocalConverter {
	return &LocalConverter{}
}

// Convert normalizes price into the target format. Decimal odds are the
// internal canonical form; every supported pair of formats converts through
// them.
func (c *LocalConverter) Convert(price models.Price, target models.PriceFormat) (float64, error) {
	metrics.ConversionsTotal.WithLabelValues(string(price.Format), string(target)).Inc()

	// Avoid a lossy round trip through decimal odds for the identity case.
	if price.Format == models.FormatProbability && target == models.FormatProbability {
		return parseProbability(price.Value)
	}

	dec, err := toDecimal(price)
	if err != nil {
		return 0, err
	}

	switch target {
	case models.FormatDecimal:
		return dec, nil
	case models.FormatProbability:
		if dec <= 0 {
			return 0, fmt.Errorf("%w: decimal odds %v have no implied probability", ErrInvalidPrice, dec)
		}
		return 1.0 / dec, nil
	case models.FormatMoneyline:
		return decimalToMoneyline(dec)
	case models.FormatFractional:
		if dec < 1 {
			return 0, fmt.Errorf("%w: decimal odds %v below even money floor", ErrInvalidPrice, dec)
		}
		return dec - 1.0, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, target)
	}
}

// toDecimal parses a tagged price into decimal odds.
func toDecimal(price models.Price) (float64, error) {
	switch price.Format {
	case models.FormatDecimal:
		d, err := strconv.ParseFloat(strings.TrimSpace(price.Value), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not decimal odds", ErrInvalidPrice, price.Value)
		}
		if d < 0 {
			return 0, fmt.Errorf("%w: decimal odds %v are negative", ErrInvalidPrice, d)
		}
		return d, nil

	case models.FormatProbability:
		p, err := parseProbability(price.Value)
		if err != nil {
			return 0, err
		}
		if p == 0 {
			return 0, fmt.Errorf("%w: zero probability has no decimal odds", ErrInvalidPrice)
		}
		return 1.0 / p, nil

	case models.FormatMoneyline:
		m, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(price.Value), "+"))
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a moneyline", ErrInvalidPrice, price.Value)
		}
		if m == 0 {
			return 0, fmt.Errorf("%w: moneyline cannot be zero", ErrInvalidPrice)
		}
		if m > 0 {
			return float64(m)/100.0 + 1.0, nil
		}
		return 100.0/float64(-m) + 1.0, nil

	case models.FormatFractional:
		num, den, ok := strings.Cut(strings.TrimSpace(price.Value), "/")
		if !ok {
			return 0, fmt.Errorf("%w: %q is not fractional odds", ErrInvalidPrice, price.Value)
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: bad fractional numerator %q", ErrInvalidPrice, num)
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil || d <= 0 {
			return 0, fmt.Errorf("%w: bad fractional denominator %q", ErrInvalidPrice, den)
		}
		return n/d + 1.0, nil

	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, price.Format)
	}
}

func parseProbability(value string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a probability", ErrInvalidPrice, value)
	}
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: probability %v outside [0, 1]", ErrInvalidPrice, p)
	}
	return p, nil
}

func decimalToMoneyline(dec float64) (float64, error) {
	if dec <= 1 {
		return 0, fmt.Errorf("%w: decimal odds %v have no moneyline equivalent", ErrInvalidPrice, dec)
	}
	if dec >= 2.0 {
		return (dec - 1.0) * 100.0, nil
	}
	return -100.0 / (dec - 1.0), nil
}
