package api

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/casualjim/fmp/types"
	"github.com/go-openapi/strfmt"
)

// ErrInvalidSymbol is returned for an empty or malformed ticker symbol.
var ErrInvalidSymbol = invalid("symbol")

func normalizeSymbol(symbol string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" {
		return "", ErrInvalidSymbol
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '-', r == '^', r == '=':
		default:
			return "", fmtSymbol(symbol)
		}
	}
	return s, nil
}

func fmtSymbol(symbol string) error {
	return &symbolError{symbol: symbol}
}

type symbolError struct{ symbol string }

func (e *symbolError) Error() string { return ErrInvalidSymbol.Error() + " " + strconv.Quote(e.symbol) }
func (e *symbolError) Unwrap() error { return ErrInvalidSymbol }

// normalizeSymbols validates every symbol and joins them for a batch request.
func normalizeSymbols(symbols []string) (string, error) {
	if len(symbols) == 0 {
		return "", ErrInvalidSymbol
	}
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		n, err := normalizeSymbol(s)
		if err != nil {
			return "", err
		}
		out = append(out, n)
	}
	return strings.Join(out, ","), nil
}

// setLimit adds limit to q. Zero means "let FMP decide".
func setLimit(q url.Values, limit int) error {
	if limit < 0 {
		return invalid("limit must be positive, got %d", limit)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return nil
}

func setPeriod(q url.Values, period types.Period) error {
	if period == "" {
		return nil
	}
	if !period.Valid() {
		return invalid("period must be annual or quarter, got %q", period)
	}
	q.Set("period", string(period))
	return nil
}

// setDateRange adds from and to to q. Both are optional YYYY-MM-DD dates.
func setDateRange(q url.Values, from, to string) error {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from != "" && !strfmt.IsDate(from) {
		return invalid("from must be a YYYY-MM-DD date, got %q", from)
	}
	if to != "" && !strfmt.IsDate(to) {
		return invalid("to must be a YYYY-MM-DD date, got %q", to)
	}
	// ISO dates order lexically
	if from != "" && to != "" && from > to {
		return invalid("from %s is after to %s", from, to)
	}
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}
	return nil
}
