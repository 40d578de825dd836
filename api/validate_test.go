package api

import (
	"net/url"
	"testing"

	"github.com/casualjim/fmp/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "aapl", want: "AAPL"},
		{in: "  msft ", want: "MSFT"},
		{in: "brk.b", want: "BRK.B"},
		{in: "^gspc", want: "^GSPC"},
		{in: "eurusd=x", want: "EURUSD=X"},
		{in: "", wantErr: true},
		{in: "   ", wantErr: true},
		{in: "AA PL", wantErr: true},
		{in: "../etc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeSymbol(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSymbol)
				require.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSymbols(t *testing.T) {
	got, err := normalizeSymbols([]string{"aapl", " msft"})
	require.NoError(t, err)
	assert.Equal(t, "AAPL,MSFT", got)

	_, err = normalizeSymbols(nil)
	require.ErrorIs(t, err, ErrInvalidSymbol)

	_, err = normalizeSymbols([]string{"AAPL", ""})
	require.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestSetDateRange(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		wantErr  bool
		want     url.Values
	}{
		{name: "empty", want: url.Values{}},
		{name: "both", from: "2024-01-01", to: "2024-03-31", want: url.Values{"from": {"2024-01-01"}, "to": {"2024-03-31"}}},
		{name: "from only", from: "2024-01-01", want: url.Values{"from": {"2024-01-01"}}},
		{name: "same day", from: "2024-01-01", to: "2024-01-01", want: url.Values{"from": {"2024-01-01"}, "to": {"2024-01-01"}}},
		{name: "reversed", from: "2024-03-01", to: "2024-01-01", wantErr: true},
		{name: "bad from", from: "01/02/2024", wantErr: true},
		{name: "bad to", to: "2024-13-01", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := url.Values{}
			err := setDateRange(q, tt.from, tt.to)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, q)
		})
	}
}

func TestSetLimitAndPeriod(t *testing.T) {
	q := url.Values{}
	require.NoError(t, setLimit(q, 0))
	assert.Empty(t, q)
	require.NoError(t, setLimit(q, 5))
	assert.Equal(t, "5", q.Get("limit"))
	require.ErrorIs(t, setLimit(q, -1), ErrInvalidArgument)

	q = url.Values{}
	require.NoError(t, setPeriod(q, ""))
	assert.Empty(t, q)
	require.NoError(t, setPeriod(q, types.PeriodQuarter))
	assert.Equal(t, "quarter", q.Get("period"))
	require.ErrorIs(t, setPeriod(q, "monthly"), ErrInvalidArgument)
}
