package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/casualjim/fmp/internal/httpx"
	"github.com/casualjim/fmp/types"
	"github.com/tidwall/gjson"
)

// CompanyAPI serves company fundamentals that are not financial statements.
type CompanyAPI struct{ c *httpx.Client }

func symbolQuery(s string) url.Values {
	return url.Values{"symbol": []string{s}}
}

// Profile returns the company profile.
func (a *CompanyAPI) Profile(ctx context.Context, symbol string) (*types.CompanyProfile, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return getFirst[types.CompanyProfile](ctx, a.c, httpx.V3, "profile/"+s, nil, "profile "+s)
}

// Executives lists the key executives.
func (a *CompanyAPI) Executives(ctx context.Context, symbol string) ([]types.KeyExecutive, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return getList[types.KeyExecutive](ctx, a.c, httpx.V3, "key-executives/"+s, nil)
}

// ExecutiveCompensation lists filed compensation records.
func (a *CompanyAPI) ExecutiveCompensation(ctx context.Context, symbol string) ([]types.ExecutiveCompensation, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return getList[types.ExecutiveCompensation](ctx, a.c, httpx.V4, "governance/executive_compensation", symbolQuery(s))
}

// Notes lists the notes (debt) issued by the company.
func (a *CompanyAPI) Notes(ctx context.Context, symbol string) ([]types.CompanyNote, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return getList[types.CompanyNote](ctx, a.c, httpx.V4, "company-notes", symbolQuery(s))
}

// EmployeeCount returns the headcount history, newest first.
func (a *CompanyAPI) EmployeeCount(ctx context.Context, symbol string) ([]types.EmployeeCount, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return getList[types.EmployeeCount](ctx, a.c, httpx.V4, "historical/employee_count", symbolQuery(s))
}

// SharesFloat returns the current free float.
func (a *CompanyAPI) SharesFloat(ctx context.Context, symbol string) (*types.SharesFloat, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return getFirst[types.SharesFloat](ctx, a.c, httpx.V4, "shares_float", symbolQuery(s), "shares float "+s)
}

// Transcript returns the earnings call transcript of one quarter.
func (a *CompanyAPI) Transcript(ctx context.Context, symbol string, year, quarter int) (*types.EarningsCallTranscript, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if year < 1900 {
		return nil, invalid("year %d out of range", year)
	}
	if quarter < 1 || quarter > 4 {
		return nil, invalid("quarter must be 1 to 4, got %d", quarter)
	}
	q := url.Values{
		"year":    []string{strconv.Itoa(year)},
		"quarter": []string{strconv.Itoa(quarter)},
	}
	return getFirst[types.EarningsCallTranscript](ctx, a.c, httpx.V3, "earning_call_transcript/"+s, q,
		fmt.Sprintf("transcript %s %dQ%d", s, year, quarter))
}

// TranscriptDates lists the available transcripts. FMP answers with
// [quarter, year, date] tuples.
func (a *CompanyAPI) TranscriptDates(ctx context.Context, symbol string) ([]types.TranscriptDate, error) {
	s, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	raw, err := a.c.GetRaw(ctx, httpx.V4, "earning_call_transcript", symbolQuery(s))
	if err != nil {
		return nil, err
	}
	rows := gjson.ParseBytes(raw).Array()
	out := make([]types.TranscriptDate, 0, len(rows))
	for _, row := range rows {
		cols := row.Array()
		if len(cols) < 3 {
			continue
		}
		out = append(out, types.TranscriptDate{
			Quarter: int(cols[0].Int()),
			Year:    int(cols[1].Int()),
			Date:    cols[2].String(),
		})
	}
	return out, nil
}
