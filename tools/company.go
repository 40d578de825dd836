package tools

import (
	"context"

	"github.com/casualjim/fmp/types"
)

func (b *builder) company() {
	b.category = CategoryCompany
	c := b.client.Company

	add(b, "getCompanyProfile",
		"Company profile: name, sector, industry, CEO, employees, description, website and exchange.",
		func(ctx context.Context, in SymbolInput) (*types.CompanyProfile, error) {
			return c.Profile(ctx, in.Symbol)
		})
	add(b, "getKeyExecutives",
		"Key executives of a company with their titles and pay.",
		func(ctx context.Context, in SymbolInput) ([]types.KeyExecutive, error) {
			return c.Executives(ctx, in.Symbol)
		})
	add(b, "getExecutiveCompensation",
		"Executive compensation records from proxy filings: salary, bonus, stock awards and totals.",
		func(ctx context.Context, in SymbolInput) ([]types.ExecutiveCompensation, error) {
			return c.ExecutiveCompensation(ctx, in.Symbol)
		})
	add(b, "getCompanyNotes",
		"Notes (debt securities) issued by a company.",
		func(ctx context.Context, in SymbolInput) ([]types.CompanyNote, error) {
			return c.Notes(ctx, in.Symbol)
		})
	add(b, "getEmployeeCount",
		"Historical employee count as reported in filings.",
		func(ctx context.Context, in SymbolInput) ([]types.EmployeeCount, error) {
			return c.EmployeeCount(ctx, in.Symbol)
		})
	add(b, "getSharesFloat",
		"Free float and outstanding shares of a company.",
		func(ctx context.Context, in SymbolInput) (*types.SharesFloat, error) {
			return c.SharesFloat(ctx, in.Symbol)
		})
	add(b, "getEarningsCallTranscript",
		"Full transcript of an earnings call for a fiscal year and quarter.",
		func(ctx context.Context, in TranscriptInput) (*types.EarningsCallTranscript, error) {
			return c.Transcript(ctx, in.Symbol, in.Year, in.Quarter)
		})
	add(b, "getTranscriptDates",
		"Fiscal quarters for which earnings call transcripts are available.",
		func(ctx context.Context, in SymbolInput) ([]types.TranscriptDate, error) {
			return c.TranscriptDates(ctx, in.Symbol)
		})
}
