package dto

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/cpfledger/internal/domain/models"
	"github.com/guttosm/cpfledger/internal/service"
)

// EntryResponse is one (cpf, value) pair as exposed to consumers.
type EntryResponse struct {
	CPF   string          `json:"cpf"`
	Value decimal.Decimal `json:"valor"`
}

// ReportResponse is the JSON document produced by --mode report.
//
// Fields match the output contract and may differ from internal models.
// MinMax is omitted unless a CPF was requested; a requested CPF with no
// admitted transaction yields an empty array.
type ReportResponse struct {
	RunID       string           `json:"run_id"`
	Admitted    int              `json:"admitted"`
	Rejected    int              `json:"rejected"`
	Balances    []EntryResponse  `json:"saldos"`
	TopBalances []EntryResponse  `json:"maiores_saldos"`
	TopAverages []EntryResponse  `json:"maiores_medias"`
	MinMax      *[]EntryResponse `json:"menor_maior,omitempty"`
}

// RejectionResponse describes one rejected line for --mode validate.
type RejectionResponse struct {
	Source  string `json:"source"`
	Line    int    `json:"line"`
	CPF     string `json:"cpf"`
	Message string `json:"message"`
}

// ValidationResponse is the JSON document produced by --mode validate.
type ValidationResponse struct {
	RunID      string              `json:"run_id"`
	Admitted   int                 `json:"admitted"`
	Rejections []RejectionResponse `json:"rejections"`
}

// NewReportResponse maps a computed report onto its JSON contract.
func NewReportResponse(runID string, admitted, rejected int, r models.Report) ReportResponse {
	resp := ReportResponse{
		RunID:       runID,
		Admitted:    admitted,
		Rejected:    rejected,
		Balances:    toEntries(r.Balances),
		TopBalances: toEntries(r.TopBalances),
		TopAverages: toEntries(r.TopAverages),
	}
	if r.MinMax != nil {
		mm := toEntries(r.MinMax)
		resp.MinMax = &mm
	}
	return resp
}

// NewValidationResponse lists every rejection with its rendered message.
func NewValidationResponse(runID string, admitted int, rejected []service.Rejection) ValidationResponse {
	out := make([]RejectionResponse, 0, len(rejected))
	for _, r := range rejected {
		out = append(out, RejectionResponse{
			Source:  r.Record.Source,
			Line:    r.Record.Line,
			CPF:     r.Record.CPF,
			Message: r.Result.Message(),
		})
	}
	return ValidationResponse{RunID: runID, Admitted: admitted, Rejections: out}
}

func toEntries(in []models.Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(in))
	for _, e := range in {
		out = append(out, EntryResponse{CPF: e.CPF, Value: e.Value})
	}
	return out
}
