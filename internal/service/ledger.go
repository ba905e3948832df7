package service

import (
	"github.com/rs/zerolog"

	"github.com/guttosm/cpfledger/internal/aggregate"
	"github.com/guttosm/cpfledger/internal/domain/models"
	"github.com/guttosm/cpfledger/internal/validation"
)

// Rejection is a record that failed validation, with the rules it broke.
type Rejection struct {
	Record models.Record
	Result validation.Result
}

// LedgerService ties validation and aggregation together: records are
// validated before admission and reports only ever see admitted ones.
type LedgerService interface {
	// Admit validates every record, keeping input order in both outputs.
	Admit(records []models.Record) (admitted []models.Transaction, rejected []Rejection)
	// Report computes all aggregates over admitted transactions. MinMax is
	// filled only when cpf is non-empty.
	Report(admitted []models.Transaction, cpf string) models.Report
}

type ledgerService struct {
	log zerolog.Logger
}

func NewLedgerService(log zerolog.Logger) LedgerService {
	return &ledgerService{log: log}
}

func (s *ledgerService) Admit(records []models.Record) ([]models.Transaction, []Rejection) {
	admitted := make([]models.Transaction, 0, len(records))
	var rejected []Rejection

	for _, rec := range records {
		res := validation.Validate(rec.Transaction)
		if res.Valid() {
			admitted = append(admitted, rec.Transaction)
			continue
		}
		rejected = append(rejected, Rejection{Record: rec, Result: res})

		reasons := make([]string, 0, len(res.Violations))
		for _, v := range res.Violations {
			reasons = append(reasons, v.String())
		}
		s.log.Warn().
			Str("source", rec.Source).
			Int("line", rec.Line).
			Str("cpf", rec.CPF).
			Strs("violations", reasons).
			Msg("transaction rejected")
	}

	s.log.Info().Int("admitted", len(admitted)).Int("rejected", len(rejected)).Msg("validation done")
	return admitted, rejected
}

func (s *ledgerService) Report(admitted []models.Transaction, cpf string) models.Report {
	r := models.Report{
		Balances:    aggregate.AccountBalances(admitted),
		TopBalances: aggregate.TopBalances(admitted),
		TopAverages: aggregate.TopAverages(admitted),
	}
	if cpf != "" {
		r.MinMax = aggregate.MinMaxForCPF(cpf, admitted)
		if len(r.MinMax) == 0 {
			s.log.Info().Str("cpf", cpf).Msg("cpf has no admitted transactions")
		}
	}
	s.log.Debug().Int("accounts", len(r.Balances)).Msg("report computed")
	return r
}
