package reporting

import (
	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/utils/accounting"
)

// newFigure rounds an amount for presentation and, when prior is given,
// fills the comparative columns.
func newFigure(current decimal.Decimal, prior *decimal.Decimal) domain.Figure {
	f := domain.Figure{Amount: accounting.RoundMoney(current)}
	if prior == nil {
		return f
	}
	p := accounting.RoundMoney(*prior)
	v, pct := accounting.Variance(current, *prior)
	v = accounting.RoundMoney(v)
	f.Prior = &p
	f.Variance = &v
	f.VariancePercent = pct
	return f
}

// sectionBuilder accumulates unrounded line amounts so subtotals are exact.
type sectionBuilder struct {
	key, label, ifrs string
	comparative      bool
	lines            []domain.StatementLine
	current          decimal.Decimal
	prior            decimal.Decimal
	raw              []lineAmounts
}

type lineAmounts struct {
	current, prior decimal.Decimal
}

func newSection(key, label, ifrs string, comparative bool) *sectionBuilder {
	return &sectionBuilder{key: key, label: label, ifrs: ifrs, comparative: comparative}
}

// add appends a line unless both amounts are zero.
func (s *sectionBuilder) add(acc domain.Account, name string, current, prior decimal.Decimal) {
	if current.IsZero() && (!s.comparative || prior.IsZero()) {
		return
	}
	if name == "" {
		name = acc.Name
	}
	s.lines = append(s.lines, domain.StatementLine{
		AccountID: acc.AccountID,
		Code:      acc.Code,
		Name:      name,
		Category:  acc.Category,
	})
	s.raw = append(s.raw, lineAmounts{current: current, prior: prior})
	s.current = s.current.Add(current)
	s.prior = s.prior.Add(prior)
}

// addSynthetic appends a computed line that has no backing account.
func (s *sectionBuilder) addSynthetic(name string, current, prior decimal.Decimal) {
	s.add(domain.Account{}, name, current, prior)
}

func (s *sectionBuilder) priorPtr() *decimal.Decimal {
	if !s.comparative {
		return nil
	}
	p := s.prior
	return &p
}

func (s *sectionBuilder) build() domain.StatementSection {
	lines := make([]domain.StatementLine, len(s.lines))
	for i, l := range s.lines {
		var prior *decimal.Decimal
		if s.comparative {
			p := s.raw[i].prior
			prior = &p
		}
		l.Figure = newFigure(s.raw[i].current, prior)
		lines[i] = l
	}
	return domain.StatementSection{
		Key:           s.key,
		Label:         s.label,
		IFRSReference: s.ifrs,
		Lines:         lines,
		Total:         newFigure(s.current, s.priorPtr()),
	}
}

// derived computes a subtotal from already accumulated sections.
func derived(comparative bool, current, prior decimal.Decimal) domain.Figure {
	if !comparative {
		return newFigure(current, nil)
	}
	return newFigure(current, &prior)
}

func newResult[T any](kind domain.StatementKind, w *Workbook) domain.StatementResult[T] {
	return domain.StatementResult[T]{
		Statement:  kind,
		Available:  true,
		Validation: w.Issues(),
	}
}

func unavailable[T any](kind domain.StatementKind, w *Workbook, reason string) domain.StatementResult[T] {
	res := newResult[T](kind, w)
	res.Available = false
	res.UnavailableReason = reason
	res.Validation = append(res.Validation, domain.ValidationIssue{
		Severity:   domain.SeverityInfo,
		Code:       "STATEMENT_UNAVAILABLE",
		Message:    reason,
		Suggestion: "Switch the company to full accounting mode with a complete chart of accounts",
	})
	return res
}

const simplifiedReason = "Statement requires asset, liability and equity accounts, which do not exist in simplified accounting mode"
