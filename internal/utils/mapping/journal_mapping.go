package mapping

import (
	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/models"
)

// ToModelJournal converts a domain Journal to a model Journal
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:          d.JournalID,
		CompanyID:          d.CompanyID,
		JournalDate:        domain.DateOf(d.JournalDate),
		Description:        d.Description,
		CurrencyCode:       d.CurrencyCode,
		SourceKind:         string(d.SourceKind),
		Status:             string(d.Status),
		OriginalJournalID:  nullString(d.OriginalJournalID),
		ReversingJournalID: nullString(d.ReversingJournalID),
		Amount:             d.Amount,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournal converts a model Journal to a domain Journal
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:          m.JournalID,
		CompanyID:          m.CompanyID,
		JournalDate:        domain.DateOf(m.JournalDate),
		Description:        m.Description,
		CurrencyCode:       m.CurrencyCode,
		SourceKind:         domain.SourceKind(m.SourceKind),
		Status:             domain.JournalStatus(m.Status),
		OriginalJournalID:  stringPtr(m.OriginalJournalID),
		ReversingJournalID: stringPtr(m.ReversingJournalID),
		Amount:             m.Amount,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		JournalID:       d.JournalID,
		AccountID:       d.AccountID,
		Amount:          d.Amount,
		TransactionType: string(d.TransactionType),
		CurrencyCode:    d.CurrencyCode,
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		JournalID:       m.JournalID,
		AccountID:       m.AccountID,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		CurrencyCode:    m.CurrencyCode,
		Notes:           m.Notes,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
