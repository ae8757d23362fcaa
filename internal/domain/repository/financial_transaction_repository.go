package repository

import (
	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/listing"
)

// FinancialTransactionRepository define el puerto para transacciones financieras.
type FinancialTransactionRepository interface {
	Create(tx *entity.FinancialTransaction) error
	GetByID(id int64) (*entity.FinancialTransaction, error)
	List(criteria *listing.TransactionCriteria, limit, offset int) ([]*entity.FinancialTransaction, error)
	Update(tx *entity.FinancialTransaction) error
	Delete(id int64) error
}
