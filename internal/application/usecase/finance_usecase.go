package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ErnestoSESB/E-commerce/internal/application/dto"
	"github.com/ErnestoSESB/E-commerce/internal/domain"
	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/listing"
	"github.com/ErnestoSESB/E-commerce/internal/domain/repository"
)

// FinanceUseCase registro de ingresos y gastos (módulo interno del staff).
type FinanceUseCase struct {
	repo repository.FinancialTransactionRepository
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(repo repository.FinancialTransactionRepository) *FinanceUseCase {
	return &FinanceUseCase{repo: repo}
}

// Create registra una transacción financiera.
func (uc *FinanceUseCase) Create(in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if !entity.ValidTransactionType(in.Type) || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	tx := &entity.FinancialTransaction{
		Type:        in.Type,
		Amount:      in.Amount,
		Description: in.Description,
		Category:    in.Category,
		Date:        now,
		OrderID:     in.OrderID,
		SupplierID:  in.SupplierID,
		CreatedAt:   now,
	}
	if err := uc.repo.Create(tx); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// GetByID obtiene una transacción.
func (uc *FinanceUseCase) GetByID(id int64) (*dto.TransactionResponse, error) {
	tx, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, nil
	}
	return toTransactionResponse(tx), nil
}

// List lista transacciones según criterios validados.
func (uc *FinanceUseCase) List(criteria *listing.TransactionCriteria, limit, offset int) (*dto.TransactionListResponse, error) {
	list, err := uc.repo.List(criteria, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		items = append(items, *toTransactionResponse(tx))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.NewPage(limit, offset, len(items)),
	}, nil
}

// Delete elimina una transacción.
func (uc *FinanceUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toTransactionResponse(tx *entity.FinancialTransaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          tx.ID,
		Type:        tx.Type,
		Amount:      tx.Amount,
		Description: tx.Description,
		Category:    tx.Category,
		Date:        tx.Date,
		OrderID:     tx.OrderID,
		SupplierID:  tx.SupplierID,
		CreatedAt:   tx.CreatedAt,
	}
}
