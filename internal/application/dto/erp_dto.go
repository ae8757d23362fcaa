package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name        string `json:"name" validate:"required,max=150"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Notes       string `json:"notes"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ContactName string `json:"contact_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// CreateTransactionRequest entrada para registrar una transacción financiera.
type CreateTransactionRequest struct {
	Type        string          `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"required,max=200"`
	Category    string          `json:"category"`
	OrderID     *string         `json:"order_id"`
	SupplierID  *int64          `json:"supplier_id"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"`
	Date        time.Time       `json:"date"`
	OrderID     *string         `json:"order_id,omitempty"`
	SupplierID  *int64          `json:"supplier_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TransactionListResponse lista paginada de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
