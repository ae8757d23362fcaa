package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción financiera.
const (
	TransactionIncome  = "INCOME"
	TransactionExpense = "EXPENSE"
)

// ValidTransactionType indica si el tipo es uno de los conocidos.
func ValidTransactionType(t string) bool {
	return t == TransactionIncome || t == TransactionExpense
}

// FinancialTransaction ingreso o gasto, opcionalmente ligado a una orden o un proveedor.
type FinancialTransaction struct {
	ID          int64
	Type        string
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
	OrderID     *string
	SupplierID  *int64
	CreatedAt   time.Time
}
