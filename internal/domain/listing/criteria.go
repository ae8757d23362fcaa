package listing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ErnestoSESB/E-commerce/internal/domain"
	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
)

// Criterios normalizados y tipados, listos para la capa de consulta.
// Cada Parse* valida primero la política (corto circuito en fallo de permisos)
// y luego coacciona tipos: cotas numéricas, cotas de fecha, substring
// case-insensitive y enums de coincidencia exacta.

// ProductCriteria criterios de listado de productos.
type ProductCriteria struct {
	Name     string // icontains
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	IsActive *bool
}

// ParseProductCriteria valida y normaliza filtros de productos.
func ParseProductCriteria(values map[string]string, role entity.Role) (*ProductCriteria, error) {
	if err := Validate(values, role, ProductPolicy); err != nil {
		return nil, err
	}
	c := &ProductCriteria{Name: values["name"]}
	var err error
	if c.MinPrice, err = parseDecimal(values, "min_price"); err != nil {
		return nil, err
	}
	if c.MaxPrice, err = parseDecimal(values, "max_price"); err != nil {
		return nil, err
	}
	if c.IsActive, err = parseBool(values, "is_active"); err != nil {
		return nil, err
	}
	return c, nil
}

// OrderCriteria criterios de listado de órdenes.
type OrderCriteria struct {
	Status   string // iexact, enum
	ClientID string
	MinDate  *time.Time
	MaxDate  *time.Time
}

// ParseOrderCriteria valida y normaliza filtros de órdenes.
func ParseOrderCriteria(values map[string]string, role entity.Role) (*OrderCriteria, error) {
	if err := Validate(values, role, OrderPolicy); err != nil {
		return nil, err
	}
	c := &OrderCriteria{ClientID: values["client"]}
	if s := values["status"]; s != "" {
		s = strings.ToLower(s)
		if !entity.ValidOrderStatus(s) {
			return nil, invalidParam("status", s)
		}
		c.Status = s
	}
	var err error
	if c.MinDate, err = parseDate(values, "min_date"); err != nil {
		return nil, err
	}
	if c.MaxDate, err = parseDate(values, "max_date"); err != nil {
		return nil, err
	}
	return c, nil
}

// MovementCriteria criterios de listado del libro de inventario.
type MovementCriteria struct {
	ProductID string
	Type      string // enum IN/OUT/ADJUST
	MinDate   *time.Time
	MaxDate   *time.Time
}

// ParseMovementCriteria valida y normaliza filtros del libro de inventario.
// La política rechaza a cualquier caller no-staff aunque no envíe parámetros.
func ParseMovementCriteria(values map[string]string, role entity.Role) (*MovementCriteria, error) {
	if err := Validate(values, role, MovementPolicy); err != nil {
		return nil, err
	}
	c := &MovementCriteria{ProductID: values["product"]}
	if t := values["type"]; t != "" {
		t = strings.ToUpper(t)
		if !entity.ValidMovementType(t) {
			return nil, invalidParam("type", t)
		}
		c.Type = t
	}
	var err error
	if c.MinDate, err = parseDate(values, "min_date"); err != nil {
		return nil, err
	}
	if c.MaxDate, err = parseDate(values, "max_date"); err != nil {
		return nil, err
	}
	return c, nil
}

// UserCriteria criterios de listado de usuarios.
type UserCriteria struct {
	ID       string
	Email    string
	Phone    string
	Name     string // icontains; el único campo abierto
	UserType string
	IsStaff  *bool
}

// ParseUserCriteria valida y normaliza filtros de usuarios.
func ParseUserCriteria(values map[string]string, role entity.Role) (*UserCriteria, error) {
	if err := Validate(values, role, UserPolicy); err != nil {
		return nil, err
	}
	c := &UserCriteria{
		ID:    values["id"],
		Email: values["email"],
		Phone: values["phone"],
		Name:  values["name"],
	}
	if t := values["user_type"]; t != "" {
		if !entity.Role(t).Valid() {
			return nil, invalidParam("user_type", t)
		}
		c.UserType = t
	}
	var err error
	if c.IsStaff, err = parseBool(values, "is_staff"); err != nil {
		return nil, err
	}
	return c, nil
}

// TransactionCriteria criterios de listado de transacciones financieras.
type TransactionCriteria struct {
	Type      string // enum INCOME/EXPENSE
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	MinDate   *time.Time
	MaxDate   *time.Time
}

// ParseTransactionCriteria valida y normaliza filtros financieros.
// La política restringe el dataset completo a staff.
func ParseTransactionCriteria(values map[string]string, role entity.Role) (*TransactionCriteria, error) {
	if err := Validate(values, role, TransactionPolicy); err != nil {
		return nil, err
	}
	c := &TransactionCriteria{}
	if t := values["type"]; t != "" {
		t = strings.ToUpper(t)
		if !entity.ValidTransactionType(t) {
			return nil, invalidParam("type", t)
		}
		c.Type = t
	}
	var err error
	if c.MinAmount, err = parseDecimal(values, "min_amount"); err != nil {
		return nil, err
	}
	if c.MaxAmount, err = parseDecimal(values, "max_amount"); err != nil {
		return nil, err
	}
	if c.MinDate, err = parseDate(values, "min_date"); err != nil {
		return nil, err
	}
	if c.MaxDate, err = parseDate(values, "max_date"); err != nil {
		return nil, err
	}
	return c, nil
}

// ── coerción de tipos ─────────────────────────────────────────────────────────

func parseDecimal(values map[string]string, name string) (*decimal.Decimal, error) {
	s := values[name]
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, invalidParam(name, s)
	}
	return &d, nil
}

func parseDate(values map[string]string, name string) (*time.Time, error) {
	s := values[name]
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, invalidParam(name, s)
	}
	return &t, nil
}

func parseBool(values map[string]string, name string) (*bool, error) {
	s := values[name]
	if s == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, invalidParam(name, s)
	}
	return &b, nil
}

func invalidParam(name, value string) error {
	return fmt.Errorf("%w: parámetro %q con valor %q", domain.ErrInvalidInput, name, value)
}
