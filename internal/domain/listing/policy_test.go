package listing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErnestoSESB/E-commerce/internal/domain"
	"github.com/ErnestoSESB/E-commerce/internal/domain/access"
	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/listing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Validate — capacidad por dataset y por parámetro
// ──────────────────────────────────────────────────────────────────────────────

// Un cliente no puede filtrar productos por is_active; cualquier rol staff sí.
func TestValidate_IsActiveExigeStaff(t *testing.T) {
	values := map[string]string{"is_active": "true"}

	err := listing.Validate(values, entity.RoleClient, listing.ProductPolicy)
	require.Error(t, err)
	var permErr *access.PermissionError
	require.ErrorAs(t, err, &permErr)
	assert.Equal(t, "products", permErr.Dataset)
	assert.Equal(t, []string{"is_active"}, permErr.Fields)

	for _, role := range []entity.Role{entity.RoleEmployee, entity.RoleManager, entity.RoleAdmin} {
		assert.NoError(t, listing.Validate(values, role, listing.ProductPolicy),
			"el rol %s es staff y debe poder filtrar por is_active", role)
	}
}

// Los parámetros abiertos no exigen nada, incluso combinados.
func TestValidate_ParametrosAbiertosParaCliente(t *testing.T) {
	values := map[string]string{"name": "camiseta", "min_price": "10", "max_price": "50"}
	assert.NoError(t, listing.Validate(values, entity.RoleClient, listing.ProductPolicy))
}

// Todos los parámetros ofensores se reportan juntos y ordenados, no solo el primero.
func TestValidate_ReportaTodosLosOfensoresOrdenados(t *testing.T) {
	values := map[string]string{
		"email":     "a@b.c",
		"id":        "u1",
		"name":      "ana", // abierto, no debe aparecer
		"user_type": "admin",
	}
	err := listing.Validate(values, entity.RoleClient, listing.UserPolicy)
	var permErr *access.PermissionError
	require.ErrorAs(t, err, &permErr)
	assert.Equal(t, []string{"email", "id", "user_type"}, permErr.Fields)
}

// Un parámetro presente pero vacío se trata como ausente.
func TestValidate_ParametroVacioNoCuenta(t *testing.T) {
	values := map[string]string{"is_active": ""}
	assert.NoError(t, listing.Validate(values, entity.RoleClient, listing.ProductPolicy))
}

// El libro de inventario se rechaza para clientes incluso sin parámetros.
func TestValidate_DatasetCompletoRestringido(t *testing.T) {
	err := listing.Validate(map[string]string{}, entity.RoleClient, listing.MovementPolicy)
	var permErr *access.PermissionError
	require.ErrorAs(t, err, &permErr)
	assert.Equal(t, "inventory_movements", permErr.Dataset)
	assert.Empty(t, permErr.Fields, "restricción de dataset completo, sin campos puntuales")

	assert.NoError(t, listing.Validate(map[string]string{}, entity.RoleEmployee, listing.MovementPolicy))
}

// El dataset financiero completo exige staff.
func TestValidate_FinanzasSoloStaff(t *testing.T) {
	err := listing.Validate(map[string]string{"type": "INCOME"}, entity.RoleClient, listing.TransactionPolicy)
	var permErr *access.PermissionError
	require.ErrorAs(t, err, &permErr)
	assert.Equal(t, "financial_transactions", permErr.Dataset)
}

// Filtrar órdenes por cliente arbitrario es de staff; status es abierto.
func TestValidate_OrdenesFiltroClient(t *testing.T) {
	assert.Error(t, listing.Validate(map[string]string{"client": "u2"}, entity.RoleClient, listing.OrderPolicy))
	assert.NoError(t, listing.Validate(map[string]string{"status": "pending"}, entity.RoleClient, listing.OrderPolicy))
	assert.NoError(t, listing.Validate(map[string]string{"client": "u2"}, entity.RoleManager, listing.OrderPolicy))
}

// ──────────────────────────────────────────────────────────────────────────────
// Parse* — permisos primero, coerción después
// ──────────────────────────────────────────────────────────────────────────────

// El fallo de permisos corta antes que el de coerción: un valor malformado en un
// parámetro restringido sale como 403, no como 400.
func TestParse_PermisoAntesQueCoercion(t *testing.T) {
	values := map[string]string{"is_active": "definitivamente-no-es-bool"}
	_, err := listing.ParseProductCriteria(values, entity.RoleClient)
	var permErr *access.PermissionError
	assert.ErrorAs(t, err, &permErr)
}

func TestParseProductCriteria_CoercionDeTipos(t *testing.T) {
	values := map[string]string{"name": "polo", "min_price": "10.50", "is_active": "true"}
	c, err := listing.ParseProductCriteria(values, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "polo", c.Name)
	require.NotNil(t, c.MinPrice)
	assert.Equal(t, "10.5", c.MinPrice.String())
	require.NotNil(t, c.IsActive)
	assert.True(t, *c.IsActive)
	assert.Nil(t, c.MaxPrice)
}

func TestParseProductCriteria_PrecioMalformado(t *testing.T) {
	_, err := listing.ParseProductCriteria(map[string]string{"min_price": "abc"}, entity.RoleClient)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseOrderCriteria_EstadoNormalizadoYValidado(t *testing.T) {
	c, err := listing.ParseOrderCriteria(map[string]string{"status": "PENDING"}, entity.RoleClient)
	require.NoError(t, err)
	assert.Equal(t, "pending", c.Status, "el estado se normaliza a minúsculas")

	_, err = listing.ParseOrderCriteria(map[string]string{"status": "volando"}, entity.RoleClient)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseOrderCriteria_FechasISO(t *testing.T) {
	c, err := listing.ParseOrderCriteria(map[string]string{"min_date": "2025-01-15"}, entity.RoleClient)
	require.NoError(t, err)
	require.NotNil(t, c.MinDate)
	assert.Equal(t, 2025, c.MinDate.Year())

	_, err = listing.ParseOrderCriteria(map[string]string{"min_date": "15/01/2025"}, entity.RoleClient)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseMovementCriteria_TipoNormalizado(t *testing.T) {
	c, err := listing.ParseMovementCriteria(map[string]string{"type": "out"}, entity.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, "OUT", c.Type, "el tipo se normaliza a mayúsculas")

	_, err = listing.ParseMovementCriteria(map[string]string{"type": "TRANSFER"}, entity.RoleEmployee)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseUserCriteria_UserTypeDesconocido(t *testing.T) {
	_, err := listing.ParseUserCriteria(map[string]string{"user_type": "superheroe"}, entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseTransactionCriteria_StaffConFiltros(t *testing.T) {
	values := map[string]string{"type": "expense", "min_amount": "100", "max_date": "2025-12-31"}
	c, err := listing.ParseTransactionCriteria(values, entity.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, "EXPENSE", c.Type)
	require.NotNil(t, c.MinAmount)
	require.NotNil(t, c.MaxDate)
}
