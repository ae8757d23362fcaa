package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ErnestoSESB/E-commerce/internal/domain/access"
	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
)

// La jerarquía ordenada reemplaza los flags booleanos: cualquier rol por encima
// de client es staff.
func TestHasCapability_JerarquiaDeRoles(t *testing.T) {
	cases := []struct {
		role     entity.Role
		required access.Capability
		want     bool
	}{
		{entity.RoleClient, access.CapabilityNone, true},
		{entity.RoleClient, access.CapabilityStaff, false},
		{entity.RoleEmployee, access.CapabilityStaff, true},
		{entity.RoleManager, access.CapabilityStaff, true},
		{entity.RoleAdmin, access.CapabilityStaff, true},
		{entity.Role(""), access.CapabilityStaff, false},
		{entity.Role("desconocido"), access.CapabilityStaff, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, access.HasCapability(tc.role, tc.required),
			"rol=%q capacidad=%v", tc.role, tc.required)
	}
}

// El mensaje de un PermissionError nombra los parámetros ofensores en orden.
func TestPermissionError_MensajeConCampos(t *testing.T) {
	err := &access.PermissionError{Dataset: "users", Fields: []string{"phone", "email"}}
	assert.Contains(t, err.Error(), "email, phone")
	assert.Contains(t, err.Error(), "users")

	whole := &access.PermissionError{Dataset: "financial_transactions"}
	assert.Contains(t, whole.Error(), "financial_transactions")
	assert.Contains(t, whole.Error(), "staff")
}
