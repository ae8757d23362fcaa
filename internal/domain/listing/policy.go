package listing

import (
	"sort"

	"github.com/ErnestoSESB/E-commerce/internal/domain/access"
	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
)

// Policy política de sensibilidad de un dataset: capacidad mínima para consultarlo
// y capacidad por parámetro de filtro. Un parámetro ausente del mapa es abierto.
// Añadir un dataset nuevo es un cambio de datos, no de código.
type Policy struct {
	Dataset  string
	Requires access.Capability
	Fields   map[string]access.Capability
}

// Políticas por dataset, derivadas del comportamiento observado de cada listado.
var (
	// ProductPolicy: los clientes no pueden filtrar por estado de activación.
	ProductPolicy = Policy{
		Dataset: "products",
		Fields: map[string]access.Capability{
			"is_active": access.CapabilityStaff,
		},
	}

	// OrderPolicy: filtrar por un cliente arbitrario es solo para staff.
	OrderPolicy = Policy{
		Dataset: "orders",
		Fields: map[string]access.Capability{
			"client": access.CapabilityStaff,
		},
	}

	// MovementPolicy: el libro de inventario no es consultable por clientes,
	// con o sin parámetros.
	MovementPolicy = Policy{
		Dataset:  "inventory_movements",
		Requires: access.CapabilityStaff,
	}

	// UserPolicy: los datos sensibles de usuarios solo los filtra staff.
	UserPolicy = Policy{
		Dataset: "users",
		Fields: map[string]access.Capability{
			"id":        access.CapabilityStaff,
			"email":     access.CapabilityStaff,
			"phone":     access.CapabilityStaff,
			"is_staff":  access.CapabilityStaff,
			"user_type": access.CapabilityStaff,
		},
	}

	// TransactionPolicy: dataset financiero completo restringido a staff.
	TransactionPolicy = Policy{
		Dataset:  "financial_transactions",
		Requires: access.CapabilityStaff,
	}
)

// Validate valida los parámetros presentes contra la política y el rol del caller.
// Corre antes de ejecutar la consulta y la corta por completo en caso de fallo:
// ninguna fila se toca. Un parámetro presente pero vacío se trata como ausente.
func Validate(values map[string]string, role entity.Role, p Policy) error {
	if !access.HasCapability(role, p.Requires) {
		return &access.PermissionError{Dataset: p.Dataset}
	}

	var offending []string
	for name, value := range values {
		if value == "" {
			continue
		}
		if !access.HasCapability(role, p.Fields[name]) {
			offending = append(offending, name)
		}
	}
	if len(offending) > 0 {
		sort.Strings(offending)
		return &access.PermissionError{Dataset: p.Dataset, Fields: offending}
	}
	return nil
}
