package access

import (
	"sort"
	"strings"

	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
)

// Capability nivel de acceso mínimo que exige un dataset o un parámetro de filtro.
type Capability int

const (
	// CapabilityNone cualquier caller, incluso sin privilegios.
	CapabilityNone Capability = iota
	// CapabilityStaff requiere employee, manager o admin.
	CapabilityStaff
)

// HasCapability indica si el rol otorga la capacidad requerida.
// Reemplaza los chequeos dispersos de is_staff/is_superuser por una función pura
// sobre la jerarquía ordenada de roles.
func HasCapability(role entity.Role, required Capability) bool {
	switch required {
	case CapabilityNone:
		return true
	case CapabilityStaff:
		return role.IsStaff()
	default:
		return false
	}
}

// PermissionError error de autorización de filtros: nombra el dataset y, si aplica,
// los parámetros concretos que exigen una capacidad que el caller no tiene.
// Nunca se degrada a descartar el parámetro en silencio.
type PermissionError struct {
	Dataset string
	Fields  []string // vacío cuando el dataset completo está restringido
}

func (e *PermissionError) Error() string {
	if len(e.Fields) == 0 {
		return "acceso restringido: el dataset '" + e.Dataset + "' es exclusivo para staff"
	}
	fields := append([]string(nil), e.Fields...)
	sort.Strings(fields)
	return "acceso denegado: los parámetros [" + strings.Join(fields, ", ") +
		"] de '" + e.Dataset + "' requieren rol staff"
}
