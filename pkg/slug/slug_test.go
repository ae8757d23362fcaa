package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ErnestoSESB/E-commerce/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Camiseta Básica", "camiseta-basica"},
		{"Niño & Niña 2024", "nino-nina-2024"},
		{"  espacios   múltiples  ", "espacios-multiples"},
		{"¡Señal!", "senal"},
		{"UPPER", "upper"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, slug.Make(tc.in), "entrada %q", tc.in)
	}
}

func TestWithID(t *testing.T) {
	id := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	assert.Equal(t, "polo-azul-a1b2c3d4", slug.WithID("Polo Azul", id))
	// Nombre que colapsa a vacío: queda solo el prefijo del ID.
	assert.Equal(t, "a1b2c3d4", slug.WithID("¡¡¡", id))
	// ID corto se usa completo.
	assert.Equal(t, "polo-x1", slug.WithID("Polo", "x1"))
}
