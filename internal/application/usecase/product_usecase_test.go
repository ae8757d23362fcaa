package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErnestoSESB/E-commerce/internal/application/usecase"
	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/listing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetBySlug(slug string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(criteria *listing.ProductCriteria, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if criteria != nil && criteria.IsActive != nil && p.IsActive != *criteria.IsActive {
			continue
		}
		if criteria != nil && criteria.Name != "" && p.Name != criteria.Name {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) UpdateStock(id string, stock int64) error {
	if p, ok := r.products[id]; ok {
		p.Stock = &stock
	}
	return nil
}

type fakeVariationRepo struct {
	variations map[string]*entity.ProductVariation
}

func (r *fakeVariationRepo) Create(v *entity.ProductVariation) error {
	r.variations[v.ID] = v
	return nil
}

func (r *fakeVariationRepo) GetByID(id string) (*entity.ProductVariation, error) {
	return r.variations[id], nil
}

func (r *fakeVariationRepo) ListByProduct(productID string) ([]*entity.ProductVariation, error) {
	var out []*entity.ProductVariation
	for _, v := range r.variations {
		if v.ProductID == productID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVariationRepo) Update(v *entity.ProductVariation) error {
	r.variations[v.ID] = v
	return nil
}

func (r *fakeVariationRepo) Delete(id string) error {
	delete(r.variations, id)
	return nil
}

func (r *fakeVariationRepo) GetForUpdate(id string) (*entity.ProductVariation, error) {
	return r.variations[id], nil
}

func (r *fakeVariationRepo) UpdateStock(id string, stock int64) error {
	if v, ok := r.variations[id]; ok {
		v.Stock = stock
	}
	return nil
}

func buildProductUC(products ...*entity.Product) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(
		newFakeProductRepo(products...),
		&fakeVariationRepo{variations: map[string]*entity.ProductVariation{}},
	)
}

func producto(id, name string, active bool) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:        id,
		Name:      name,
		Slug:      name + "-" + id,
		Price:     decimal.NewFromInt(100),
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Scoping del catálogo: no-staff solo ve productos activos
// ──────────────────────────────────────────────────────────────────────────────

func TestList_ClienteSoloVeProductosActivos(t *testing.T) {
	uc := buildProductUC(
		producto("p1", "activo", true),
		producto("p2", "inactivo", false),
	)

	out, err := uc.List(&listing.ProductCriteria{}, entity.RoleClient, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "p1", out.Items[0].ID)
	assert.Equal(t, 1, out.Page.Count, "los metadatos de página reflejan las filas devueltas")

	// Caller anónimo (rol vacío) recibe el mismo scoping.
	out, err = uc.List(&listing.ProductCriteria{}, entity.Role(""), 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "p1", out.Items[0].ID)
}

func TestList_StaffVeInactivosSinFiltro(t *testing.T) {
	uc := buildProductUC(
		producto("p1", "activo", true),
		producto("p2", "inactivo", false),
	)

	out, err := uc.List(&listing.ProductCriteria{}, entity.RoleManager, 20, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 2, out.Page.Count)
}

func TestList_StaffPuedeFiltrarSoloInactivos(t *testing.T) {
	uc := buildProductUC(
		producto("p1", "activo", true),
		producto("p2", "inactivo", false),
	)

	inactive := false
	out, err := uc.List(&listing.ProductCriteria{IsActive: &inactive}, entity.RoleAdmin, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "p2", out.Items[0].ID)
}

func TestGetByID_InactivoOcultoParaCliente(t *testing.T) {
	uc := buildProductUC(producto("p2", "inactivo", false))

	out, err := uc.GetByID("p2", entity.RoleClient)
	require.NoError(t, err)
	assert.Nil(t, out, "para un cliente el producto desactivado no existe")

	out, err = uc.GetByID("p2", entity.RoleEmployee)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "p2", out.ID)
}

func TestGetBySlug_InactivoOcultoParaCliente(t *testing.T) {
	uc := buildProductUC(producto("p2", "inactivo", false))

	out, err := uc.GetBySlug("inactivo-p2", entity.Role(""))
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = uc.GetBySlug("inactivo-p2", entity.RoleAdmin)
	require.NoError(t, err)
	require.NotNil(t, out)
}
