package inventory_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErnestoSESB/E-commerce/internal/application/inventory"
	"github.com/ErnestoSESB/E-commerce/internal/domain"
	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/listing"
	"github.com/ErnestoSESB/E-commerce/internal/domain/repository"
	"github.com/ErnestoSESB/E-commerce/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: repos + TxRunner que ejecuta el callback sin transacción real.
// Suficiente para verificar la aritmética del libro y el orden de escritura.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products   map[string]*entity.Product
	variations map[string]*entity.ProductVariation
	movements  []*entity.InventoryMovement
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:   map[string]*entity.Product{},
		variations: map[string]*entity.ProductVariation{},
	}
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error    { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *fakeProductRepo) GetBySlug(slug string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) List(*listing.ProductCriteria, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) Delete(string) error          { return nil }
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *fakeProductRepo) UpdateStock(id string, stock int64) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = &stock
	return nil
}

type fakeVariationRepo struct{ s *fakeStore }

func (r *fakeVariationRepo) Create(v *entity.ProductVariation) error {
	r.s.variations[v.ID] = v
	return nil
}
func (r *fakeVariationRepo) GetByID(id string) (*entity.ProductVariation, error) {
	return r.s.variations[id], nil
}
func (r *fakeVariationRepo) ListByProduct(string) ([]*entity.ProductVariation, error) {
	return nil, nil
}
func (r *fakeVariationRepo) Update(*entity.ProductVariation) error { return nil }
func (r *fakeVariationRepo) Delete(string) error                   { return nil }
func (r *fakeVariationRepo) GetForUpdate(id string) (*entity.ProductVariation, error) {
	return r.s.variations[id], nil
}
func (r *fakeVariationRepo) UpdateStock(id string, stock int64) error {
	v, ok := r.s.variations[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.Stock = stock
	return nil
}

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.InventoryMovement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}
func (r *fakeMovementRepo) GetByID(string) (*entity.InventoryMovement, error) { return nil, nil }
func (r *fakeMovementRepo) List(*listing.MovementCriteria, int, int) ([]*entity.InventoryMovement, error) {
	return r.s.movements, nil
}
func (r *fakeMovementRepo) ListByTarget(productID string, variationID *string) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range r.s.movements {
		if m.ProductID != productID {
			continue
		}
		if variationID == nil && m.VariationID != nil {
			continue
		}
		if variationID != nil && (m.VariationID == nil || *m.VariationID != *variationID) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes compartidos.
type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
	variationRepo repository.VariationRepository,
) error) error {
	return fn(&fakeMovementRepo{r.s}, &fakeProductRepo{r.s}, &fakeVariationRepo{r.s})
}

func int64ptr(v int64) *int64 { return &v }

func buildUseCase(s *fakeStore) *inventory.ApplyMovementUseCase {
	return inventory.NewApplyMovementUseCase(
		&fakeTxRunner{s},
		&fakeProductRepo{s},
		&fakeVariationRepo{s},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ApplyMovement
// ──────────────────────────────────────────────────────────────────────────────

// Secuencia completa sobre un producto: 10 → OUT 15 (recorta en 0, registra 15)
// → ADJUST 7 → IN 3 → 10.
func TestApply_SecuenciaCompletaSobreProducto(t *testing.T) {
	s := newFakeStore()
	s.products["p1"] = &entity.Product{ID: "p1", Name: "Camiseta", Stock: int64ptr(10)}
	uc := buildUseCase(s)
	ctx := context.Background()

	stock, err := uc.Apply(ctx, inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 15, Reason: "venta mayorista", UserID: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), stock, "OUT por encima del stock debe recortar en cero")

	// El movimiento registra la cantidad solicitada, no la recortada.
	require.Len(t, s.movements, 1)
	assert.Equal(t, int64(15), s.movements[0].Quantity)
	assert.Equal(t, entity.MovementTypeOUT, s.movements[0].Type)

	stock, err = uc.Apply(ctx, inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeADJUST, Quantity: 7, Reason: "conteo físico", UserID: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), stock, "ADJUST fija el stock absoluto")

	stock, err = uc.Apply(ctx, inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 3, Reason: "reposición", UserID: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), stock, "IN suma al stock vigente")

	require.NotNil(t, s.products["p1"].Stock)
	assert.Equal(t, int64(10), *s.products["p1"].Stock)
	assert.Len(t, s.movements, 3, "cada operación deja su entrada en el libro")
}

// OUT exacto deja el stock en cero sin recorte.
func TestApply_OUTExactoNoRecorta(t *testing.T) {
	s := newFakeStore()
	s.products["p1"] = &entity.Product{ID: "p1", Stock: int64ptr(5)}
	uc := buildUseCase(s)

	stock, err := uc.Apply(context.Background(), inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 5, Reason: "venta", UserID: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), stock)
}

// El stock de una variación es independiente del contador del producto padre.
func TestApply_VariacionNoTocaStockDelPadre(t *testing.T) {
	s := newFakeStore()
	s.products["p1"] = &entity.Product{ID: "p1", Stock: int64ptr(100)}
	s.variations["v1"] = &entity.ProductVariation{ID: "v1", ProductID: "p1", Stock: 4}
	uc := buildUseCase(s)

	stock, err := uc.Apply(context.Background(), inventory.MovementInput{
		ProductID: "p1", VariationID: "v1", Type: entity.MovementTypeIN, Quantity: 6, Reason: "reposición", UserID: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), stock)
	assert.Equal(t, int64(10), s.variations["v1"].Stock)
	assert.Equal(t, int64(100), *s.products["p1"].Stock, "el contador del padre no se toca")

	require.Len(t, s.movements, 1)
	require.NotNil(t, s.movements[0].VariationID)
	assert.Equal(t, "v1", *s.movements[0].VariationID)
}

// Producto sin control de stock (Stock nil) rechaza movimientos.
func TestApply_ProductoSinControlDeStock(t *testing.T) {
	s := newFakeStore()
	s.products["p1"] = &entity.Product{ID: "p1", Stock: nil}
	uc := buildUseCase(s)

	_, err := uc.Apply(context.Background(), inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 1, Reason: "reposición", UserID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrStockUntracked)
	assert.Empty(t, s.movements, "un movimiento rechazado no entra al libro")
}

// Validaciones de entrada: tipo desconocido, cantidad negativa, razón vacía,
// objetivo inexistente y variación de otro producto.
func TestApply_EntradasInvalidas(t *testing.T) {
	s := newFakeStore()
	s.products["p1"] = &entity.Product{ID: "p1", Stock: int64ptr(10)}
	s.products["p2"] = &entity.Product{ID: "p2", Stock: int64ptr(10)}
	s.variations["v1"] = &entity.ProductVariation{ID: "v1", ProductID: "p2", Stock: 3}
	uc := buildUseCase(s)
	ctx := context.Background()

	cases := []struct {
		name  string
		input inventory.MovementInput
		want  error
	}{
		{"tipo desconocido", inventory.MovementInput{ProductID: "p1", Type: "TRANSFER", Quantity: 1, Reason: "x", UserID: "u1"}, domain.ErrInvalidInput},
		{"cantidad negativa", inventory.MovementInput{ProductID: "p1", Type: entity.MovementTypeIN, Quantity: -1, Reason: "x", UserID: "u1"}, domain.ErrInvalidInput},
		{"razón vacía", inventory.MovementInput{ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 1, Reason: "   ", UserID: "u1"}, domain.ErrInvalidInput},
		{"producto inexistente", inventory.MovementInput{ProductID: "nope", Type: entity.MovementTypeIN, Quantity: 1, Reason: "x", UserID: "u1"}, domain.ErrNotFound},
		{"variación de otro producto", inventory.MovementInput{ProductID: "p1", VariationID: "v1", Type: entity.MovementTypeIN, Quantity: 1, Reason: "x", UserID: "u1"}, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Apply(ctx, tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Empty(t, s.movements)
}

// Cantidad cero es válida: deja constancia en el libro sin mover el contador.
func TestApply_CantidadCeroEsValida(t *testing.T) {
	s := newFakeStore()
	s.products["p1"] = &entity.Product{ID: "p1", Stock: int64ptr(8)}
	uc := buildUseCase(s)

	stock, err := uc.Apply(context.Background(), inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 0, Reason: "anotación", UserID: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), stock)
	assert.Len(t, s.movements, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Reconcile
// ──────────────────────────────────────────────────────────────────────────────

func buildReconcile(s *fakeStore) *inventory.ReconcileUseCase {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return inventory.NewReconcileUseCase(&fakeTxRunner{s}, log)
}

// Tras una secuencia de movimientos aplicada por el caso de uso, el replay del
// libro coincide con el stock vivo.
func TestReconcile_LibroConsistenteTrasMovimientos(t *testing.T) {
	s := newFakeStore()
	s.products["p1"] = &entity.Product{ID: "p1", Stock: int64ptr(10)}
	uc := buildUseCase(s)
	ctx := context.Background()

	for _, mv := range []inventory.MovementInput{
		{ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 15, Reason: "venta", UserID: "u1"},
		{ProductID: "p1", Type: entity.MovementTypeADJUST, Quantity: 7, Reason: "conteo", UserID: "u1"},
		{ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 3, Reason: "reposición", UserID: "u1"},
	} {
		_, err := uc.Apply(ctx, mv)
		require.NoError(t, err)
	}

	report, err := buildReconcile(s).Reconcile(ctx, "p1", "", false)
	require.NoError(t, err)
	assert.True(t, report.Consistent)
	assert.Equal(t, int64(10), report.LedgerStock)
	assert.Equal(t, int64(10), report.LiveStock)
	assert.False(t, report.Repaired)
}

// Una escritura de stock por fuera del libro diverge: sin repair sale
// ConsistencyError con el reporte completo.
func TestReconcile_DivergenciaSinRepararDevuelveError(t *testing.T) {
	s := newFakeStore()
	s.products["p1"] = &entity.Product{ID: "p1", Stock: int64ptr(0)}
	uc := buildUseCase(s)
	ctx := context.Background()

	_, err := uc.Apply(ctx, inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 5, Reason: "reposición", UserID: "u1",
	})
	require.NoError(t, err)

	// Corrupción simulada: alguien tocó la fila sin pasar por el libro.
	s.products["p1"].Stock = int64ptr(99)

	report, err := buildReconcile(s).Reconcile(ctx, "p1", "", false)
	require.Error(t, err)
	var cErr *domain.ConsistencyError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, int64(5), cErr.LedgerStock)
	assert.Equal(t, int64(99), cErr.LiveStock)
	require.NotNil(t, report)
	assert.False(t, report.Consistent)
	assert.Equal(t, int64(99), *s.products["p1"].Stock, "sin repair el stock vivo no se toca")
}

// Con repair=true el stock vivo se restablece al valor del libro.
func TestReconcile_RepairRestableceElStock(t *testing.T) {
	s := newFakeStore()
	s.products["p1"] = &entity.Product{ID: "p1", Stock: int64ptr(0)}
	uc := buildUseCase(s)
	ctx := context.Background()

	_, err := uc.Apply(ctx, inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 5, Reason: "reposición", UserID: "u1",
	})
	require.NoError(t, err)
	s.products["p1"].Stock = int64ptr(99)

	report, err := buildReconcile(s).Reconcile(ctx, "p1", "", true)
	require.NoError(t, err)
	assert.True(t, report.Repaired)
	assert.Equal(t, int64(5), report.LedgerStock)
	assert.Equal(t, int64(5), *s.products["p1"].Stock)
}

// El replay de una variación ignora los movimientos del producto base y viceversa.
func TestReconcile_ReplaySeparadoPorObjetivo(t *testing.T) {
	s := newFakeStore()
	s.products["p1"] = &entity.Product{ID: "p1", Stock: int64ptr(0)}
	s.variations["v1"] = &entity.ProductVariation{ID: "v1", ProductID: "p1", Stock: 0}
	uc := buildUseCase(s)
	ctx := context.Background()

	_, err := uc.Apply(ctx, inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 10, Reason: "base", UserID: "u1",
	})
	require.NoError(t, err)
	_, err = uc.Apply(ctx, inventory.MovementInput{
		ProductID: "p1", VariationID: "v1", Type: entity.MovementTypeIN, Quantity: 3, Reason: "variación", UserID: "u1",
	})
	require.NoError(t, err)

	report, err := buildReconcile(s).Reconcile(ctx, "p1", "", false)
	require.NoError(t, err)
	assert.Equal(t, int64(10), report.LedgerStock)

	report, err = buildReconcile(s).Reconcile(ctx, "p1", "v1", false)
	require.NoError(t, err)
	assert.Equal(t, int64(3), report.LedgerStock)
}

// Objetivo sin control de stock no es conciliable.
func TestReconcile_ProductoSinControlDeStock(t *testing.T) {
	s := newFakeStore()
	s.products["p1"] = &entity.Product{ID: "p1", Stock: nil}

	_, err := buildReconcile(s).Reconcile(context.Background(), "p1", "", false)
	assert.ErrorIs(t, err, domain.ErrStockUntracked)
}
