package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ErnestoSESB/E-commerce/internal/application/dto"
	"github.com/ErnestoSESB/E-commerce/internal/domain"
	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/listing"
	"github.com/ErnestoSESB/E-commerce/internal/domain/repository"
	"github.com/ErnestoSESB/E-commerce/pkg/slug"
)

// ProductUseCase casos de uso CRUD para productos y variaciones.
// El stock se maneja vía movimientos de inventario, nunca por Update.
type ProductUseCase struct {
	repo          repository.ProductRepository
	variationRepo repository.VariationRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, variationRepo repository.VariationRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, variationRepo: variationRepo}
}

// Create crea un producto. El slug se deriva del nombre más un prefijo del ID.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now()
	id := uuid.New().String()
	product := &entity.Product{
		ID:          id,
		Name:        in.Name,
		Slug:        slug.WithID(in.Name, id),
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Para callers no-staff los productos
// desactivados no existen: el catálogo público solo expone productos activos.
func (uc *ProductUseCase) GetByID(id string, callerRole entity.Role) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if !product.IsActive && !callerRole.IsStaff() {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// GetBySlug obtiene un producto por su slug (lookup del catálogo público).
// Mismo scoping que GetByID: no-staff solo ve productos activos.
func (uc *ProductUseCase) GetBySlug(slug string, callerRole entity.Role) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if !product.IsActive && !callerRole.IsStaff() {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. No toca Stock (se maneja vía movimientos).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil && *in.Name != "" {
		product.Name = *in.Name
		product.Slug = slug.WithID(*in.Name, product.ID)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos según criterios ya validados por la política de filtros.
// Para callers no-staff el scoping fuerza is_active=true independiente de los
// criterios: la política les impide filtrar por ese campo, así que aquí se fija.
func (uc *ProductUseCase) List(criteria *listing.ProductCriteria, callerRole entity.Role, limit, offset int) (*dto.ProductListResponse, error) {
	if !callerRole.IsStaff() {
		if criteria == nil {
			criteria = &listing.ProductCriteria{}
		}
		active := true
		criteria.IsActive = &active
	}
	list, err := uc.repo.List(criteria, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.NewPage(limit, offset, len(items)),
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// CreateVariation crea una variación de un producto existente.
func (uc *ProductUseCase) CreateVariation(in dto.CreateVariationRequest) (*dto.VariationResponse, error) {
	if in.Name == "" || in.Value == "" || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	variation := &entity.ProductVariation{
		ID:            uuid.New().String(),
		ProductID:     in.ProductID,
		Name:          in.Name,
		Value:         in.Value,
		PriceOverride: in.PriceOverride,
		Stock:         in.Stock,
	}
	if err := uc.variationRepo.Create(variation); err != nil {
		return nil, err
	}
	return toVariationResponse(variation), nil
}

// ListVariations lista las variaciones de un producto.
func (uc *ProductUseCase) ListVariations(productID string) ([]dto.VariationResponse, error) {
	list, err := uc.variationRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VariationResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVariationResponse(v))
	}
	return items, nil
}

// UpdateVariation actualiza nombre, valor y precio de una variación. El stock
// solo cambia vía movimientos de inventario.
func (uc *ProductUseCase) UpdateVariation(id string, in dto.UpdateVariationRequest) (*dto.VariationResponse, error) {
	if in.Name == "" || in.Value == "" {
		return nil, domain.ErrInvalidInput
	}
	variation, err := uc.variationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if variation == nil {
		return nil, domain.ErrNotFound
	}
	variation.Name = in.Name
	variation.Value = in.Value
	variation.PriceOverride = in.PriceOverride
	if err := uc.variationRepo.Update(variation); err != nil {
		return nil, err
	}
	return toVariationResponse(variation), nil
}

// DeleteVariation elimina una variación.
func (uc *ProductUseCase) DeleteVariation(id string) error {
	return uc.variationRepo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toVariationResponse(v *entity.ProductVariation) *dto.VariationResponse {
	if v == nil {
		return nil
	}
	return &dto.VariationResponse{
		ID:            v.ID,
		ProductID:     v.ProductID,
		Name:          v.Name,
		Value:         v.Value,
		PriceOverride: v.PriceOverride,
		Stock:         v.Stock,
	}
}
