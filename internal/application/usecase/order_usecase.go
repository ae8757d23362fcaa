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
)

// OrderUseCase casos de uso de órdenes. El total nunca se almacena: se deriva
// de cantidad × precio vigente al momento de la consulta.
type OrderUseCase struct {
	repo        repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, productRepo repository.ProductRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, productRepo: productRepo}
}

// Create crea una orden para el caller con estado pending.
func (uc *OrderUseCase) Create(clientID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.Quantity < 1 || it.ProductID == "" {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		Status:    entity.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, it := range in.Items {
		order.Items = append(order.Items, entity.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return uc.GetByID(order.ID, clientID, entity.RoleClient)
}

// GetByID obtiene una orden con su total derivado. Un cliente solo ve las suyas.
func (uc *OrderUseCase) GetByID(id, callerID string, callerRole entity.Role) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if !callerRole.IsStaff() && order.ClientID != callerID {
		return nil, domain.ErrForbidden
	}
	return toOrderResponse(order), nil
}

// List lista órdenes según criterios validados. Para callers no-staff se fuerza
// el scoping a sus propias órdenes, independiente de los criterios.
func (uc *OrderUseCase) List(criteria *listing.OrderCriteria, callerID string, callerRole entity.Role, limit, offset int) (*dto.OrderListResponse, error) {
	ownerID := ""
	if !callerRole.IsStaff() {
		ownerID = callerID
	}
	list, err := uc.repo.List(criteria, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.NewPage(limit, offset, len(items)),
	}, nil
}

// UpdateStatus cambia el estado de una orden (solo staff; el router lo garantiza).
func (uc *OrderUseCase) UpdateStatus(id, status string) error {
	if !entity.ValidOrderStatus(status) {
		return domain.ErrInvalidInput
	}
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateStatus(id, status)
}

// AddItem agrega una línea a una orden pendiente (solo staff; el router lo garantiza).
func (uc *OrderUseCase) AddItem(orderID string, in dto.OrderItemRequest) (*dto.OrderResponse, error) {
	if in.ProductID == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.repo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusPending {
		return nil, domain.ErrConflict
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	item := &entity.OrderItem{OrderID: orderID, ProductID: in.ProductID, Quantity: in.Quantity}
	if err := uc.repo.AddItem(item); err != nil {
		return nil, err
	}
	refreshed, err := uc.repo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(refreshed), nil
}

// RemoveItem elimina una línea de una orden pendiente.
func (uc *OrderUseCase) RemoveItem(orderID string, itemID int64) error {
	order, err := uc.repo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusPending {
		return domain.ErrConflict
	}
	found := false
	for _, it := range order.Items {
		if it.ID == itemID {
			found = true
			break
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	return uc.repo.RemoveItem(itemID)
}

// MarkPaid marca la orden como pagada (alimenta las métricas CRM).
func (uc *OrderUseCase) MarkPaid(id string) error {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.PaymentStatus {
		return domain.ErrConflict
	}
	return uc.repo.SetPaymentStatus(id, true)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:            o.ID,
		ClientID:      o.ClientID,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		Total:         o.Total(),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)),
		})
	}
	return resp
}
