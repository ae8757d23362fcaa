package usecase

import (
	"time"

	"github.com/ErnestoSESB/E-commerce/internal/application/dto"
	"github.com/ErnestoSESB/E-commerce/internal/domain"
	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/repository"
)

// CRMUseCase etiquetas, perfiles e interacciones de clientes. Todo el módulo es
// de uso interno del staff; el router aplica la restricción.
type CRMUseCase struct {
	tagRepo         repository.CRMTagRepository
	profileRepo     repository.CustomerProfileRepository
	interactionRepo repository.CRMInteractionRepository
	userRepo        repository.UserRepository
	orderRepo       repository.OrderRepository
}

// NewCRMUseCase construye el caso de uso.
func NewCRMUseCase(
	tagRepo repository.CRMTagRepository,
	profileRepo repository.CustomerProfileRepository,
	interactionRepo repository.CRMInteractionRepository,
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
) *CRMUseCase {
	return &CRMUseCase{
		tagRepo:         tagRepo,
		profileRepo:     profileRepo,
		interactionRepo: interactionRepo,
		userRepo:        userRepo,
		orderRepo:       orderRepo,
	}
}

// CreateTag crea una etiqueta de segmentación.
func (uc *CRMUseCase) CreateTag(in dto.CreateTagRequest) (*dto.TagResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	tag := &entity.CRMTag{Name: in.Name, Color: in.Color}
	if err := uc.tagRepo.Create(tag); err != nil {
		return nil, err
	}
	return toTagResponse(tag), nil
}

// ListTags lista todas las etiquetas.
func (uc *CRMUseCase) ListTags() ([]dto.TagResponse, error) {
	list, err := uc.tagRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TagResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTagResponse(t))
	}
	return items, nil
}

// DeleteTag elimina una etiqueta (se desasocia de los perfiles que la tengan).
func (uc *CRMUseCase) DeleteTag(id int64) error {
	return uc.tagRepo.Delete(id)
}

// GetProfile obtiene el perfil CRM de un cliente, creándolo si no existe.
func (uc *CRMUseCase) GetProfile(userID string) (*dto.ProfileResponse, error) {
	profile, err := uc.getOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// ListProfiles lista perfiles CRM paginados.
func (uc *CRMUseCase) ListProfiles(limit, offset int) ([]dto.ProfileResponse, error) {
	list, err := uc.profileRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProfileResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProfileResponse(p))
	}
	return items, nil
}

// UpdateProfile edita notas internas y/o reasigna etiquetas.
func (uc *CRMUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := uc.getOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}
	if in.InternalNotes != nil {
		profile.InternalNotes = *in.InternalNotes
		if err := uc.profileRepo.Update(profile); err != nil {
			return nil, err
		}
	}
	if in.TagIDs != nil {
		if err := uc.profileRepo.SetTags(profile.ID, in.TagIDs); err != nil {
			return nil, err
		}
	}
	refreshed, err := uc.profileRepo.GetByID(profile.ID)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(refreshed), nil
}

// RefreshMetrics recalcula las métricas del perfil desde las órdenes pagadas
// del cliente: conteo, valor de vida y fecha de última compra.
func (uc *CRMUseCase) RefreshMetrics(userID string) (*dto.ProfileResponse, error) {
	profile, err := uc.getOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}
	stats, err := uc.orderRepo.StatsByClient(userID)
	if err != nil {
		return nil, err
	}
	profile.TotalOrders = stats.Count
	profile.LifetimeValue = stats.LifetimeValue
	profile.LastPurchaseAt = stats.LastPurchaseAt
	if err := uc.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// CreateInteraction registra un contacto con el cliente; el agente es el caller.
func (uc *CRMUseCase) CreateInteraction(agentID string, in dto.CreateInteractionRequest) (*dto.InteractionResponse, error) {
	if in.Subject == "" || !entity.ValidInteractionType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	profile, err := uc.profileRepo.GetByID(in.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	interaction := &entity.CRMInteraction{
		ProfileID:   in.ProfileID,
		AgentID:     agentID,
		Type:        in.Type,
		Subject:     in.Subject,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.interactionRepo.Create(interaction); err != nil {
		return nil, err
	}
	return toInteractionResponse(interaction), nil
}

// ListInteractions lista las interacciones de un perfil, más recientes primero.
func (uc *CRMUseCase) ListInteractions(profileID int64, limit, offset int) ([]dto.InteractionResponse, error) {
	list, err := uc.interactionRepo.ListByProfile(profileID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InteractionResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toInteractionResponse(i))
	}
	return items, nil
}

func (uc *CRMUseCase) getOrCreateProfile(userID string) (*entity.CustomerProfile, error) {
	profile, err := uc.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	profile = &entity.CustomerProfile{UserID: userID}
	if err := uc.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func toTagResponse(t *entity.CRMTag) *dto.TagResponse {
	return &dto.TagResponse{ID: t.ID, Name: t.Name, Color: t.Color}
}

func toProfileResponse(p *entity.CustomerProfile) *dto.ProfileResponse {
	resp := &dto.ProfileResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		Tags:           []dto.TagResponse{},
		InternalNotes:  p.InternalNotes,
		LifetimeValue:  p.LifetimeValue,
		TotalOrders:    p.TotalOrders,
		LastPurchaseAt: p.LastPurchaseAt,
	}
	for _, t := range p.Tags {
		resp.Tags = append(resp.Tags, dto.TagResponse{ID: t.ID, Name: t.Name, Color: t.Color})
	}
	return resp
}

func toInteractionResponse(i *entity.CRMInteraction) *dto.InteractionResponse {
	return &dto.InteractionResponse{
		ID:          i.ID,
		ProfileID:   i.ProfileID,
		AgentID:     i.AgentID,
		Type:        i.Type,
		Subject:     i.Subject,
		Description: i.Description,
		CreatedAt:   i.CreatedAt,
	}
}
