package usecase

import (
	"github.com/ErnestoSESB/E-commerce/internal/application/auth"
	"github.com/ErnestoSESB/E-commerce/internal/application/dto"
	"github.com/ErnestoSESB/E-commerce/internal/domain"
	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/listing"
	"github.com/ErnestoSESB/E-commerce/internal/domain/repository"
)

// UserUseCase consultas y edición de usuarios. El scoping de filas es del caller:
// staff ve todos, un cliente solo se ve a sí mismo.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios según criterios validados. Para callers no-staff la lista
// se reduce a su propia cuenta, sin importar los criterios.
func (uc *UserUseCase) List(criteria *listing.UserCriteria, callerID string, callerRole entity.Role, limit, offset int) (*dto.UserListResponse, error) {
	if !callerRole.IsStaff() {
		user, err := uc.repo.GetByID(callerID)
		if err != nil {
			return nil, err
		}
		items := []dto.UserResponse{}
		if user != nil {
			items = append(items, *auth.ToUserResponse(user))
		}
		return &dto.UserListResponse{Items: items, Page: dto.NewPage(limit, offset, len(items))}, nil
	}
	list, err := uc.repo.List(criteria, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Page: dto.NewPage(limit, offset, len(items))}, nil
}

// GetByID obtiene un usuario; un caller no-staff solo puede verse a sí mismo.
func (uc *UserUseCase) GetByID(id, callerID string, callerRole entity.Role) (*dto.UserResponse, error) {
	if !callerRole.IsStaff() && id != callerID {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return auth.ToUserResponse(user), nil
}

// Update edita nombre/teléfono/dirección. Solo el dueño o staff.
func (uc *UserUseCase) Update(id, callerID string, callerRole entity.Role, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !callerRole.IsStaff() && id != callerID {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Name != nil && *in.Name != "" {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Address != nil {
		// Reemplaza la dirección completa (una por usuario).
		user.Address = &entity.Address{
			Street:  in.Address.Street,
			Number:  in.Address.Number,
			City:    in.Address.City,
			State:   in.Address.State,
			ZipCode: in.Address.ZipCode,
		}
	}
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// UpdateRole promueve o degrada el rol de un usuario. Solo admin.
func (uc *UserUseCase) UpdateRole(id string, callerRole entity.Role, newRole entity.Role) (*dto.UserResponse, error) {
	if !callerRole.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if !newRole.Valid() {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	user.Role = newRole
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}
