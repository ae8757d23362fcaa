package repository

import "github.com/ErnestoSESB/E-commerce/internal/domain/entity"

// CRMTagRepository define el puerto para etiquetas CRM.
type CRMTagRepository interface {
	Create(tag *entity.CRMTag) error
	List() ([]*entity.CRMTag, error)
	Delete(id int64) error
}

// CustomerProfileRepository define el puerto para perfiles CRM.
type CustomerProfileRepository interface {
	Create(profile *entity.CustomerProfile) error
	GetByID(id int64) (*entity.CustomerProfile, error)
	GetByUserID(userID string) (*entity.CustomerProfile, error)
	List(limit, offset int) ([]*entity.CustomerProfile, error)
	Update(profile *entity.CustomerProfile) error
	SetTags(profileID int64, tagIDs []int64) error
}

// CRMInteractionRepository define el puerto para interacciones CRM.
type CRMInteractionRepository interface {
	Create(interaction *entity.CRMInteraction) error
	ListByProfile(profileID int64, limit, offset int) ([]*entity.CRMInteraction, error)
}
