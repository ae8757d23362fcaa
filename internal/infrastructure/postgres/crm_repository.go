package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ErnestoSESB/E-commerce/internal/domain"
	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/repository"
)

var (
	_ repository.CRMTagRepository         = (*CRMTagRepo)(nil)
	_ repository.CustomerProfileRepository = (*CustomerProfileRepo)(nil)
	_ repository.CRMInteractionRepository = (*CRMInteractionRepo)(nil)
)

// CRMTagRepo etiquetas de segmentación sobre PostgreSQL.
type CRMTagRepo struct {
	q Querier
}

// NewCRMTagRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCRMTagRepository(q Querier) *CRMTagRepo {
	return &CRMTagRepo{q: q}
}

// Create persiste una etiqueta y asigna su ID serial.
func (r *CRMTagRepo) Create(tag *entity.CRMTag) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO crm_tags (name, color) VALUES ($1, $2) RETURNING id`,
		tag.Name, tag.Color,
	).Scan(&tag.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

// List lista todas las etiquetas.
func (r *CRMTagRepo) List() ([]*entity.CRMTag, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, color FROM crm_tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()
	var list []*entity.CRMTag
	for rows.Next() {
		var t entity.CRMTag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina una etiqueta (las asociaciones caen por FK ON DELETE CASCADE).
func (r *CRMTagRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM crm_tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}

// CustomerProfileRepo perfiles CRM sobre PostgreSQL.
type CustomerProfileRepo struct {
	q Querier
}

// NewCustomerProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerProfileRepository(q Querier) *CustomerProfileRepo {
	return &CustomerProfileRepo{q: q}
}

const profileColumns = `id, user_id, internal_notes, lifetime_value, total_orders, last_purchase_at`

// Create persiste un perfil y asigna su ID serial.
func (r *CustomerProfileRepo) Create(profile *entity.CustomerProfile) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO customer_profiles (user_id, internal_notes, lifetime_value, total_orders)
		 VALUES ($1, $2, COALESCE($3, 0), $4) RETURNING id`,
		profile.UserID, profile.InternalNotes, profile.LifetimeValue, profile.TotalOrders,
	).Scan(&profile.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil con sus etiquetas.
func (r *CustomerProfileRepo) GetByID(id int64) (*entity.CustomerProfile, error) {
	return r.getOne(`SELECT `+profileColumns+` FROM customer_profiles WHERE id = $1`, id)
}

// GetByUserID obtiene el perfil de un cliente con sus etiquetas.
func (r *CustomerProfileRepo) GetByUserID(userID string) (*entity.CustomerProfile, error) {
	return r.getOne(`SELECT `+profileColumns+` FROM customer_profiles WHERE user_id = $1`, userID)
}

func (r *CustomerProfileRepo) getOne(query string, arg any) (*entity.CustomerProfile, error) {
	var p entity.CustomerProfile
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.UserID, &p.InternalNotes, &p.LifetimeValue, &p.TotalOrders, &p.LastPurchaseAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	tags, err := r.loadTags(p.ID)
	if err != nil {
		return nil, err
	}
	p.Tags = tags
	return &p, nil
}

func (r *CustomerProfileRepo) loadTags(profileID int64) ([]entity.CRMTag, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT t.id, t.name, t.color
		 FROM crm_tags t JOIN customer_profile_tags pt ON pt.tag_id = t.id
		 WHERE pt.profile_id = $1 ORDER BY t.name`, profileID)
	if err != nil {
		return nil, fmt.Errorf("load profile tags: %w", err)
	}
	defer rows.Close()
	var tags []entity.CRMTag
	for rows.Next() {
		var t entity.CRMTag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color); err != nil {
			return nil, fmt.Errorf("scan profile tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// List lista perfiles paginados con sus etiquetas.
func (r *CustomerProfileRepo) List(limit, offset int) ([]*entity.CustomerProfile, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+profileColumns+` FROM customer_profiles ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.CustomerProfile
	for rows.Next() {
		var p entity.CustomerProfile
		if err := rows.Scan(&p.ID, &p.UserID, &p.InternalNotes, &p.LifetimeValue, &p.TotalOrders, &p.LastPurchaseAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range list {
		tags, err := r.loadTags(p.ID)
		if err != nil {
			return nil, err
		}
		p.Tags = tags
	}
	return list, nil
}

// Update actualiza notas y métricas del perfil.
func (r *CustomerProfileRepo) Update(profile *entity.CustomerProfile) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE customer_profiles SET internal_notes = $2, lifetime_value = $3, total_orders = $4, last_purchase_at = $5
		 WHERE id = $1`,
		profile.ID, profile.InternalNotes, profile.LifetimeValue, profile.TotalOrders, profile.LastPurchaseAt,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// SetTags reemplaza el conjunto completo de etiquetas del perfil.
func (r *CustomerProfileRepo) SetTags(profileID int64, tagIDs []int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM customer_profile_tags WHERE profile_id = $1`, profileID)
	if err != nil {
		return fmt.Errorf("clear profile tags: %w", err)
	}
	for _, tagID := range tagIDs {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO customer_profile_tags (profile_id, tag_id) VALUES ($1, $2)`,
			profileID, tagID)
		if err != nil {
			return fmt.Errorf("set profile tag: %w", err)
		}
	}
	return nil
}

// CRMInteractionRepo interacciones CRM sobre PostgreSQL.
type CRMInteractionRepo struct {
	q Querier
}

// NewCRMInteractionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCRMInteractionRepository(q Querier) *CRMInteractionRepo {
	return &CRMInteractionRepo{q: q}
}

// Create persiste una interacción y asigna su ID serial.
func (r *CRMInteractionRepo) Create(interaction *entity.CRMInteraction) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO crm_interactions (profile_id, agent_id, type, subject, description, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		interaction.ProfileID, interaction.AgentID, interaction.Type,
		interaction.Subject, interaction.Description, interaction.CreatedAt,
	).Scan(&interaction.ID)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}

// ListByProfile lista las interacciones de un perfil, más recientes primero.
func (r *CRMInteractionRepo) ListByProfile(profileID int64, limit, offset int) ([]*entity.CRMInteraction, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, profile_id, agent_id, type, subject, description, created_at
		 FROM crm_interactions WHERE profile_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		profileID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.CRMInteraction
	for rows.Next() {
		var i entity.CRMInteraction
		if err := rows.Scan(&i.ID, &i.ProfileID, &i.AgentID, &i.Type, &i.Subject, &i.Description, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
