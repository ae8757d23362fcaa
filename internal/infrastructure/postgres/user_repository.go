package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ErnestoSESB/E-commerce/internal/domain"
	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/listing"
	"github.com/ErnestoSESB/E-commerce/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, name, phone, role, password_hash,
	address_street, address_number, address_city, address_state, address_zip,
	last_login_ip, created_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// La dirección vive desnormalizada en la fila del usuario (una por usuario).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, name, phone, role, password_hash,
			address_street, address_number, address_city, address_state, address_zip,
			last_login_ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	street, number, city, state, zip := addressFields(user.Address)
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.Name, user.Phone, string(user.Role), user.PasswordHash,
		street, number, city, state, zip, nullIfEmpty(user.LastLoginIP), user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindByEmail obtiene un usuario por email.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepo) getOne(query string, arg any) (*entity.User, error) {
	row := r.q.QueryRow(context.Background(), query, arg)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// List lista usuarios según criterios, con paginación.
func (r *UserRepo) List(criteria *listing.UserCriteria, limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE 1=1`
	args := []any{}
	pos := 1
	add := func(cond string, val any) {
		query += fmt.Sprintf(" AND "+cond, pos)
		args = append(args, val)
		pos++
	}
	if criteria != nil {
		if criteria.ID != "" {
			add("id = $%d", criteria.ID)
		}
		if criteria.Email != "" {
			add("email = $%d", criteria.Email)
		}
		if criteria.Phone != "" {
			add("phone = $%d", criteria.Phone)
		}
		if criteria.Name != "" {
			add("name ILIKE $%d", "%"+criteria.Name+"%")
		}
		if criteria.UserType != "" {
			add("role = $%d", criteria.UserType)
		}
		if criteria.IsStaff != nil {
			// is_staff se deriva del rol: staff es cualquier rol distinto de client.
			if *criteria.IsStaff {
				add("role <> $%d", string(entity.RoleClient))
			} else {
				add("role = $%d", string(entity.RoleClient))
			}
		}
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update actualiza un usuario (incluye rol, dirección y último IP de login).
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET name = $2, phone = $3, role = $4,
			address_street = $5, address_number = $6, address_city = $7, address_state = $8, address_zip = $9,
			last_login_ip = $10
		WHERE id = $1`
	street, number, city, state, zip := addressFields(user.Address)
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Phone, string(user.Role),
		street, number, city, state, zip, nullIfEmpty(user.LastLoginIP),
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var role string
	var number *int
	var street, city, state, zip, lastIP *string
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Phone, &role, &u.PasswordHash,
		&street, &number, &city, &state, &zip, &lastIP, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	u.Role = entity.Role(role)
	if street != nil || city != nil {
		u.Address = &entity.Address{
			Street:  deref(street),
			Number:  derefInt(number),
			City:    deref(city),
			State:   deref(state),
			ZipCode: deref(zip),
		}
	}
	if lastIP != nil {
		u.LastLoginIP = *lastIP
	}
	return &u, nil
}

func addressFields(a *entity.Address) (street *string, number *int, city, state, zip *string) {
	if a == nil {
		return nil, nil, nil, nil, nil
	}
	return nullIfEmpty(a.Street), nullIfZero(a.Number), nullIfEmpty(a.City), nullIfEmpty(a.State), nullIfEmpty(a.ZipCode)
}

func nullIfZero(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
