package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/you/fleetsvc/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint   `gorm:"primaryKey"`
	Nombre       string `gorm:"size:100"`
	Email        string `gorm:"uniqueIndex;size:150"`
	PasswordHash string `gorm:"column:password"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "usuarios"
}

// DBRole represents a role that can be granted to users
type DBRole struct {
	ID     uint   `gorm:"primaryKey"`
	Nombre string `gorm:"uniqueIndex;size:64"`
}

// TableName returns the table name for GORM
func (DBRole) TableName() string {
	return "roles"
}

// DBUserRole grants a role to a user
type DBUserRole struct {
	UsuarioID uint `gorm:"primaryKey"`
	RolID     uint `gorm:"primaryKey"`
}

// TableName returns the table name for GORM
func (DBUserRole) TableName() string {
	return "usuarios_roles"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// List implements domain.UserRepository
func (r *UserRepositoryImpl) List(ctx context.Context) ([]domain.User, error) {
	var dbUsers []DBUser
	if err := r.db.WithContext(ctx).Order("id").Find(&dbUsers).Error; err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, *r.dbToDomain(&dbUsers[i]))
	}
	return users, nil
}

// UpdateProfile implements domain.UserRepository. Empty nombre or email
// keeps the stored value. Zero affected rows means the user does not exist.
func (r *UserRepositoryImpl) UpdateProfile(ctx context.Context, id uint, nombre, email string) error {
	updates := map[string]any{}
	if nombre != "" {
		updates["nombre"] = nombre
	}
	if email != "" {
		updates["email"] = email
	}
	if len(updates) == 0 {
		// Nothing to change; still report whether the user exists.
		_, err := r.FindByID(ctx, id)
		return err
	}

	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete implements domain.UserRepository. Zero affected rows means the
// user does not exist.
func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBUser{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// FindRolesByUserID implements domain.UserRepository. A user with no
// granted roles yields an empty slice, which is a valid outcome, not
// an error.
func (r *UserRepositoryImpl) FindRolesByUserID(ctx context.Context, userID uint) ([]string, error) {
	var roles []string
	err := r.db.WithContext(ctx).
		Model(&DBRole{}).
		Select("roles.nombre").
		Joins("JOIN usuarios_roles ON usuarios_roles.rol_id = roles.id").
		Where("usuarios_roles.usuario_id = ?", userID).
		Scan(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Nombre:       user.Nombre,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Nombre:       dbUser.Nombre,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
	}
}
