package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/you/fleetsvc/domain"
)

// DriverRepositoryImpl implements domain.DriverRepository using GORM
type DriverRepositoryImpl struct {
	db *gorm.DB
}

// DBDriver represents the database model for Driver
type DBDriver struct {
	ID                  uint   `gorm:"primaryKey"`
	Nombre              string `gorm:"size:100"`
	Apellido            string `gorm:"size:100"`
	DNI                 int64  `gorm:"column:dni"`
	Licencia            string `gorm:"size:50"`
	LicenciaVencimiento string `gorm:"size:10"` // YYYY-MM-DD
}

// TableName returns the table name for GORM
func (DBDriver) TableName() string {
	return "conductores"
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(db *gorm.DB) domain.DriverRepository {
	return &DriverRepositoryImpl{db: db}
}

// List implements domain.DriverRepository
func (r *DriverRepositoryImpl) List(ctx context.Context) ([]domain.Driver, error) {
	var dbDrivers []DBDriver
	if err := r.db.WithContext(ctx).Order("apellido, nombre").Find(&dbDrivers).Error; err != nil {
		return nil, err
	}
	drivers := make([]domain.Driver, 0, len(dbDrivers))
	for i := range dbDrivers {
		drivers = append(drivers, *r.dbToDomain(&dbDrivers[i]))
	}
	return drivers, nil
}

// FindByID implements domain.DriverRepository
func (r *DriverRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Driver, error) {
	var dbDriver DBDriver
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbDriver).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrDriverNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbDriver), nil
}

// Create implements domain.DriverRepository
func (r *DriverRepositoryImpl) Create(ctx context.Context, driver *domain.Driver) error {
	dbDriver := r.domainToDB(driver)
	if err := r.db.WithContext(ctx).Create(dbDriver).Error; err != nil {
		return err
	}
	driver.ID = dbDriver.ID
	return nil
}

// Update implements domain.DriverRepository. Zero affected rows means the
// driver does not exist.
func (r *DriverRepositoryImpl) Update(ctx context.Context, driver *domain.Driver) error {
	res := r.db.WithContext(ctx).Model(&DBDriver{}).Where("id = ?", driver.ID).Updates(map[string]any{
		"nombre":               driver.Nombre,
		"apellido":             driver.Apellido,
		"dni":                  driver.DNI,
		"licencia":             driver.Licencia,
		"licencia_vencimiento": driver.LicenciaVencimiento,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrDriverNotFound
	}
	return nil
}

// Delete implements domain.DriverRepository. Zero affected rows means the
// driver does not exist.
func (r *DriverRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBDriver{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrDriverNotFound
	}
	return nil
}

func (r *DriverRepositoryImpl) domainToDB(driver *domain.Driver) *DBDriver {
	return &DBDriver{
		ID:                  driver.ID,
		Nombre:              driver.Nombre,
		Apellido:            driver.Apellido,
		DNI:                 driver.DNI,
		Licencia:            driver.Licencia,
		LicenciaVencimiento: driver.LicenciaVencimiento,
	}
}

func (r *DriverRepositoryImpl) dbToDomain(dbDriver *DBDriver) *domain.Driver {
	return &domain.Driver{
		ID:                  dbDriver.ID,
		Nombre:              dbDriver.Nombre,
		Apellido:            dbDriver.Apellido,
		DNI:                 dbDriver.DNI,
		Licencia:            dbDriver.Licencia,
		LicenciaVencimiento: dbDriver.LicenciaVencimiento,
	}
}
