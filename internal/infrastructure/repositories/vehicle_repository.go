package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/you/fleetsvc/domain"
)

// VehicleRepositoryImpl implements domain.VehicleRepository using GORM
type VehicleRepositoryImpl struct {
	db *gorm.DB
}

// DBVehicle represents the database model for Vehicle
type DBVehicle struct {
	ID             uint   `gorm:"primaryKey"`
	Marca          string `gorm:"size:50"`
	Modelo         string `gorm:"size:50"`
	Patente        string `gorm:"size:20"`
	Anio           int
	CapacidadCarga int
}

// TableName returns the table name for GORM
func (DBVehicle) TableName() string {
	return "vehiculos"
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *gorm.DB) domain.VehicleRepository {
	return &VehicleRepositoryImpl{db: db}
}

// List implements domain.VehicleRepository. Filters compose with AND and
// every value passes through a bound parameter.
func (r *VehicleRepositoryImpl) List(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error) {
	q := r.db.WithContext(ctx).Model(&DBVehicle{})

	if filter.Marca != "" {
		q = q.Where("marca LIKE ?", "%"+filter.Marca+"%")
	}
	if filter.Modelo != "" {
		q = q.Where("modelo LIKE ?", "%"+filter.Modelo+"%")
	}
	if filter.Patente != "" {
		q = q.Where("patente LIKE ?", "%"+filter.Patente+"%")
	}
	if filter.Desde != nil {
		q = q.Where("anio >= ?", *filter.Desde)
	}
	if filter.Hasta != nil {
		q = q.Where("anio <= ?", *filter.Hasta)
	}

	var dbVehicles []DBVehicle
	if err := q.Order("marca, modelo").Find(&dbVehicles).Error; err != nil {
		return nil, err
	}
	vehicles := make([]domain.Vehicle, 0, len(dbVehicles))
	for i := range dbVehicles {
		vehicles = append(vehicles, *r.dbToDomain(&dbVehicles[i]))
	}
	return vehicles, nil
}

// FindByID implements domain.VehicleRepository
func (r *VehicleRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Vehicle, error) {
	var dbVehicle DBVehicle
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbVehicle).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbVehicle), nil
}

// Create implements domain.VehicleRepository
func (r *VehicleRepositoryImpl) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	dbVehicle := r.domainToDB(vehicle)
	if err := r.db.WithContext(ctx).Create(dbVehicle).Error; err != nil {
		return err
	}
	vehicle.ID = dbVehicle.ID
	return nil
}

// Update implements domain.VehicleRepository. Zero affected rows means the
// vehicle does not exist.
func (r *VehicleRepositoryImpl) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	res := r.db.WithContext(ctx).Model(&DBVehicle{}).Where("id = ?", vehicle.ID).Updates(map[string]any{
		"marca":           vehicle.Marca,
		"modelo":          vehicle.Modelo,
		"patente":         vehicle.Patente,
		"anio":            vehicle.Anio,
		"capacidad_carga": vehicle.CapacidadCarga,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

// Delete implements domain.VehicleRepository. Zero affected rows means the
// vehicle does not exist.
func (r *VehicleRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBVehicle{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func (r *VehicleRepositoryImpl) domainToDB(vehicle *domain.Vehicle) *DBVehicle {
	return &DBVehicle{
		ID:             vehicle.ID,
		Marca:          vehicle.Marca,
		Modelo:         vehicle.Modelo,
		Patente:        vehicle.Patente,
		Anio:           vehicle.Anio,
		CapacidadCarga: vehicle.CapacidadCarga,
	}
}

func (r *VehicleRepositoryImpl) dbToDomain(dbVehicle *DBVehicle) *domain.Vehicle {
	return &domain.Vehicle{
		ID:             dbVehicle.ID,
		Marca:          dbVehicle.Marca,
		Modelo:         dbVehicle.Modelo,
		Patente:        dbVehicle.Patente,
		Anio:           dbVehicle.Anio,
		CapacidadCarga: dbVehicle.CapacidadCarga,
	}
}
