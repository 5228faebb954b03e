package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/you/fleetsvc/domain"
)

// TripRepositoryImpl implements domain.TripRepository using GORM
type TripRepositoryImpl struct {
	db *gorm.DB
}

// DBTrip represents the database model for Trip. vehiculo_id and
// conductor_id are weak references; existence is enforced at the
// application boundary, not by the schema.
type DBTrip struct {
	ID           uint   `gorm:"primaryKey"`
	VehiculoID   uint   `gorm:"index"`
	ConductorID  uint   `gorm:"index"`
	FechaSalida  string `gorm:"size:19;index"` // ISO timestamp, lexicographically ordered
	FechaLlegada string `gorm:"size:19"`
	Origen       string `gorm:"size:150"`
	Destino      string `gorm:"size:150"`
	Kilometros   float64
}

// TableName returns the table name for GORM
func (DBTrip) TableName() string {
	return "viajes"
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *gorm.DB) domain.TripRepository {
	return &TripRepositoryImpl{db: db}
}

// List implements domain.TripRepository. Filters compose with AND and
// every value passes through a bound parameter.
func (r *TripRepositoryImpl) List(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error) {
	q := r.db.WithContext(ctx).Model(&DBTrip{})

	if filter.VehiculoID != nil {
		q = q.Where("vehiculo_id = ?", *filter.VehiculoID)
	}
	if filter.ConductorID != nil {
		q = q.Where("conductor_id = ?", *filter.ConductorID)
	}
	if filter.Origen != "" {
		q = q.Where("origen LIKE ?", "%"+filter.Origen+"%")
	}
	if filter.Destino != "" {
		q = q.Where("destino LIKE ?", "%"+filter.Destino+"%")
	}
	if filter.FechaDesde != "" {
		q = q.Where("fecha_salida >= ?", filter.FechaDesde)
	}
	if filter.FechaHasta != "" {
		q = q.Where("fecha_llegada <= ?", filter.FechaHasta)
	}

	var dbTrips []DBTrip
	if err := q.Order("fecha_salida DESC").Find(&dbTrips).Error; err != nil {
		return nil, err
	}
	trips := make([]domain.Trip, 0, len(dbTrips))
	for i := range dbTrips {
		trips = append(trips, *r.dbToDomain(&dbTrips[i]))
	}
	return trips, nil
}

// FindByID implements domain.TripRepository
func (r *TripRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Trip, error) {
	var dbTrip DBTrip
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbTrip).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrTripNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbTrip), nil
}

// Create implements domain.TripRepository
func (r *TripRepositoryImpl) Create(ctx context.Context, trip *domain.Trip) error {
	dbTrip := r.domainToDB(trip)
	if err := r.db.WithContext(ctx).Create(dbTrip).Error; err != nil {
		return err
	}
	trip.ID = dbTrip.ID
	return nil
}

// Update implements domain.TripRepository. Zero affected rows means the
// trip does not exist.
func (r *TripRepositoryImpl) Update(ctx context.Context, trip *domain.Trip) error {
	res := r.db.WithContext(ctx).Model(&DBTrip{}).Where("id = ?", trip.ID).Updates(map[string]any{
		"vehiculo_id":   trip.VehiculoID,
		"conductor_id":  trip.ConductorID,
		"fecha_salida":  trip.FechaSalida,
		"fecha_llegada": trip.FechaLlegada,
		"origen":        trip.Origen,
		"destino":       trip.Destino,
		"kilometros":    trip.Kilometros,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTripNotFound
	}
	return nil
}

// Delete implements domain.TripRepository. Zero affected rows means the
// trip does not exist.
func (r *TripRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBTrip{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTripNotFound
	}
	return nil
}

func (r *TripRepositoryImpl) domainToDB(trip *domain.Trip) *DBTrip {
	return &DBTrip{
		ID:           trip.ID,
		VehiculoID:   trip.VehiculoID,
		ConductorID:  trip.ConductorID,
		FechaSalida:  trip.FechaSalida,
		FechaLlegada: trip.FechaLlegada,
		Origen:       trip.Origen,
		Destino:      trip.Destino,
		Kilometros:   trip.Kilometros,
	}
}

func (r *TripRepositoryImpl) dbToDomain(dbTrip *DBTrip) *domain.Trip {
	return &domain.Trip{
		ID:           dbTrip.ID,
		VehiculoID:   dbTrip.VehiculoID,
		ConductorID:  dbTrip.ConductorID,
		FechaSalida:  dbTrip.FechaSalida,
		FechaLlegada: dbTrip.FechaLlegada,
		Origen:       dbTrip.Origen,
		Destino:      dbTrip.Destino,
		Kilometros:   dbTrip.Kilometros,
	}
}
