package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/you/fleetsvc/domain"
	"github.com/you/fleetsvc/internal/http/middleware"
	"github.com/you/fleetsvc/internal/mocks"
)

const validTripPayload = `{"vehiculo_id":1,"conductor_id":2,"fecha_salida":"2026-03-01 08:00:00","fecha_llegada":"2026-03-01 16:30:00","origen":"Buenos Aires","destino":"Rosario","kilometros":300.5}`

func tripTestRepos() (*mocks.MockTripRepository, *mocks.MockVehicleRepository, *mocks.MockDriverRepository) {
	tripRepo := mocks.NewMockTripRepository()
	vehicleRepo := mocks.NewMockVehicleRepository()
	driverRepo := mocks.NewMockDriverRepository()

	vehicleRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Vehicle, error) {
		if id == 1 {
			return &domain.Vehicle{ID: 1}, nil
		}
		return nil, domain.ErrVehicleNotFound
	}
	driverRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Driver, error) {
		if id == 2 {
			return &domain.Driver{ID: 2}, nil
		}
		return nil, domain.ErrDriverNotFound
	}
	return tripRepo, vehicleRepo, driverRepo
}

func TestTripHandlers_CreateAcceptsKnownReferences(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tripRepo, vehicleRepo, driverRepo := tripTestRepos()
	tripRepo.CreateFunc = func(ctx context.Context, trip *domain.Trip) error {
		trip.ID = 11
		return nil
	}

	h := NewTripHandlers(tripRepo, vehicleRepo, driverRepo)
	r := gin.New()
	r.POST("/viajes", middleware.ValidateBody(TripRules), h.Create)

	w := performJSONRequest(t, r, http.MethodPost, "/viajes", validTripPayload)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	if data["id"] != float64(11) {
		t.Errorf("expected assigned id 11, got %v", data["id"])
	}
	if data["kilometros"] != 300.5 {
		t.Errorf("expected kilometros 300.5, got %v", data["kilometros"])
	}
}

func TestTripHandlers_CreateRejectsUnknownReferences(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		payload        string
		expectedFields []string
	}{
		{
			name:           "unknown vehicle",
			payload:        `{"vehiculo_id":77,"conductor_id":2,"fecha_salida":"2026-03-01 08:00:00","fecha_llegada":"2026-03-01 16:30:00","origen":"Buenos Aires","destino":"Rosario","kilometros":300.5}`,
			expectedFields: []string{"vehiculo_id"},
		},
		{
			name:           "unknown driver",
			payload:        `{"vehiculo_id":1,"conductor_id":88,"fecha_salida":"2026-03-01 08:00:00","fecha_llegada":"2026-03-01 16:30:00","origen":"Buenos Aires","destino":"Rosario","kilometros":300.5}`,
			expectedFields: []string{"conductor_id"},
		},
		{
			name:           "both unknown reported together",
			payload:        `{"vehiculo_id":77,"conductor_id":88,"fecha_salida":"2026-03-01 08:00:00","fecha_llegada":"2026-03-01 16:30:00","origen":"Buenos Aires","destino":"Rosario","kilometros":300.5}`,
			expectedFields: []string{"vehiculo_id", "conductor_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tripRepo, vehicleRepo, driverRepo := tripTestRepos()
			created := false
			tripRepo.CreateFunc = func(ctx context.Context, trip *domain.Trip) error {
				created = true
				return nil
			}

			h := NewTripHandlers(tripRepo, vehicleRepo, driverRepo)
			r := gin.New()
			r.POST("/viajes", middleware.ValidateBody(TripRules), h.Create)

			w := performJSONRequest(t, r, http.MethodPost, "/viajes", tt.payload)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
			}
			if created {
				t.Error("trip must not be stored with unknown references")
			}

			body := decodeBody(t, w)
			errs, ok := body["errors"].([]interface{})
			if !ok {
				t.Fatalf("expected itemized errors, got %v", body["errors"])
			}
			if len(errs) != len(tt.expectedFields) {
				t.Fatalf("expected %d errors, got %d: %v", len(tt.expectedFields), len(errs), errs)
			}
			for i, want := range tt.expectedFields {
				fe := errs[i].(map[string]interface{})
				if fe["field"] != want {
					t.Errorf("error %d: expected field %s, got %v", i, want, fe["field"])
				}
				if fe["rule"] != "exists" {
					t.Errorf("error %d: expected rule exists, got %v", i, fe["rule"])
				}
			}
		})
	}
}

func TestTripHandlers_ListForwardsQueryFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tripRepo, vehicleRepo, driverRepo := tripTestRepos()
	var gotFilter domain.TripFilter
	tripRepo.ListFunc = func(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error) {
		gotFilter = filter
		return nil, nil
	}

	h := NewTripHandlers(tripRepo, vehicleRepo, driverRepo)
	r := gin.New()
	r.GET("/viajes", h.List)

	w := performJSONRequest(t, r, http.MethodGet,
		"/viajes?vehiculo_id=1&destino=Rosario&fechaDesde=2026-03-01", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	if gotFilter.VehiculoID == nil || *gotFilter.VehiculoID != 1 {
		t.Errorf("expected vehiculo_id filter 1, got %v", gotFilter.VehiculoID)
	}
	if gotFilter.ConductorID != nil {
		t.Errorf("conductor_id was not supplied, got %v", gotFilter.ConductorID)
	}
	if gotFilter.Destino != "Rosario" || gotFilter.FechaDesde != "2026-03-01" {
		t.Errorf("string filters not forwarded: %+v", gotFilter)
	}
}

func TestTripHandlers_ListRejectsNonNumericVehicleID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tripRepo, vehicleRepo, driverRepo := tripTestRepos()
	h := NewTripHandlers(tripRepo, vehicleRepo, driverRepo)
	r := gin.New()
	r.GET("/viajes", h.List)

	w := performJSONRequest(t, r, http.MethodGet, "/viajes?vehiculo_id=camion", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestTripHandlers_UpdateUnknownTripReturns404(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tripRepo, vehicleRepo, driverRepo := tripTestRepos()
	tripRepo.UpdateFunc = func(ctx context.Context, trip *domain.Trip) error {
		return domain.ErrTripNotFound
	}

	h := NewTripHandlers(tripRepo, vehicleRepo, driverRepo)
	r := gin.New()
	r.PUT("/viajes/:id", middleware.ValidateIDParam(), middleware.ValidateBody(TripRules), h.Update)

	w := performJSONRequest(t, r, http.MethodPut, "/viajes/99", validTripPayload)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (%s)", w.Code, w.Body.String())
	}
}
