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

func TestVehicleHandlers_ListForwardsQueryFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	vehicleRepo := mocks.NewMockVehicleRepository()
	var gotFilter domain.VehicleFilter
	vehicleRepo.ListFunc = func(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error) {
		gotFilter = filter
		return []domain.Vehicle{{ID: 1, Marca: "Scania", Modelo: "R450", Patente: "AC456EF", Anio: 2022}}, nil
	}

	h := NewVehicleHandlers(vehicleRepo)
	r := gin.New()
	r.GET("/vehiculos", h.List)

	w := performJSONRequest(t, r, http.MethodGet, "/vehiculos?marca=Scania&desde=2020", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	if gotFilter.Marca != "Scania" {
		t.Errorf("expected marca filter Scania, got %q", gotFilter.Marca)
	}
	if gotFilter.Desde == nil || *gotFilter.Desde != 2020 {
		t.Errorf("expected desde filter 2020, got %v", gotFilter.Desde)
	}
	if gotFilter.Hasta != nil {
		t.Errorf("hasta was not supplied, got %v", gotFilter.Hasta)
	}

	body := decodeBody(t, w)
	data := body["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("expected 1 vehicle, got %d", len(data))
	}
}

func TestVehicleHandlers_ListRejectsNonNumericYear(t *testing.T) {
	gin.SetMode(gin.TestMode)

	vehicleRepo := mocks.NewMockVehicleRepository()
	listed := false
	vehicleRepo.ListFunc = func(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error) {
		listed = true
		return nil, nil
	}

	h := NewVehicleHandlers(vehicleRepo)
	r := gin.New()
	r.GET("/vehiculos", h.List)

	w := performJSONRequest(t, r, http.MethodGet, "/vehiculos?desde=ayer", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if listed {
		t.Error("repository must not be queried with an invalid filter")
	}

	body := decodeBody(t, w)
	errs, ok := body["errors"].([]interface{})
	if !ok || len(errs) != 1 {
		t.Fatalf("expected one field error, got %v", body["errors"])
	}
	fe := errs[0].(map[string]interface{})
	if fe["field"] != "desde" {
		t.Errorf("expected error on desde, got %v", fe["field"])
	}
}

func TestVehicleHandlers_CreateEchoesStoredVehicle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	vehicleRepo := mocks.NewMockVehicleRepository()
	vehicleRepo.CreateFunc = func(ctx context.Context, vehicle *domain.Vehicle) error {
		vehicle.ID = 9
		return nil
	}

	h := NewVehicleHandlers(vehicleRepo)
	r := gin.New()
	r.POST("/vehiculos", middleware.ValidateBody(VehicleRules), h.Create)

	w := performJSONRequest(t, r, http.MethodPost, "/vehiculos",
		`{"marca":"Scania","modelo":"R450","patente":"AC456EF","anio":2022,"capacidad_carga":28000}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	if data["id"] != float64(9) || data["patente"] != "AC456EF" {
		t.Errorf("vehicle not echoed back: %v", data)
	}
}

func TestVehicleHandlers_CreateRejectsNegativeCapacity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewVehicleHandlers(mocks.NewMockVehicleRepository())
	r := gin.New()
	r.POST("/vehiculos", middleware.ValidateBody(VehicleRules), h.Create)

	w := performJSONRequest(t, r, http.MethodPost, "/vehiculos",
		`{"marca":"Scania","modelo":"R450","patente":"AC456EF","anio":2022,"capacidad_carga":-5}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestVehicleHandlers_DeleteUnknownIDReturns404(t *testing.T) {
	gin.SetMode(gin.TestMode)

	vehicleRepo := mocks.NewMockVehicleRepository()
	vehicleRepo.DeleteFunc = func(ctx context.Context, id uint) error {
		return domain.ErrVehicleNotFound
	}

	h := NewVehicleHandlers(vehicleRepo)
	r := gin.New()
	r.DELETE("/vehiculos/:id", middleware.ValidateIDParam(), h.Delete)

	w := performJSONRequest(t, r, http.MethodDelete, "/vehiculos/123", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
