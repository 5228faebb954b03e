package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/you/fleetsvc/domain"
	"github.com/you/fleetsvc/internal/validation"
)

// VehicleRules is the single validation contract for vehicle create and
// update.
var VehicleRules = validation.RuleSet{
	validation.F("marca", validation.NonEmpty(), validation.MaxLen(50)),
	validation.F("modelo", validation.NonEmpty(), validation.MaxLen(50)),
	validation.F("patente", validation.NonEmpty(), validation.MaxLen(20)),
	validation.F("anio", validation.Integer()),
	validation.F("capacidad_carga", validation.IntegerMin(0)),
}

// VehicleHandlers handles vehicle CRUD requests
type VehicleHandlers struct {
	vehicleRepo domain.VehicleRepository
}

// NewVehicleHandlers creates new vehicle handlers
func NewVehicleHandlers(vehicleRepo domain.VehicleRepository) *VehicleHandlers {
	return &VehicleHandlers{vehicleRepo: vehicleRepo}
}

// VehicleRequest represents a vehicle payload
type VehicleRequest struct {
	Marca          string `json:"marca"`
	Modelo         string `json:"modelo"`
	Patente        string `json:"patente"`
	Anio           int    `json:"anio"`
	CapacidadCarga int    `json:"capacidad_carga"`
}

// VehicleResponse represents a vehicle on the wire
type VehicleResponse struct {
	ID             uint   `json:"id"`
	Marca          string `json:"marca"`
	Modelo         string `json:"modelo"`
	Patente        string `json:"patente"`
	Anio           int    `json:"anio"`
	CapacidadCarga int    `json:"capacidad_carga"`
}

func toVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:             v.ID,
		Marca:          v.Marca,
		Modelo:         v.Modelo,
		Patente:        v.Patente,
		Anio:           v.Anio,
		CapacidadCarga: v.CapacidadCarga,
	}
}

func (r *VehicleRequest) toDomain(id uint) *domain.Vehicle {
	return &domain.Vehicle{
		ID:             id,
		Marca:          r.Marca,
		Modelo:         r.Modelo,
		Patente:        r.Patente,
		Anio:           r.Anio,
		CapacidadCarga: r.CapacidadCarga,
	}
}

// List handles GET /vehiculos with optional marca, modelo, patente,
// desde and hasta query filters.
func (h *VehicleHandlers) List(c *gin.Context) {
	filter := domain.VehicleFilter{
		Marca:   c.Query("marca"),
		Modelo:  c.Query("modelo"),
		Patente: c.Query("patente"),
	}

	var errs []validation.FieldError
	if desde := c.Query("desde"); desde != "" {
		year, err := strconv.Atoi(desde)
		if err != nil {
			errs = append(errs, validation.FieldError{Field: "desde", Rule: "integer", Message: "must be an integer"})
		} else {
			filter.Desde = &year
		}
	}
	if hasta := c.Query("hasta"); hasta != "" {
		year, err := strconv.Atoi(hasta)
		if err != nil {
			errs = append(errs, validation.FieldError{Field: "hasta", Rule: "integer", Message: "must be an integer"})
		} else {
			filter.Hasta = &year
		}
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "validation failed", "errors": errs})
		return
	}

	vehicles, err := h.vehicleRepo.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("listing vehicles failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	data := make([]VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		data = append(data, toVehicleResponse(&vehicles[i]))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Get handles GET /vehiculos/:id
func (h *VehicleHandlers) Get(c *gin.Context) {
	id := parseID(c)

	vehicle, err := h.vehicleRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		if err == domain.ErrVehicleNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "vehicle not found"})
			return
		}
		log.Printf("fetching vehicle failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": toVehicleResponse(vehicle)})
}

// Create handles POST /vehiculos
func (h *VehicleHandlers) Create(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	vehicle := req.toDomain(0)
	if err := h.vehicleRepo.Create(c.Request.Context(), vehicle); err != nil {
		log.Printf("creating vehicle failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": toVehicleResponse(vehicle)})
}

// Update handles PUT /vehiculos/:id
func (h *VehicleHandlers) Update(c *gin.Context) {
	id := parseID(c)

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	vehicle := req.toDomain(id)
	if err := h.vehicleRepo.Update(c.Request.Context(), vehicle); err != nil {
		if err == domain.ErrVehicleNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "vehicle not found"})
			return
		}
		log.Printf("updating vehicle failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": toVehicleResponse(vehicle)})
}

// Delete handles DELETE /vehiculos/:id
func (h *VehicleHandlers) Delete(c *gin.Context) {
	id := parseID(c)

	if err := h.vehicleRepo.Delete(c.Request.Context(), id); err != nil {
		if err == domain.ErrVehicleNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "vehicle not found"})
			return
		}
		log.Printf("deleting vehicle failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
