package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/you/fleetsvc/domain"
	"github.com/you/fleetsvc/internal/validation"
)

// TripRules is the validation contract shared by trip create and update.
var TripRules = validation.RuleSet{
	validation.F("vehiculo_id", validation.IntegerMin(1)),
	validation.F("conductor_id", validation.IntegerMin(1)),
	validation.F("fecha_salida", validation.NonEmpty()),
	validation.F("fecha_llegada", validation.NonEmpty()),
	validation.F("origen", validation.NonEmpty(), validation.MaxLen(150)),
	validation.F("destino", validation.NonEmpty(), validation.MaxLen(150)),
	validation.F("kilometros", validation.NumberMin(0)),
}

// TripHandlers handles trip CRUD requests. It holds the vehicle and
// driver repositories to enforce the referential invariant: a trip may
// only reference ids that exist.
type TripHandlers struct {
	tripRepo    domain.TripRepository
	vehicleRepo domain.VehicleRepository
	driverRepo  domain.DriverRepository
}

// NewTripHandlers creates new trip handlers
func NewTripHandlers(tripRepo domain.TripRepository, vehicleRepo domain.VehicleRepository, driverRepo domain.DriverRepository) *TripHandlers {
	return &TripHandlers{tripRepo: tripRepo, vehicleRepo: vehicleRepo, driverRepo: driverRepo}
}

// TripRequest represents a trip payload
type TripRequest struct {
	VehiculoID   uint    `json:"vehiculo_id"`
	ConductorID  uint    `json:"conductor_id"`
	FechaSalida  string  `json:"fecha_salida"`
	FechaLlegada string  `json:"fecha_llegada"`
	Origen       string  `json:"origen"`
	Destino      string  `json:"destino"`
	Kilometros   float64 `json:"kilometros"`
}

// TripResponse represents a trip on the wire
type TripResponse struct {
	ID           uint    `json:"id"`
	VehiculoID   uint    `json:"vehiculo_id"`
	ConductorID  uint    `json:"conductor_id"`
	FechaSalida  string  `json:"fecha_salida"`
	FechaLlegada string  `json:"fecha_llegada"`
	Origen       string  `json:"origen"`
	Destino      string  `json:"destino"`
	Kilometros   float64 `json:"kilometros"`
}

func toTripResponse(t *domain.Trip) TripResponse {
	return TripResponse{
		ID:           t.ID,
		VehiculoID:   t.VehiculoID,
		ConductorID:  t.ConductorID,
		FechaSalida:  t.FechaSalida,
		FechaLlegada: t.FechaLlegada,
		Origen:       t.Origen,
		Destino:      t.Destino,
		Kilometros:   t.Kilometros,
	}
}

func (r *TripRequest) toDomain(id uint) *domain.Trip {
	return &domain.Trip{
		ID:           id,
		VehiculoID:   r.VehiculoID,
		ConductorID:  r.ConductorID,
		FechaSalida:  r.FechaSalida,
		FechaLlegada: r.FechaLlegada,
		Origen:       r.Origen,
		Destino:      r.Destino,
		Kilometros:   r.Kilometros,
	}
}

// checkReferences verifies the referenced vehicle and driver exist,
// returning one field error per unknown id.
func (h *TripHandlers) checkReferences(c *gin.Context, req *TripRequest) []validation.FieldError {
	var errs []validation.FieldError

	if _, err := h.vehicleRepo.FindByID(c.Request.Context(), req.VehiculoID); err != nil {
		errs = append(errs, validation.FieldError{Field: "vehiculo_id", Rule: "exists", Message: "referenced vehicle does not exist"})
	}
	if _, err := h.driverRepo.FindByID(c.Request.Context(), req.ConductorID); err != nil {
		errs = append(errs, validation.FieldError{Field: "conductor_id", Rule: "exists", Message: "referenced driver does not exist"})
	}
	return errs
}

// List handles GET /viajes with optional vehiculo_id, conductor_id,
// origen, destino, fechaDesde and fechaHasta query filters.
func (h *TripHandlers) List(c *gin.Context) {
	filter := domain.TripFilter{
		Origen:     c.Query("origen"),
		Destino:    c.Query("destino"),
		FechaDesde: c.Query("fechaDesde"),
		FechaHasta: c.Query("fechaHasta"),
	}

	var errs []validation.FieldError
	if v := c.Query("vehiculo_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			errs = append(errs, validation.FieldError{Field: "vehiculo_id", Rule: "integer", Message: "must be an integer"})
		} else {
			vid := uint(id)
			filter.VehiculoID = &vid
		}
	}
	if v := c.Query("conductor_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			errs = append(errs, validation.FieldError{Field: "conductor_id", Rule: "integer", Message: "must be an integer"})
		} else {
			cid := uint(id)
			filter.ConductorID = &cid
		}
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "validation failed", "errors": errs})
		return
	}

	trips, err := h.tripRepo.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("listing trips failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	data := make([]TripResponse, 0, len(trips))
	for i := range trips {
		data = append(data, toTripResponse(&trips[i]))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Get handles GET /viajes/:id
func (h *TripHandlers) Get(c *gin.Context) {
	id := parseID(c)

	trip, err := h.tripRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		if err == domain.ErrTripNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "trip not found"})
			return
		}
		log.Printf("fetching trip failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": toTripResponse(trip)})
}

// Create handles POST /viajes
func (h *TripHandlers) Create(c *gin.Context) {
	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if errs := h.checkReferences(c, &req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "validation failed", "errors": errs})
		return
	}

	trip := req.toDomain(0)
	if err := h.tripRepo.Create(c.Request.Context(), trip); err != nil {
		log.Printf("creating trip failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": toTripResponse(trip)})
}

// Update handles PUT /viajes/:id
func (h *TripHandlers) Update(c *gin.Context) {
	id := parseID(c)

	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if errs := h.checkReferences(c, &req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "validation failed", "errors": errs})
		return
	}

	trip := req.toDomain(id)
	if err := h.tripRepo.Update(c.Request.Context(), trip); err != nil {
		if err == domain.ErrTripNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "trip not found"})
			return
		}
		log.Printf("updating trip failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": toTripResponse(trip)})
}

// Delete handles DELETE /viajes/:id
func (h *TripHandlers) Delete(c *gin.Context) {
	id := parseID(c)

	if err := h.tripRepo.Delete(c.Request.Context(), id); err != nil {
		if err == domain.ErrTripNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "trip not found"})
			return
		}
		log.Printf("deleting trip failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
