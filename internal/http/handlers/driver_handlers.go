package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/fleetsvc/domain"
	"github.com/you/fleetsvc/internal/validation"
)

// DriverRules is the validation contract shared by driver create and update.
var DriverRules = validation.RuleSet{
	validation.F("nombre", validation.NonEmpty()),
	validation.F("apellido", validation.NonEmpty()),
	validation.F("dni", validation.Integer()),
	validation.F("licencia", validation.NonEmpty()),
	validation.F("licencia_vencimiento", validation.ISODate()),
}

// DriverHandlers handles driver CRUD requests
type DriverHandlers struct {
	driverRepo domain.DriverRepository
}

// NewDriverHandlers creates new driver handlers
func NewDriverHandlers(driverRepo domain.DriverRepository) *DriverHandlers {
	return &DriverHandlers{driverRepo: driverRepo}
}

// DriverRequest represents a driver payload
type DriverRequest struct {
	Nombre              string `json:"nombre"`
	Apellido            string `json:"apellido"`
	DNI                 int64  `json:"dni"`
	Licencia            string `json:"licencia"`
	LicenciaVencimiento string `json:"licencia_vencimiento"`
}

// DriverResponse represents a driver on the wire
type DriverResponse struct {
	ID                  uint   `json:"id"`
	Nombre              string `json:"nombre"`
	Apellido            string `json:"apellido"`
	DNI                 int64  `json:"dni"`
	Licencia            string `json:"licencia"`
	LicenciaVencimiento string `json:"licencia_vencimiento"`
}

func toDriverResponse(d *domain.Driver) DriverResponse {
	return DriverResponse{
		ID:                  d.ID,
		Nombre:              d.Nombre,
		Apellido:            d.Apellido,
		DNI:                 d.DNI,
		Licencia:            d.Licencia,
		LicenciaVencimiento: d.LicenciaVencimiento,
	}
}

func (r *DriverRequest) toDomain(id uint) *domain.Driver {
	return &domain.Driver{
		ID:                  id,
		Nombre:              r.Nombre,
		Apellido:            r.Apellido,
		DNI:                 r.DNI,
		Licencia:            r.Licencia,
		LicenciaVencimiento: r.LicenciaVencimiento,
	}
}

// List handles GET /conductores
func (h *DriverHandlers) List(c *gin.Context) {
	drivers, err := h.driverRepo.List(c.Request.Context())
	if err != nil {
		log.Printf("listing drivers failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	data := make([]DriverResponse, 0, len(drivers))
	for i := range drivers {
		data = append(data, toDriverResponse(&drivers[i]))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Get handles GET /conductores/:id
func (h *DriverHandlers) Get(c *gin.Context) {
	id := parseID(c)

	driver, err := h.driverRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		if err == domain.ErrDriverNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "driver not found"})
			return
		}
		log.Printf("fetching driver failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": toDriverResponse(driver)})
}

// Create handles POST /conductores
func (h *DriverHandlers) Create(c *gin.Context) {
	var req DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	driver := req.toDomain(0)
	if err := h.driverRepo.Create(c.Request.Context(), driver); err != nil {
		log.Printf("creating driver failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": toDriverResponse(driver)})
}

// Update handles PUT /conductores/:id
func (h *DriverHandlers) Update(c *gin.Context) {
	id := parseID(c)

	var req DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	driver := req.toDomain(id)
	if err := h.driverRepo.Update(c.Request.Context(), driver); err != nil {
		if err == domain.ErrDriverNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "driver not found"})
			return
		}
		log.Printf("updating driver failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": toDriverResponse(driver)})
}

// Delete handles DELETE /conductores/:id
func (h *DriverHandlers) Delete(c *gin.Context) {
	id := parseID(c)

	if err := h.driverRepo.Delete(c.Request.Context(), id); err != nil {
		if err == domain.ErrDriverNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "driver not found"})
			return
		}
		log.Printf("deleting driver failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
