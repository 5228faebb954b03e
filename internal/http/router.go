package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/you/fleetsvc/internal/http/handlers"
	"github.com/you/fleetsvc/internal/http/middleware"
)

// BuildRouter wires every endpoint with its validation contract and,
// where the route is protected, the authentication gate.
func BuildRouter(
	ah *handlers.AuthHandlers,
	uh *handlers.UserHandlers,
	dh *handlers.DriverHandlers,
	vh *handlers.VehicleHandlers,
	th *handlers.TripHandlers,
	jwtmw *middleware.AuthMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/login", middleware.ValidateBody(handlers.LoginRules), ah.Login)
	auth.POST("/registro", middleware.ValidateBody(handlers.RegisterRules), ah.Register)
	auth.POST("/logout", jwtmw.WithJWT(), ah.Logout)
	auth.PUT("/:id", jwtmw.WithJWT(), middleware.ValidateIDParam(), middleware.ValidateBody(handlers.ProfileUpdateRules), ah.UpdateProfile)

	// List and create stay open per the current deployment; the rest of
	// the user surface requires a bearer token.
	usuarios := r.Group("/usuarios")
	usuarios.GET("", uh.List)
	usuarios.POST("", middleware.ValidateBody(handlers.UserCreateRules), uh.Create)
	usuarios.GET("/:id", jwtmw.WithJWT(), middleware.ValidateIDParam(), uh.Get)
	usuarios.PUT("/:id", jwtmw.WithJWT(), middleware.ValidateIDParam(), middleware.ValidateBody(handlers.UserUpdateRules), uh.Update)
	usuarios.DELETE("/:id", jwtmw.WithJWT(), middleware.ValidateIDParam(), uh.Delete)

	conductores := r.Group("/conductores")
	conductores.GET("", dh.List)
	conductores.GET("/:id", middleware.ValidateIDParam(), dh.Get)
	conductores.POST("", middleware.ValidateBody(handlers.DriverRules), dh.Create)
	conductores.PUT("/:id", middleware.ValidateIDParam(), middleware.ValidateBody(handlers.DriverRules), dh.Update)
	conductores.DELETE("/:id", middleware.ValidateIDParam(), dh.Delete)

	vehiculos := r.Group("/vehiculos")
	vehiculos.GET("", vh.List)
	vehiculos.GET("/:id", middleware.ValidateIDParam(), vh.Get)
	vehiculos.POST("", middleware.ValidateBody(handlers.VehicleRules), vh.Create)
	vehiculos.PUT("/:id", middleware.ValidateIDParam(), middleware.ValidateBody(handlers.VehicleRules), vh.Update)
	vehiculos.DELETE("/:id", middleware.ValidateIDParam(), vh.Delete)

	viajes := r.Group("/viajes")
	viajes.GET("", th.List)
	viajes.GET("/:id", middleware.ValidateIDParam(), th.Get)
	viajes.POST("", middleware.ValidateBody(handlers.TripRules), th.Create)
	viajes.PUT("/:id", middleware.ValidateIDParam(), middleware.ValidateBody(handlers.TripRules), th.Update)
	viajes.DELETE("/:id", middleware.ValidateIDParam(), th.Delete)

	return r
}
