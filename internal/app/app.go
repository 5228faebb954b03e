package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/fleetsvc/domain"
	"github.com/you/fleetsvc/internal/config"
	httpx "github.com/you/fleetsvc/internal/http"
	"github.com/you/fleetsvc/internal/http/handlers"
	"github.com/you/fleetsvc/internal/http/middleware"
	"github.com/you/fleetsvc/internal/infrastructure/auth"
	"github.com/you/fleetsvc/internal/infrastructure/database"
	"github.com/you/fleetsvc/internal/infrastructure/repositories"
	"github.com/you/fleetsvc/internal/services"
)

func Run(cfg *config.Config) error {
	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	// The denylist is only backed by Redis when revocation is switched
	// on; otherwise logout is a client-side concern and tokens stay
	// valid until they expire.
	var denylist domain.TokenDenylist = repositories.NewNoopDenylist()
	if cfg.RevocationEnabled {
		rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := rdb.Ping(context.Background()); err != nil {
			return err
		}
		denylist = repositories.NewDenylistRepository(rdb.Client)
	}

	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)

	userRepo := repositories.NewUserRepository(gdb)
	driverRepo := repositories.NewDriverRepository(gdb)
	vehicleRepo := repositories.NewVehicleRepository(gdb)
	tripRepo := repositories.NewTripRepository(gdb)

	authSvc := services.NewAuthService(userRepo, passwordSvc, tokenSvc, denylist)

	authH := handlers.NewAuthHandlers(authSvc)
	userH := handlers.NewUserHandlers(userRepo, passwordSvc)
	driverH := handlers.NewDriverHandlers(driverRepo)
	vehicleH := handlers.NewVehicleHandlers(vehicleRepo)
	tripH := handlers.NewTripHandlers(tripRepo, vehicleRepo, driverRepo)

	jwtMW := middleware.NewAuthMW(tokenSvc, userRepo, denylist)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := httpx.BuildRouter(authH, userH, driverH, vehicleH, tripH, jwtMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
