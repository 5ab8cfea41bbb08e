package bootstrap

import (
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpapi "github.com/GoSim-25-26J-441/supplynet-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/auth"
	authmw "github.com/GoSim-25-26J-441/supplynet-backend/internal/auth/middleware"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/metrics"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/service"

	snhttp "github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/http"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	Store          httpapi.Pinger
	DB             *pgxpool.Pool
	Sessions       *service.Registry
	Metrics        *metrics.Registry
	// AuthClient verifies Firebase ID tokens. Nil falls back to the
	// X-User-Id development header.
	AuthClient *fbauth.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-User-Id", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if dep.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(dep.Metrics))
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(dep.Metrics.Prometheus(), promhttp.HandlerOpts{})))
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	if dep.AuthClient != nil {
		api.Use(authmw.FirebaseAuthMiddleware(dep.AuthClient))
	} else {
		api.Use(auth.OptionalUser())
	}

	snhttp.New(dep.Sessions).Register(api.Group("/supply-network"))

	return r
}
