package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"salescrm/internal/board"
	"salescrm/internal/cache"
	"salescrm/internal/config"
	"salescrm/internal/database"
	"salescrm/internal/domain/account"
	"salescrm/internal/domain/auth"
	"salescrm/internal/domain/contact"
	"salescrm/internal/domain/dashboard"
	"salescrm/internal/domain/deal"
	"salescrm/internal/domain/lead"
	"salescrm/internal/domain/pipeline"
	"salescrm/internal/domain/visit"
	"salescrm/internal/middleware"
	"salescrm/internal/observability/metrics"
	jwtsvc "salescrm/internal/pkg/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	redisClient := cache.BuildClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	cancel()
	if redisClient == nil {
		log.Println("redis unavailable, running without collection cache")
	}
	store := cache.New(redisClient, cfg.CacheTTL)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	m := metrics.New(prometheus.DefaultRegisterer)
	hub := board.NewHub()

	userRepo := auth.NewRepository(db)
	stageRepo := pipeline.NewRepository(db)
	accountRepo := account.NewRepository(db)
	contactRepo := contact.NewRepository(db)
	leadRepo := lead.NewRepository(db)
	dealRepo := deal.NewRepository(db)
	visitRepo := visit.NewRepository(db)
	statsRepo := dashboard.NewRepository(db)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	pipelineHandler := pipeline.NewHandler(pipeline.NewService(stageRepo))
	accountHandler := account.NewHandler(account.NewService(accountRepo, store))
	contactHandler := contact.NewHandler(contact.NewService(contactRepo, accountRepo, store))
	leadHandler := lead.NewHandler(lead.NewService(leadRepo, stageRepo, store, hub, m))
	dealHandler := deal.NewHandler(deal.NewService(dealRepo, stageRepo, accountRepo, contactRepo, store, hub, m))
	visitHandler := visit.NewHandler(visit.NewService(visitRepo, accountRepo, store))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(statsRepo, store))
	wsHandler := board.NewWSHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(m.Middleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", m.Handler())
	r.GET("/ws/board", wsHandler.HandleWebSocket)

	v1 := r.Group("/api/v1")
	{
		auth.RegisterPublicRoutes(v1, authHandler)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			auth.RegisterProtectedRoutes(protected, authHandler)
			pipeline.RegisterRoutes(protected, pipelineHandler)
			account.RegisterRoutes(protected, accountHandler)
			contact.RegisterRoutes(protected, contactHandler)
			lead.RegisterRoutes(protected, leadHandler)
			deal.RegisterRoutes(protected, dealHandler)
			visit.RegisterRoutes(protected, visitHandler)
			dashboard.RegisterRoutes(protected, dashboardHandler)

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				auth.RegisterAdminRoutes(admin, authHandler)
			}
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
