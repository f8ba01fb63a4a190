package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/protrack-dev/protrack-backend/internal/api/http"
	apimiddleware "github.com/protrack-dev/protrack-backend/internal/api/http/middleware"
	authhttp "github.com/protrack-dev/protrack-backend/internal/auth/http"
	authmiddleware "github.com/protrack-dev/protrack-backend/internal/auth/middleware"
	authrepo "github.com/protrack-dev/protrack-backend/internal/auth/repository"
	authservice "github.com/protrack-dev/protrack-backend/internal/auth/service"
	projecthttp "github.com/protrack-dev/protrack-backend/internal/projects/http"
	projectrepo "github.com/protrack-dev/protrack-backend/internal/projects/repository"
	projectservice "github.com/protrack-dev/protrack-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	Redis       *redis.Client
	JWTSecret   string
	TokenTTL    time.Duration
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-Id")
	r.Use(cors.New(corsCfg))
	r.Use(apimiddleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	userRepo := authrepo.NewUserRepository(dep.DB)
	tokenStore := authrepo.NewTokenStore(dep.Redis)
	authSvc := authservice.NewAuthService(userRepo, tokenStore, dep.JWTSecret, dep.TokenTTL)

	requireAuth := authmiddleware.RequireAuth(authSvc)

	userGroup := r.Group("/user")
	userHandler := authhttp.New(authSvc)
	userHandler.RegisterPublic(userGroup)
	userHandler.RegisterProtected(userGroup.Group("", requireAuth))

	projectRepo := projectrepo.NewProjectRepository(dep.DB)
	projectSvc := projectservice.NewProjectService(projectRepo)

	projectGroup := r.Group("/project", requireAuth)
	projecthttp.Register(projectGroup, projectSvc)

	return r
}
