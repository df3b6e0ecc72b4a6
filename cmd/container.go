package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/openhire/jobportal/internal/seed"
	"github.com/openhire/jobportal/pkg/iam/auth"
	"github.com/openhire/jobportal/pkg/iam/auth/authinfra"
	"github.com/openhire/jobportal/pkg/logx"
	"github.com/openhire/jobportal/portal/access"
	"github.com/openhire/jobportal/portal/application/applicationapi"
	"github.com/openhire/jobportal/portal/application/applicationinfra"
	"github.com/openhire/jobportal/portal/application/applicationsrv"
	"github.com/openhire/jobportal/portal/catalog/catalogapi"
	"github.com/openhire/jobportal/portal/catalog/cataloginfra"
	"github.com/openhire/jobportal/portal/catalog/catalogsrv"
	"github.com/openhire/jobportal/portal/company/companyapi"
	"github.com/openhire/jobportal/portal/company/companyinfra"
	"github.com/openhire/jobportal/portal/company/companysrv"
	"github.com/openhire/jobportal/portal/cv/cvapi"
	"github.com/openhire/jobportal/portal/cv/cvinfra"
	"github.com/openhire/jobportal/portal/cv/cvsrv"
	"github.com/openhire/jobportal/portal/dashboard/dashboardapi"
	"github.com/openhire/jobportal/portal/dashboard/dashboardinfra"
	"github.com/openhire/jobportal/portal/dashboard/dashboardsrv"
	"github.com/openhire/jobportal/portal/favorite/favoriteapi"
	"github.com/openhire/jobportal/portal/favorite/favoriteinfra"
	"github.com/openhire/jobportal/portal/favorite/favoritesrv"
	"github.com/openhire/jobportal/portal/job/jobapi"
	"github.com/openhire/jobportal/portal/job/jobinfra"
	"github.com/openhire/jobportal/portal/job/jobsrv"
	"github.com/openhire/jobportal/portal/user/userapi"
	"github.com/openhire/jobportal/portal/user/userauth"
	"github.com/openhire/jobportal/portal/user/userinfra"
	"github.com/openhire/jobportal/portal/user/usersrv"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB    *sqlx.DB
	Redis *redis.Client

	// IAM
	TokenService auth.TokenService
	TokenStore   auth.TokenStore
	Passwords    auth.PasswordService
	Resolver     *access.Resolver

	// Domain Services
	UserService        *usersrv.UserService
	AuthService        *userauth.AuthService
	CatalogService     *catalogsrv.CatalogService
	CompanyService     *companysrv.CompanyService
	JobService         *jobsrv.JobService
	ApplicationService *applicationsrv.ApplicationService
	FavoriteService    *favoritesrv.FavoriteService
	CVService          *cvsrv.CVService
	DashboardService   *dashboardsrv.DashboardService

	// API Handlers
	UserHandlers        *userapi.Handlers
	CatalogHandlers     *catalogapi.Handlers
	CompanyHandlers     *companyapi.Handlers
	JobHandlers         *jobapi.Handlers
	ApplicationHandlers *applicationapi.Handlers
	FavoriteHandlers    *favoriteapi.Handlers
	CVHandlers          *cvapi.Handlers
	DashboardHandlers   *dashboardapi.Handlers

	// Middleware
	AuthMiddleware *auth.TokenMiddleware

	// Seeder
	Seeder *seed.Seeder
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := getenv("DB_HOST", "localhost")
	dbPort := getenv("DB_PORT", "5432")
	dbUser := getenv("DB_USER", "postgres")
	dbPass := os.Getenv("DB_PASS")
	dbName := getenv("DB_NAME", "jobportal")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection (token revocation)
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     getenv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASS"),
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. Token Service
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		jwtSecret = "super-secret-key-please-change-me-in-production"
	}
	tokenTTL := 24 * time.Hour
	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			tokenTTL = parsed
		}
	}
	c.TokenService = auth.NewJWTService(jwtSecret, tokenTTL, getenv("JWT_ISSUER", "jobportal"))
	c.TokenStore = authinfra.NewRedisTokenStore(c.Redis)
	c.Passwords = auth.NewBcryptPasswordService()
}

func (c *Container) initServices() {
	// --- Repositories ---
	userRepo := userinfra.NewPostgresUserRepository(c.DB)
	sectorRepo := cataloginfra.NewPostgresSectorRepository(c.DB)
	departmentRepo := cataloginfra.NewPostgresDepartmentRepository(c.DB)
	skillRepo := cataloginfra.NewPostgresSkillRepository(c.DB)
	companyRepo := companyinfra.NewPostgresCompanyRepository(c.DB)
	workerRepo := companyinfra.NewPostgresWorkerRepository(c.DB)
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)
	favoriteRepo := favoriteinfra.NewPostgresFavoriteRepository(c.DB)
	cvRepo := cvinfra.NewPostgresCVRepository(c.DB)
	dashboardRepo := dashboardinfra.NewPostgresDashboardRepository(c.DB)

	// --- Access Resolution ---
	c.Resolver = access.NewResolver(userRepo)

	// --- Domain Services ---
	c.UserService = usersrv.NewUserService(userRepo, c.Passwords)
	c.AuthService = userauth.NewAuthService(c.UserService, userRepo, c.Passwords, c.TokenService, c.TokenStore)
	c.CatalogService = catalogsrv.NewCatalogService(sectorRepo, departmentRepo, skillRepo)
	c.CompanyService = companysrv.NewCompanyService(companyRepo, workerRepo, sectorRepo, departmentRepo)
	c.JobService = jobsrv.NewJobService(jobRepo, departmentRepo, skillRepo)
	c.ApplicationService = applicationsrv.NewApplicationService(applicationRepo, jobRepo, cvRepo)
	c.FavoriteService = favoritesrv.NewFavoriteService(favoriteRepo, jobRepo)
	c.CVService = cvsrv.NewCVService(cvRepo, skillRepo)
	c.DashboardService = dashboardsrv.NewDashboardService(dashboardRepo)

	// --- Handlers ---
	c.UserHandlers = userapi.NewHandlers(c.UserService, c.AuthService)
	c.CatalogHandlers = catalogapi.NewHandlers(c.CatalogService)
	c.CompanyHandlers = companyapi.NewHandlers(c.CompanyService, c.Resolver)
	c.JobHandlers = jobapi.NewHandlers(c.JobService, c.Resolver)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService, c.Resolver)
	c.FavoriteHandlers = favoriteapi.NewHandlers(c.FavoriteService)
	c.CVHandlers = cvapi.NewHandlers(c.CVService, c.Resolver)
	c.DashboardHandlers = dashboardapi.NewHandlers(c.DashboardService)

	// --- Middleware ---
	c.AuthMiddleware = auth.NewTokenMiddleware(c.TokenService, c.TokenStore)

	// --- Seeder ---
	c.Seeder = seed.NewSeeder(c.DB, c.Passwords)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
