package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joblyhq/jobly/auth"
	authHandlers "github.com/joblyhq/jobly/auth/handlers"
	authServices "github.com/joblyhq/jobly/auth/services"
	"github.com/joblyhq/jobly/companies"
	companyHandlers "github.com/joblyhq/jobly/companies/handlers"
	companyRepository "github.com/joblyhq/jobly/companies/repository"
	companyServices "github.com/joblyhq/jobly/companies/services"
	"github.com/joblyhq/jobly/internal/auth/tokens"
	"github.com/joblyhq/jobly/internal/database/postgres"
	"github.com/joblyhq/jobly/internal/middleware/accesslog"
	"github.com/joblyhq/jobly/internal/middleware/authjwt"
	"github.com/joblyhq/jobly/internal/middleware/ratelimit"
	"github.com/joblyhq/jobly/internal/middleware/requestid"
	"github.com/joblyhq/jobly/internal/platform/config"
	"github.com/joblyhq/jobly/internal/platform/metrics"
	"github.com/joblyhq/jobly/internal/server"
	"github.com/joblyhq/jobly/jobs"
	jobHandlers "github.com/joblyhq/jobly/jobs/handlers"
	jobRepository "github.com/joblyhq/jobly/jobs/repository"
	jobServices "github.com/joblyhq/jobly/jobs/services"
	"github.com/joblyhq/jobly/users"
	userHandlers "github.com/joblyhq/jobly/users/handlers"
	userRepository "github.com/joblyhq/jobly/users/repository"
	userServices "github.com/joblyhq/jobly/users/services"
)

const healthTimeout = 2 * time.Second

// appDeps are the long-lived resources the HTTP app is assembled from.
type appDeps struct {
	Config  *config.Config
	DB      *postgres.Client
	Metrics *metrics.Metrics
	// Limiter stores rate limit counters; nil keeps them in memory.
	Limiter fiber.Storage
}

// buildApp wires repositories, services and handlers into a fiber app.
func buildApp(deps appDeps) *fiber.App {
	cfg := deps.Config

	app := fiber.New(fiber.Config{
		AppName:      "jobly",
		ErrorHandler: server.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(accesslog.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.WebDomain,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, OPTIONS",
	}))
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
	}

	issuer := tokens.NewIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	app.Use(authjwt.New(authjwt.Config{Parser: issuer}))

	app.Get("/health", server.Health(deps.DB, healthTimeout))
	if deps.Metrics != nil && cfg.Metrics.Enabled {
		app.Get(cfg.Metrics.Path, deps.Metrics.Handler())
	}

	companyService := companyServices.NewCompanyService(companyRepository.NewPostgresRepository(deps.DB))
	jobService := jobServices.NewJobService(jobRepository.NewPostgresRepository(deps.DB))
	userService := userServices.NewUserService(userRepository.NewPostgresRepository(deps.DB), cfg.Security.BcryptCost)
	authService := authServices.NewAuthService(userService, issuer, cfg.Security.PasswordMinScore)

	auth.RegisterRoutes(app, &auth.AuthHandlers{
		AuthHandler: authHandlers.NewAuthHandler(authService),
	}, authRouteConfig(cfg.RateLimits, deps.Limiter))
	companies.RegisterRoutes(app, &companies.CompaniesHandlers{
		CompanyHandler: companyHandlers.NewCompanyHandler(companyService),
	})
	jobs.RegisterRoutes(app, &jobs.JobsHandlers{
		JobHandler: jobHandlers.NewJobHandler(jobService),
	})
	users.RegisterRoutes(app, &users.UsersHandlers{
		UserHandler: userHandlers.NewUserHandler(userService, issuer),
	})

	app.Use(server.NotFound)

	return app
}

func authRouteConfig(limits config.RateLimitsConfig, storage fiber.Storage) auth.RouteConfig {
	var rc auth.RouteConfig
	if limits.Login.Enabled {
		rc.TokenLimit = &ratelimit.Config{
			EndpointType: ratelimit.EndpointLogin,
			Limit:        ratelimit.Limit{Max: limits.Login.Max, Duration: limits.Login.Duration},
			Storage:      storage,
		}
	}
	if limits.Register.Enabled {
		rc.RegisterLimit = &ratelimit.Config{
			EndpointType: ratelimit.EndpointRegister,
			Limit:        ratelimit.Limit{Max: limits.Register.Max, Duration: limits.Register.Duration},
			Storage:      storage,
		}
	}
	return rc
}
