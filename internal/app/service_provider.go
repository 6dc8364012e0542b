package app

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	adminAPI "goldchip_backend/internal/api/admin"
	authAPI "goldchip_backend/internal/api/auth"
	blackjackAPI "goldchip_backend/internal/api/blackjack"
	leaderboardAPI "goldchip_backend/internal/api/leaderboard"
	rouletteAPI "goldchip_backend/internal/api/roulette"
	slotsAPI "goldchip_backend/internal/api/slots"
	statsAPI "goldchip_backend/internal/api/stats"
	"goldchip_backend/internal/config"
	"goldchip_backend/internal/config/env"
	"goldchip_backend/internal/database"
	"goldchip_backend/internal/game/rng"
	"goldchip_backend/internal/middleware"
	"goldchip_backend/internal/repository"
	"goldchip_backend/internal/repository/leaderboard_repo"
	"goldchip_backend/internal/repository/session_repo"
	"goldchip_backend/internal/repository/stats_repo"
	"goldchip_backend/internal/repository/user_repo"
	"goldchip_backend/internal/service"
	"goldchip_backend/internal/service/admin"
	"goldchip_backend/internal/service/auth"
	"goldchip_backend/internal/service/blackjack"
	"goldchip_backend/internal/service/leaderboard"
	"goldchip_backend/internal/service/roulette"
	"goldchip_backend/internal/service/settlement"
	"goldchip_backend/internal/service/slots"
	"goldchip_backend/internal/service/stats"
)

type ServiceProvider struct {
	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Randomness shared by every game
	rngSource rng.Source

	// Repositories
	userRepo        repository.UserRepository
	sessionRepo     repository.SessionRepository
	statsRepo       repository.StatsRepository
	leaderboardRepo repository.LeaderboardRepository

	// Settlement
	reconciler *settlement.Reconciler

	// Auth bits
	jwtConfig  config.JWTConfig
	gameConfig config.GameConfig
	authServ   service.AuthService
	authHand   *authAPI.Handler

	// Blackjack bits
	blackjackServ service.BlackjackService
	blackjackHand *blackjackAPI.Handler

	// Roulette bits
	rouletteServ service.RouletteService
	rouletteHand *rouletteAPI.Handler

	// Slots bits
	slotsCfg  config.SlotsConfig
	slotsServ service.SlotsService
	slotsHand *slotsAPI.Handler

	// Admin bits
	adminServ service.AdminService
	adminHand *adminAPI.Handler

	// Leaderboard and stats bits
	leaderboardServ service.LeaderboardService
	leaderboardHand *leaderboardAPI.Handler
	statsServ       service.StatsService
	statsHand       *statsAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := database.NewPool(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) RNGSource() rng.Source {
	if sp.rngSource == nil {
		sp.rngSource = rng.NewCryptoSource()
	}
	return sp.rngSource
}

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) GameConfig() config.GameConfig {
	if sp.gameConfig == nil {
		cfg, err := env.NewGameConfig()
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameConfig = cfg
	}
	return sp.gameConfig
}

func (sp *ServiceProvider) SlotsCfg() config.SlotsConfig {
	if sp.slotsCfg == nil {
		cfg, err := env.NewSlotsConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get slots config: " + err.Error())
		}
		sp.slotsCfg = cfg
	}
	return sp.slotsCfg
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) SessionRepo(ctx context.Context) repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository(sp.DBClient(ctx))
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) StatsRepo(ctx context.Context) repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.DBClient(ctx))
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) LeaderboardRepo(ctx context.Context) repository.LeaderboardRepository {
	if sp.leaderboardRepo == nil {
		sp.leaderboardRepo = leaderboard_repo.NewLeaderboardRepository(sp.DBClient(ctx))
	}
	return sp.leaderboardRepo
}

func (sp *ServiceProvider) Reconciler(ctx context.Context) *settlement.Reconciler {
	if sp.reconciler == nil {
		sp.reconciler = settlement.NewReconciler(sp.UserRepo(ctx), sp.StatsRepo(ctx), sp.GameConfig().PityGrant())
	}
	return sp.reconciler
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.UserRepo(ctx),
			sp.SessionRepo(ctx),
			sp.JWTConfig(),
			sp.GameConfig(),
			sp.TXManager(ctx),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) BlackjackService(ctx context.Context) service.BlackjackService {
	if sp.blackjackServ == nil {
		sp.blackjackServ = blackjack.NewBlackjackService(
			sp.RNGSource(),
			sp.UserRepo(ctx),
			sp.Reconciler(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.blackjackServ
}

func (sp *ServiceProvider) BlackjackHandler(ctx context.Context) *blackjackAPI.Handler {
	if sp.blackjackHand == nil {
		sp.blackjackHand = blackjackAPI.NewHandler(blackjackAPI.HandlerDeps{Serv: sp.BlackjackService(ctx)})
	}
	return sp.blackjackHand
}

func (sp *ServiceProvider) RouletteService(ctx context.Context) service.RouletteService {
	if sp.rouletteServ == nil {
		sp.rouletteServ = roulette.NewRouletteService(
			sp.RNGSource(),
			sp.UserRepo(ctx),
			sp.Reconciler(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.rouletteServ
}

func (sp *ServiceProvider) RouletteHandler(ctx context.Context) *rouletteAPI.Handler {
	if sp.rouletteHand == nil {
		sp.rouletteHand = rouletteAPI.NewHandler(rouletteAPI.HandlerDeps{Serv: sp.RouletteService(ctx)})
	}
	return sp.rouletteHand
}

func (sp *ServiceProvider) SlotsService(ctx context.Context) service.SlotsService {
	if sp.slotsServ == nil {
		sp.slotsServ = slots.NewSlotsService(
			sp.RNGSource(),
			sp.SlotsCfg(),
			sp.UserRepo(ctx),
			sp.Reconciler(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.slotsServ
}

func (sp *ServiceProvider) SlotsHandler(ctx context.Context) *slotsAPI.Handler {
	if sp.slotsHand == nil {
		sp.slotsHand = slotsAPI.NewHandler(slotsAPI.HandlerDeps{Serv: sp.SlotsService(ctx)})
	}
	return sp.slotsHand
}

func (sp *ServiceProvider) AdminService(ctx context.Context) service.AdminService {
	if sp.adminServ == nil {
		sp.adminServ = admin.NewAdminService(sp.UserRepo(ctx))
	}
	return sp.adminServ
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{Serv: sp.AdminService(ctx)})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) LeaderboardService(ctx context.Context) service.LeaderboardService {
	if sp.leaderboardServ == nil {
		sp.leaderboardServ = leaderboard.NewLeaderboardService(sp.LeaderboardRepo(ctx))
	}
	return sp.leaderboardServ
}

func (sp *ServiceProvider) LeaderboardHandler(ctx context.Context) *leaderboardAPI.Handler {
	if sp.leaderboardHand == nil {
		sp.leaderboardHand = leaderboardAPI.NewHandler(leaderboardAPI.HandlerDeps{Serv: sp.LeaderboardService(ctx)})
	}
	return sp.leaderboardHand
}

func (sp *ServiceProvider) StatsService(ctx context.Context) service.StatsService {
	if sp.statsServ == nil {
		sp.statsServ = stats.NewStatsService(sp.StatsRepo(ctx))
	}
	return sp.statsServ
}

func (sp *ServiceProvider) StatsHandler(ctx context.Context) *statsAPI.Handler {
	if sp.statsHand == nil {
		sp.statsHand = statsAPI.NewHandler(statsAPI.HandlerDeps{Serv: sp.StatsService(ctx)})
	}
	return sp.statsHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           60 * 15,
		}))

		requireAuth := middleware.Auth(sp.JWTConfig().AccessTokenSecretKey())

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/api/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
			rr.With(requireAuth).Get("/me", authHandler.Me)
		})

		// Blackjack endpoints
		blackjackHandler := sp.BlackjackHandler(ctx)
		r.Route("/api/blackjack", func(rr chi.Router) {
			rr.Use(requireAuth)
			rr.Post("/start", blackjackHandler.Start)
			rr.Post("/hit", blackjackHandler.Hit)
			rr.Post("/stand", blackjackHandler.Stand)
			rr.Get("/state", blackjackHandler.State)
		})

		// Roulette endpoints
		rouletteHandler := sp.RouletteHandler(ctx)
		r.Route("/api/roulette", func(rr chi.Router) {
			rr.Get("/bet-types", rouletteHandler.BetTypes)
			rr.With(requireAuth).Post("/play", rouletteHandler.Play)
		})

		// Slots endpoints
		slotsHandler := sp.SlotsHandler(ctx)
		r.Route("/api/slots", func(rr chi.Router) {
			rr.Get("/paytable", slotsHandler.Paytable)
			rr.Get("/probabilities", slotsHandler.Probabilities)
			rr.Get("/simulate", slotsHandler.Simulate)
			rr.With(requireAuth).Post("/play", slotsHandler.Play)
		})

		// Admin endpoints
		adminHandler := sp.AdminHandler(ctx)
		r.Route("/api/admin", func(rr chi.Router) {
			rr.Use(requireAuth)
			rr.Use(middleware.RequireAdmin)
			rr.Post("/ban", adminHandler.Ban)
			rr.Post("/unban", adminHandler.Unban)
		})

		// Leaderboard and stats endpoints
		r.Get("/api/leaderboard", sp.LeaderboardHandler(ctx).Top)
		r.With(requireAuth).Get("/api/stats/{game}", sp.StatsHandler(ctx).Get)

		sp.router = r
	}

	return sp.router
}
