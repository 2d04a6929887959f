package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-cricket/internal/config"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/contact"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/contest"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/store"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/team"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/account/oauth"
	cacherepo "github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/offline"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/session"
	"github.com/riskibarqy/fantasy-cricket/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/fantasy-cricket/internal/platform/cache"
	idgen "github.com/riskibarqy/fantasy-cricket/internal/platform/id"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

// App owns the HTTP server and the store handle behind it.
type App struct {
	Server *http.Server
	db     *sqlx.DB
	logger *logging.Logger
}

type repositories struct {
	users    user.Repository
	matches  match.Repository
	players  player.Repository
	teams    team.Repository
	contests contest.Repository
	contacts contact.Repository
	seeder   match.Seeder
	status   store.Status
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	db := openStore(ctx, cfg, logger)
	repos := newRepositories(db)

	var readCache *basecache.Store
	if cfg.CacheEnabled {
		readCache = basecache.NewStore(cfg.CacheTTL)
		repos.matches = cacherepo.NewMatchRepository(repos.matches, readCache)
		repos.players = cacherepo.NewPlayerRepository(repos.players, readCache)
	}

	ids := idgen.NewUUIDGenerator()
	sessions, err := session.NewManager(session.Config{
		Secret:     cfg.SessionSecret,
		CookieName: cfg.SessionCookieName,
		TTL:        cfg.SessionTTL,
		Secure:     cfg.SessionCookieSecure,
	}, ids)
	if err != nil {
		closeDB(db, logger)
		return nil, fmt.Errorf("build session manager: %w", err)
	}

	loginClient := oauth.NewClient(oauth.ClientConfig{
		BaseURL: cfg.OAuthBaseURL,
		AppID:   cfg.OAuthAppID,
		Timeout: cfg.OAuthTimeout,
		Logger:  logger.Named("oauth"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.OAuthCircuitEnabled,
			FailureThreshold: cfg.OAuthCircuitFailures,
			OpenTimeout:      cfg.OAuthCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.OAuthCircuitHalfOpenReq,
		},
	})
	if cfg.OAuthBaseURL == "" {
		logger.Warn("login provider not configured", "reason", "OAUTH_BASE_URL empty")
	}

	userService := usecase.NewUserService(repos.users, repos.status, cfg.OwnerOpenID, logger)
	seedService := usecase.NewSeedService(repos.seeder, repos.status, func(ctx context.Context) {
		cacherepo.Purge(ctx, readCache)
	}, logger)

	handler := httpapi.NewHandler(
		usecase.NewMatchService(repos.matches),
		usecase.NewPlayerService(repos.players),
		usecase.NewTeamService(repos.matches, repos.players, repos.teams, repos.status, team.DefaultRules(), logger),
		usecase.NewContestService(repos.contests, repos.teams, repos.status, logger),
		usecase.NewLeaderboardService(repos.users),
		usecase.NewDashboardService(repos.users, repos.teams, repos.contests),
		userService,
		usecase.NewContactService(repos.contacts, repos.status, logger),
		seedService,
		sessions,
		loginClient,
		logger,
	)
	router := httpapi.NewRouter(handler, sessions, userService, ids, logger, cfg.CORSAllowedOrigins)

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		db:     db,
		logger: logger,
	}, nil
}

// Close releases the store handle. It does not stop the HTTP server.
func (a *App) Close() {
	if a == nil {
		return
	}
	closeDB(a.db, a.logger)
}

func newRepositories(db *sqlx.DB) repositories {
	if db == nil {
		return repositories{
			users:    offline.UserRepository{},
			matches:  offline.MatchRepository{},
			players:  offline.PlayerRepository{},
			teams:    offline.TeamRepository{},
			contests: offline.ContestRepository{},
			contacts: offline.ContactRepository{},
			seeder:   offline.SeedRepository{},
			status:   store.Detached(),
		}
	}

	return repositories{
		users:    postgres.NewUserRepository(db),
		matches:  postgres.NewMatchRepository(db),
		players:  postgres.NewPlayerRepository(db),
		teams:    postgres.NewTeamRepository(db),
		contests: postgres.NewContestRepository(db),
		contacts: postgres.NewContactRepository(db),
		seeder:   postgres.NewSeedRepository(db),
		status:   store.Attached(),
	}
}
