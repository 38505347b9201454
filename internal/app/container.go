package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/pentest-stories/internal/adapter/broker"
	"github.com/heartmarshall/pentest-stories/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/pentest-stories/internal/adapter/postgres/audit"
	profilerepo "github.com/heartmarshall/pentest-stories/internal/adapter/postgres/profile"
	rolerepo "github.com/heartmarshall/pentest-stories/internal/adapter/postgres/role"
	storyrepo "github.com/heartmarshall/pentest-stories/internal/adapter/postgres/story"
	tagrepo "github.com/heartmarshall/pentest-stories/internal/adapter/postgres/tag"
	tokenrepo "github.com/heartmarshall/pentest-stories/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/pentest-stories/internal/adapter/postgres/user"
	verticalrepo "github.com/heartmarshall/pentest-stories/internal/adapter/postgres/vertical"
	"github.com/heartmarshall/pentest-stories/internal/auth"
	"github.com/heartmarshall/pentest-stories/internal/config"
	"github.com/heartmarshall/pentest-stories/internal/domain"
	"github.com/heartmarshall/pentest-stories/internal/service/admin"
	"github.com/heartmarshall/pentest-stories/internal/service/diagram"
	"github.com/heartmarshall/pentest-stories/internal/service/passwordreset"
	"github.com/heartmarshall/pentest-stories/internal/service/session"
	"github.com/heartmarshall/pentest-stories/internal/service/story"
	"github.com/heartmarshall/pentest-stories/internal/transport/dataloader"
	"github.com/heartmarshall/pentest-stories/internal/transport/middleware"
	"github.com/heartmarshall/pentest-stories/internal/transport/rest"
)

type auditStream interface {
	PublishAudit(ctx context.Context, e domain.AuditEntry) error
	Ping(ctx context.Context) error
	Close() error
}

// Repos holds the PostgreSQL repositories shared by the server and storyctl.
type Repos struct {
	Users     *userrepo.Repo
	Profiles  *profilerepo.Repo
	Roles     *rolerepo.Repo
	Tokens    *tokenrepo.Repo
	Stories   *storyrepo.Repo
	Tags      *tagrepo.Repo
	Verticals *verticalrepo.Repo
	Audit     *auditrepo.Repo
	Tx        *postgres.TxManager
}

// NewRepos builds every repository on top of pool.
func NewRepos(pool *pgxpool.Pool) *Repos {
	return &Repos{
		Users:     userrepo.New(pool),
		Profiles:  profilerepo.New(pool),
		Roles:     rolerepo.New(pool),
		Tokens:    tokenrepo.New(pool),
		Stories:   storyrepo.New(pool),
		Tags:      tagrepo.New(pool),
		Verticals: verticalrepo.New(pool),
		Audit:     auditrepo.New(pool),
		Tx:        postgres.NewTxManager(pool),
	}
}

// Services holds the domain services.
type Services struct {
	Session       *session.Service
	Story         *story.Service
	Diagram       *diagram.Service
	PasswordReset *passwordreset.Service
	Admin         *admin.Service
}

// NewServices wires services over repos. publisher receives audit events
// emitted by password resets.
func NewServices(cfg *config.Config, logger *slog.Logger, r *Repos, publisher auditStream) *Services {
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	sessions := session.NewService(logger, r.Users, r.Profiles, r.Roles, r.Tokens, r.Tx, jwt, hasher, cfg.Auth)
	stories := story.NewService(logger, r.Stories, r.Tags, r.Verticals, r.Profiles, r.Tx)
	resets := passwordreset.NewService(logger, r.Users, r.Roles, r.Tokens, r.Audit, publisher, hasher, r.Tx)

	return &Services{
		Session:       sessions,
		Story:         stories,
		Diagram:       diagram.NewService(logger, r.Stories, r.Tags),
		PasswordReset: resets,
		Admin: admin.NewService(logger, admin.Deps{
			Profiles:  r.Profiles,
			Roles:     r.Roles,
			Tags:      r.Tags,
			Verticals: r.Verticals,
			Stories:   r.Stories,
			Directory: stories,
			Audit:     r.Audit,
			Resetter:  resets,
			Tx:        r.Tx,
		}, cfg.Admin, auth.GenerateTempPassword),
	}
}

// container owns everything that must be released on shutdown.
type container struct {
	handler http.Handler
	closers []func()
}

func (c *container) close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *container, err error) {
	c := &container{}
	defer func() {
		if err != nil {
			c.close()
		}
	}()

	proxies, err := middleware.ParseTrustedProxies(cfg.Server.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("server.trusted_proxies: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	c.closers = append(c.closers, pool.Close)

	publisher, err := openBroker(cfg.Broker, logger)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, func() {
		if cerr := publisher.Close(); cerr != nil {
			logger.Warn("close broker", slog.String("error", cerr.Error()))
		}
	})

	limiter, optional, stopLimiter := openLimiter(ctx, cfg, logger)
	c.closers = append(c.closers, stopLimiter)
	if cfg.Broker.Enabled() {
		optional["broker"] = publisher.Ping
	}

	c.handler = newHandler(cfg, logger, pool, publisher, limiter, proxies, optional)
	return c, nil
}

// newHandler assembles the routed, middleware-wrapped API over an open pool.
func newHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, publisher auditStream, limiter middleware.Limiter, proxies middleware.TrustedProxies, optional map[string]rest.CheckFunc) http.Handler {
	repos := NewRepos(pool)
	svcs := NewServices(cfg, logger, repos, publisher)

	handlers := rest.Handlers{
		Health:    rest.NewHealthHandler(pool, Version, optional),
		Session:   rest.NewSessionHandler(svcs.Session, logger),
		Story:     rest.NewStoryHandler(svcs.Story, logger),
		Diagram:   rest.NewDiagramHandler(svcs.Diagram, logger),
		Admin:     rest.NewAdminHandler(svcs.Admin, logger),
		Functions: rest.NewFunctionHandler(svcs.PasswordReset, logger),
	}
	guards := rest.Guards{
		AuthLimit:  middleware.RateLimit(limiter, "auth", cfg.RateLimit.AuthPerMinute, logger),
		ResetLimit: middleware.RateLimit(limiter, "reset", cfg.RateLimit.ResetPerMinute, logger),
		Loaders:    dataloader.Middleware(&dataloader.Repos{Profiles: repos.Profiles}),
	}

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.ClientInfo(proxies),
		middleware.Auth(svcs.Session),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
	)(rest.NewMux(handlers, guards))
}

func openBroker(cfg config.BrokerConfig, logger *slog.Logger) (auditStream, error) {
	if !cfg.Enabled() {
		return broker.Nop{}, nil
	}
	p, err := broker.Dial(cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("audit events published", slog.String("exchange", cfg.Exchange))
	return p, nil
}

// openLimiter returns the shared Redis limiter when configured, else an
// in-memory one. An unreachable Redis is logged; the limiter fails open.
func openLimiter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (limiter middleware.Limiter, optional map[string]rest.CheckFunc, stop func()) {
	optional = make(map[string]rest.CheckFunc)

	if !cfg.Redis.Enabled() {
		rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		return rl, optional, rl.Stop
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, rate limits fail open", slog.String("error", err.Error()))
	}
	optional["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	stop = func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("close redis", slog.String("error", err.Error()))
		}
	}
	return middleware.NewRedisLimiter(rdb, cfg.Redis.Prefix), optional, stop
}
