package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/evgeniy-krivenko/blog-calendar/internal/api/httpapi"
	"github.com/evgeniy-krivenko/blog-calendar/internal/config"
	"github.com/evgeniy-krivenko/blog-calendar/internal/entity"
	"github.com/evgeniy-krivenko/blog-calendar/internal/identity"
	"github.com/evgeniy-krivenko/blog-calendar/internal/migrations"
	"github.com/evgeniy-krivenko/blog-calendar/internal/repository/postgres"
	"github.com/evgeniy-krivenko/blog-calendar/internal/repository/sqlite"
	"github.com/evgeniy-krivenko/blog-calendar/internal/usecase/feed"
	"github.com/evgeniy-krivenko/blog-calendar/internal/usecase/memos"
	"github.com/evgeniy-krivenko/blog-calendar/pkg/database"
	"github.com/evgeniy-krivenko/blog-calendar/pkg/grpcx"
	"github.com/evgeniy-krivenko/blog-calendar/pkg/gwserver"
	"github.com/evgeniy-krivenko/blog-calendar/pkg/logger/slogx"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

type repository interface {
	SaveMemo(ctx context.Context, userID, date, text string) (entity.Memo, error)
	FetchMemos(ctx context.Context, userID string, year int, month time.Month) ([]entity.Memo, error)
	MemoOwner(ctx context.Context, id int64) (string, error)
	DeleteMemo(ctx context.Context, id int64) error
	RunInTx(ctx context.Context, f func(context.Context) error) error
	LatestPosts(ctx context.Context, limit int) ([]entity.Post, error)
	Categories(ctx context.Context) ([]entity.Category, error)
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type store struct {
	repo  repository
	ping  pingFunc
	close func()
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return fmt.Errorf("parse cfg: %v", err)
	}

	if err := slogx.InitGlobal(os.Stdout, cfg.App.LogLevel, cfg.App.Pretty, slogx.ContextHandler); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}
	logger := slogx.Default()

	health := grpcx.NewHealth()

	grpcSrv, err := grpcx.New(grpcx.NewOptions(
		cfg.GRPC.Addr,
		grpcx.WithServices(health),
		grpcx.WithLogger(logger),
		grpcx.WithKeepalive(cfg.GRPC.KeepaliveTime, cfg.GRPC.KeepaliveTimeout),
	))
	if err != nil {
		return fmt.Errorf("init grpc server: %v", err)
	}

	st, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("open store: %v", err)
	}
	defer st.close()

	memosUC, err := memos.New(memos.NewOptions(st.repo))
	if err != nil {
		return fmt.Errorf("init memos usecase: %v", err)
	}

	feedUC, err := feed.New(feed.NewOptions(st.repo))
	if err != nil {
		return fmt.Errorf("init feed usecase: %v", err)
	}

	var resolver *identity.TokenResolver
	if len(cfg.Auth.Tokens) > 0 {
		resolver = identity.NewTokenResolver(cfg.Auth.Tokens)
	}

	httpSrv, err := gwserver.New(gwserver.NewOptions(
		cfg.HTTP.Addr,
		httpapi.NewRouter(httpapi.NewHandler(memosUC, feedUC, st.ping)),
		gwserver.WithMiddlewares(httpapi.Middlewares(resolver, cfg.Auth.Required)...),
		gwserver.WithLogger(logger),
	))
	if err != nil {
		return fmt.Errorf("init http server: %v", err)
	}

	health.SetServing(true)

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return grpcSrv.Run(ctx) })
	eg.Go(func() error { return httpSrv.Run(ctx) })
	eg.Go(func() error {
		<-ctx.Done()
		health.Shutdown()
		return nil
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	logger.Info(context.Background(), "app stopped")

	return nil
}

func openStore(ctx context.Context, cfg config.DatabaseConfig, logger *slogx.Logger) (store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return openSQLite(ctx, cfg, logger)
	default:
		return openPostgres(ctx, cfg, logger)
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *slogx.Logger) (store, error) {
	pool, err := database.NewPGX(ctx, database.NewOptions(
		net.JoinHostPort(cfg.Host, cfg.Port),
		cfg.User,
		cfg.Password,
		cfg.Name,
		database.WithRetryAttempts(cfg.RetryAttempts),
		database.WithLogger(logger),
	))
	if err != nil {
		return store{}, fmt.Errorf("connect postgres: %v", err)
	}

	db := database.NewDatabase(pool)

	stdDB := db.StdDB()
	defer stdDB.Close()

	if err := migrations.Up(ctx, stdDB, migrations.Postgres); err != nil {
		db.Close()
		return store{}, fmt.Errorf("migrate postgres: %v", err)
	}

	logger.Info(ctx, "postgres store ready", slog.String("host", cfg.Host), slog.String("db", cfg.Name))

	return store{
		repo:  postgres.New(db),
		ping:  db.Ping,
		close: db.Close,
	}, nil
}

func openSQLite(ctx context.Context, cfg config.DatabaseConfig, logger *slogx.Logger) (store, error) {
	db, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		return store{}, fmt.Errorf("open sqlite: %v", err)
	}

	if err := migrations.Up(ctx, db, migrations.SQLite); err != nil {
		_ = db.Close()
		return store{}, fmt.Errorf("migrate sqlite: %v", err)
	}

	logger.Info(ctx, "sqlite store ready", slog.String("path", cfg.SQLitePath))

	return store{
		repo:  sqlite.New(db),
		ping:  db.PingContext,
		close: func() { closeSQLite(db, logger) },
	}, nil
}

func closeSQLite(db *sql.DB, logger *slogx.Logger) {
	if err := db.Close(); err != nil {
		logger.Warn(context.Background(), "close sqlite", slogx.Err(err))
	}
}
