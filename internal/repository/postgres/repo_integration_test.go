//go:build integration

package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/evgeniy-krivenko/blog-calendar/internal/migrations"
	"github.com/evgeniy-krivenko/blog-calendar/internal/repository/repotest"
	"github.com/evgeniy-krivenko/blog-calendar/pkg/database"
)

var testDB *database.Database

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, db, err := startPostgres(ctx)
	if err != nil {
		fmt.Printf("start postgres: %v\n", err)
		os.Exit(1)
	}
	testDB = db

	code := m.Run()

	db.Close()
	_ = container.Terminate(ctx)

	os.Exit(code)
}

func startPostgres(ctx context.Context) (testcontainers.Container, *database.Database, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "blog",
			"POSTGRES_PASSWORD": "blog",
			"POSTGRES_DB":       "blog",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("start container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return container, nil, fmt.Errorf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return container, nil, fmt.Errorf("container port: %v", err)
	}

	pool, err := database.NewPGX(ctx, database.NewOptions(
		fmt.Sprintf("%s:%s", host, port.Port()),
		"blog",
		"blog",
		"blog",
		database.WithRetryAttempts(10),
	))
	if err != nil {
		return container, nil, fmt.Errorf("connect: %v", err)
	}
	db := database.NewDatabase(pool)

	std := db.StdDB()
	defer std.Close()
	if err := migrations.Up(ctx, std, migrations.Postgres); err != nil {
		return container, db, fmt.Errorf("migrate: %v", err)
	}

	return container, db, nil
}

type seeder struct {
	db *database.Database
}

func (s seeder) SeedCategory(ctx context.Context, name, slug, color string) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx,
		`INSERT INTO categories (name, slug, color) VALUES ($1, $2, $3) RETURNING id`,
		name, slug, color,
	).Scan(&id)

	return id, err
}

func (s seeder) SeedPost(ctx context.Context, title, slug string, categoryID *int64, createdAt time.Time) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx,
		`INSERT INTO posts (title, slug, category_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $4) RETURNING id`,
		title, slug, categoryID, createdAt,
	).Scan(&id)

	return id, err
}

func TestPostgresRepo_Compliance(t *testing.T) {
	repotest.Run(t, func(t *testing.T) (repotest.Repository, repotest.Seeder) {
		_, err := testDB.Exec(context.Background(), `TRUNCATE posts, categories, calendar_memos RESTART IDENTITY CASCADE`)
		if err != nil {
			t.Fatalf("truncate: %v", err)
		}

		return New(testDB), seeder{db: testDB}
	})
}
