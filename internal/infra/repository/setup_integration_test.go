//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"resort-booking/internal/domain/user"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/infra/repository"
	"resort-booking/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testDBUser     = "test"
	testDBPassword = "testpass"
)

var (
	pgContainerOnce sync.Once
	pgContainer     testcontainers.Container
	pgHost          string
	pgPort          nat.Port
)

func startPostgresOnce(t *testing.T) {
	t.Helper()

	pgContainerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		req := testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testDBUser,
				"POSTGRES_PASSWORD": testDBPassword,
				"POSTGRES_DB":       "postgres",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(time.Minute),
		}

		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start postgres container")
		pgContainer = container

		pgHost, err = container.Host(ctx)
		require.NoError(t, err)
		pgPort, err = container.MappedPort(ctx, "5432/tcp")
		require.NoError(t, err)
	})
}

// setupDB starts the shared container, creates a throwaway database for the
// calling test and applies the schema to it.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	startPostgresOnce(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testDBUser, testDBPassword, pgHost, pgPort.Port())

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer adminPool.Close()

	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			return
		}
		defer cleanupPool.Close()
		_, _ = cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName)
	})

	dbCfg := config.DBConfig{
		Host:     pgHost,
		Port:     pgPort.Port(),
		User:     testDBUser,
		Password: testDBPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	pool, cleanup, err := db.Connect(ctx, dbCfg)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(cleanup)

	applySchema(t, ctx, pool)
	return pool
}

func applySchema(t *testing.T, ctx context.Context, pool *pgxpool.Pool) {
	t.Helper()

	// Resolve the schema file relative to possible working dirs during go test.
	candidates := []string{
		filepath.Join("db", "schema.sql"),
		filepath.Join("..", "..", "..", "db", "schema.sql"),
	}
	var (
		schema  []byte
		readErr error
	)
	for _, cand := range candidates {
		schema, readErr = os.ReadFile(cand)
		if readErr == nil {
			break
		}
	}
	require.NoError(t, readErr, "failed to read schema file")

	_, err := pool.Exec(ctx, string(schema))
	require.NoError(t, err, "failed to apply schema")
}

func seedUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	u, err := user.New("guest"+uuid.NewString()[:8], uuid.NewString()[:8]+"@example.com", "hashed")
	require.NoError(t, err)
	require.NoError(t, repository.NewUserRepository().Create(ctx, pool, u))
	return u.ID()
}

func userWithName(username string) (*user.User, error) {
	return user.New(username, uuid.NewString()[:8]+"@example.com", "hashed")
}

func seedService(t *testing.T, ctx context.Context, pool *pgxpool.Pool, typ string, priceCents int64, code string, capacity int) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(ctx,
		"INSERT INTO services (type, price_cents) VALUES ($1, $2) RETURNING id",
		typ, priceCents,
	).Scan(&id)
	require.NoError(t, err)

	if code != "" {
		_, err = pool.Exec(ctx,
			"INSERT INTO service_subtypes (service_id, code, capacity) VALUES ($1, $2, $3)",
			id, code, capacity,
		)
		require.NoError(t, err)
	}
	return id
}

func seedEvent(t *testing.T, ctx context.Context, pool *pgxpool.Pool, createdBy uuid.UUID, date time.Time, seats int) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(ctx,
		"INSERT INTO events (title, event_date, seats, created_by) VALUES ($1, $2, $3, $4) RETURNING id",
		"Live music night", date, seats, createdBy,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedProduct(t *testing.T, ctx context.Context, pool *pgxpool.Pool, name string, priceCents int64) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(ctx,
		"INSERT INTO products (name, price_cents) VALUES ($1, $2) RETURNING id",
		name, priceCents,
	).Scan(&id)
	require.NoError(t, err)
	return id
}
