//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"

	"github.com/and161185/flashdeck/internal/errs"
	"github.com/and161185/flashdeck/internal/generation"
	"github.com/and161185/flashdeck/internal/limiter"
	"github.com/and161185/flashdeck/internal/migrate"
	"github.com/and161185/flashdeck/internal/model"
	"github.com/and161185/flashdeck/internal/repository/postgres"
	"github.com/and161185/flashdeck/internal/service"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// setupDB starts one PostgreSQL container per test run and migrates it.
func setupDB(t *testing.T) (*postgres.DB, func() *limiter.PG) {
	t.Helper()
	once.Do(func() { sharedDSN, initErr = startContainerAndMigrate() })
	if initErr != nil {
		t.Fatalf("setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, pool, err := postgres.New(ctx, sharedDSN, postgres.Options{MaxConns: 16, StatementTimeout: 5 * time.Second})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	gate := func() *limiter.PG {
		return limiter.NewPG(pool, limiter.DefaultPolicy, zaptest.NewLogger(t), limiter.WithRetry(20, 5*time.Millisecond))
	}
	return db, gate
}

func startContainerAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "fd",
				"POSTGRES_PASSWORD": "fd",
				"POSTGRES_DB":       "flashdeck",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("mapped port: %w", err)
	}
	dsn := fmt.Sprintf("postgres://fd:fd@%s:%s/flashdeck?sslmode=disable", host, port.Port())

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return "", fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return "", fmt.Errorf("ping: %w", err)
	}
	if _, err := migrate.UpDB(ctx, db); err != nil {
		return "", err
	}
	return dsn, nil
}

func newOwner() string {
	return "acc-" + uuid.Must(uuid.NewV4()).String()
}

func TestIntegration_WorkspaceTree(t *testing.T) {
	db, _ := setupDB(t)
	ctx := context.Background()
	ws := service.NewWorkspaceService(postgres.NewFolderRepo(db), postgres.NewDeckRepo(db), service.DefaultLimits)
	own := newOwner()

	bio, err := ws.CreateFolder(ctx, own, "Biology", nil)
	require.NoError(t, err)
	cells, err := ws.CreateFolder(ctx, own, "Cells", &bio.ID)
	require.NoError(t, err)
	_, err = ws.CreateFolder(ctx, own, "art", nil)
	require.NoError(t, err)

	cards := []model.Card{{Question: "What is ATP?", Answer: "Energy currency"}, {Question: "Q2", Answer: "A2"}}
	rootDeck, err := ws.CreateDeck(ctx, own, "Root deck", cards, nil)
	require.NoError(t, err)
	_, err = ws.CreateDeck(ctx, own, "Mitosis", cards[:1], &cells.ID)
	require.NoError(t, err)

	root, err := ws.ListChildren(ctx, own, nil)
	require.NoError(t, err)
	require.Len(t, root.Folders, 2)
	require.Equal(t, "Biology", root.Folders[0].Name) // upper case sorts first
	require.Len(t, root.Decks, 1)
	require.Nil(t, root.Decks[0].Cards)
	require.Equal(t, 2, root.Decks[0].CardCount())

	full, err := ws.GetDeck(ctx, own, rootDeck.ID)
	require.NoError(t, err)
	require.Equal(t, cards, full.Cards)

	path, err := ws.ResolvePath(ctx, own, &cells.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Biology", "Cells"}, []string{path[0].Name, path[1].Name})

	fav, err := ws.ToggleFavorite(ctx, own, rootDeck.ID, model.KindDeck)
	require.NoError(t, err)
	require.True(t, fav)

	require.ErrorIs(t, ws.DeleteFolder(ctx, own, bio.ID), errs.ErrNotEmpty)

	// another owner sees nothing
	other, err := ws.ListChildren(ctx, newOwner(), nil)
	require.NoError(t, err)
	require.True(t, other.Empty())
	_, err = ws.GetDeck(ctx, newOwner(), rootDeck.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestIntegration_EqualTopicsKeepOrder(t *testing.T) {
	db, _ := setupDB(t)
	ctx := context.Background()
	ws := service.NewWorkspaceService(postgres.NewFolderRepo(db), postgres.NewDeckRepo(db), service.DefaultLimits)
	own := newOwner()

	cards := []model.Card{{Question: "q", Answer: "a"}}
	var ids []uuid.UUID
	for range 4 {
		d, err := ws.CreateDeck(ctx, own, "Same", cards, nil)
		require.NoError(t, err)
		ids = append(ids, d.ID)
	}
	order := func() []uuid.UUID {
		ch, err := ws.ListChildren(ctx, own, nil)
		require.NoError(t, err)
		out := make([]uuid.UUID, 0, len(ch.Decks))
		for _, d := range ch.Decks {
			out = append(out, d.ID)
		}
		return out
	}
	first := order()

	// rewriting rows moves them in the heap; the listing must not follow
	for _, id := range ids[:2] {
		_, err := ws.ToggleFavorite(ctx, own, id, model.KindDeck)
		require.NoError(t, err)
		_, err = ws.ToggleFavorite(ctx, own, id, model.KindDeck)
		require.NoError(t, err)
	}
	require.Equal(t, first, order())
	require.Equal(t, first, order())
}

func TestIntegration_DeckCheckConstraint(t *testing.T) {
	db, _ := setupDB(t)
	repo := postgres.NewDeckRepo(db)

	err := repo.Create(context.Background(), model.Deck{
		ID:        uuid.Must(uuid.NewV4()),
		OwnerID:   newOwner(),
		Topic:     strings.Repeat("x", 251),
		Cards:     []model.Card{{Question: "q", Answer: "a"}},
		CreatedAt: time.Now().UTC(),
	})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestIntegration_PromptsSeeded(t *testing.T) {
	db, _ := setupDB(t)
	repo := postgres.NewPromptRepo(db)
	for _, id := range []string{generation.PromptForTopic, generation.PromptForFile} {
		p, err := repo.Get(context.Background(), id)
		require.NoError(t, err, id)
		require.Contains(t, p.Template, "{{numCards}}")
	}
}

// Concurrent callers on one identity never exceed the limit.
func TestIntegration_GateConcurrent(t *testing.T) {
	_, newGate := setupDB(t)
	gate := newGate()
	id := newOwner()

	const callers = 250
	var ok, exceeded atomic.Int32
	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := gate.CheckAndConsume(context.Background(), id)
			var qe *errs.QuotaExceededError
			switch {
			case err == nil:
				ok.Add(1)
			case errors.As(err, &qe):
				exceeded.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.EqualValues(t, model.QuotaLimit, ok.Load())
	require.EqualValues(t, callers-model.QuotaLimit, exceeded.Load())
}
