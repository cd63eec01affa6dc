package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/httpapi"
	"github.com/dmitrijs2005/authgate/internal/server/users"
)

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (nopLogger) With(args ...any) logging.Logger                    { return nopLogger{} }

// newTestClient spins up a full server stack behind httptest and returns a
// client pointed at it.
func newTestClient(t *testing.T) *Client {
	t.Helper()

	codec := auth.NewCodec([]byte("test-secret"), time.Hour, nil)
	svc := users.NewService(users.NewInMemoryRepository(), codec)
	srv := httptest.NewServer(httpapi.NewServer(":0", nopLogger{}, svc, codec).Handler())
	t.Cleanup(srv.Close)

	return NewClient(srv.URL)
}

func TestClient_RegisterLoginWhoami(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	tokenA, err := c.Register(ctx, "alice", []byte("s3cret"))
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if tokenA == "" {
		t.Fatal("expected a token from Register")
	}

	tokenB, err := c.Login(ctx, "alice", []byte("s3cret"))
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	identity, err := c.Whoami(ctx, tokenB)
	if err != nil {
		t.Fatalf("Whoami error: %v", err)
	}
	if identity.Username != "alice" {
		t.Fatalf("expected alice, got %q", identity.Username)
	}
}

func TestClient_ErrorMapping(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	if _, err := c.Register(ctx, "", []byte("")); !errors.Is(err, common.ErrorInvalidInput) {
		t.Fatalf("expected common.ErrorInvalidInput, got %v", err)
	}

	if _, err := c.Register(ctx, "alice", []byte("s3cret")); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, err := c.Register(ctx, "alice", []byte("other")); !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected common.ErrorAlreadyExists, got %v", err)
	}

	if _, err := c.Login(ctx, "alice", []byte("wrong")); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected common.ErrorUnauthorized, got %v", err)
	}

	if _, err := c.Whoami(ctx, "garbage"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected common.ErrorUnauthorized for bad token, got %v", err)
	}
}

func TestClient_Ping(t *testing.T) {
	c := newTestClient(t)

	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping error: %v", err)
	}
}

func TestClient_PingUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	if err := c.Ping(context.Background()); err == nil {
		t.Fatal("expected error for failing ping")
	}
}
