package grpcserver

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func makeJWT(t *testing.T, sub string, key []byte, method jwt.SigningMethod, iat time.Time, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(iat),
		NotBefore: jwt.NewNumericDate(iat),
		ExpiresAt: jwt.NewNumericDate(iat.Add(ttl)),
	}
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return s
}

func incoming(kv ...string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(kv...))
}

func TestIdentityFromCtx(t *testing.T) {
	t.Parallel()

	if _, ok := IdentityFromCtx(context.Background()); ok {
		t.Fatalf("expected no identity in empty ctx")
	}
	if _, ok := IdentityFromCtx(WithIdentity(context.Background(), Identity{})); ok {
		t.Fatalf("empty id must not count as identity")
	}
	got, ok := IdentityFromCtx(WithIdentity(context.Background(), Identity{ID: "u1"}))
	if !ok || got.ID != "u1" || got.Guest {
		t.Fatalf("unexpected identity: %+v %v", got, ok)
	}
}

func Test_bearerTokenFromMD(t *testing.T) {
	t.Parallel()

	got, err := bearerTokenFromMD(incoming("authorization", "Bearer abc.def.ghi"))
	if err != nil || got != "abc.def.ghi" {
		t.Fatalf("ok: got=%q err=%v", got, err)
	}
	if _, err := bearerTokenFromMD(incoming("authorization", "Basic foo")); err == nil {
		t.Fatalf("want error on non-bearer")
	}
	if _, err := bearerTokenFromMD(incoming("authorization", "Bearer   ")); err == nil {
		t.Fatalf("want error on empty token")
	}
	if _, err := bearerTokenFromMD(context.Background()); err == nil {
		t.Fatalf("want error on no metadata")
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	key := []byte("secret")
	a := NewAuthenticator(key)
	now := time.Now().UTC()
	good := makeJWT(t, "acc-1", key, jwt.SigningMethodHS256, now.Add(-time.Minute), 10*time.Minute)

	tests := []struct {
		name    string
		ctx     context.Context
		want    Identity
		wantErr bool
	}{
		{"bearer", incoming("authorization", "Bearer "+good), Identity{ID: "acc-1"}, false},
		{"bearer wins over guest", incoming("authorization", "Bearer "+good, GuestHeader, "guest_1700000000000_ab12"), Identity{ID: "acc-1"}, false},
		{"guest", incoming(GuestHeader, "guest_1700000000000_ab12"), Identity{ID: "guest_1700000000000_ab12", Guest: true}, false},
		{"malformed guest", incoming(GuestHeader, "someone"), Identity{}, true},
		{"expired", incoming("authorization", "Bearer "+makeJWT(t, "acc-1", key, jwt.SigningMethodHS256, now.Add(-2*time.Hour), time.Hour)), Identity{}, true},
		{"wrong alg", incoming("authorization", "Bearer "+makeJWT(t, "acc-1", key, jwt.SigningMethodHS384, now, time.Hour)), Identity{}, true},
		{"wrong key", incoming("authorization", "Bearer "+makeJWT(t, "acc-1", []byte("other"), jwt.SigningMethodHS256, now, time.Hour)), Identity{}, true},
		{"empty subject", incoming("authorization", "Bearer "+makeJWT(t, "", key, jwt.SigningMethodHS256, now, time.Hour)), Identity{}, true},
		{"garbage token with guest", incoming("authorization", "Bearer nope", GuestHeader, "guest_1_a"), Identity{}, true},
		{"nothing", context.Background(), Identity{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := a.Resolve(tc.ctx)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("want error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestAuthUnary(t *testing.T) {
	t.Parallel()

	ic := AuthUnary(NewAuthenticator([]byte("secret")), ServicePrefix)
	var seen Identity
	h := func(ctx context.Context, _ any) (any, error) {
		seen, _ = IdentityFromCtx(ctx)
		return "ok", nil
	}

	health := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
	if _, err := ic(context.Background(), nil, health, h); err != nil {
		t.Fatalf("health must pass without identity: %v", err)
	}

	decks := &grpc.UnaryServerInfo{FullMethod: ServicePrefix + "ListChildren"}
	_, err := ic(context.Background(), nil, decks, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}

	if _, err := ic(incoming(GuestHeader, "guest_5_z"), nil, decks, h); err != nil {
		t.Fatalf("guest call: %v", err)
	}
	if seen.ID != "guest_5_z" || !seen.Guest {
		t.Fatalf("identity not propagated: %+v", seen)
	}
}
