package grpcserver

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// GuestHeader carries the locally generated guest identifier.
const GuestHeader = "x-guest-id"

var guestIDRe = regexp.MustCompile(`^guest_\d+_[0-9a-z]+$`)

type ctxKey string

const identityKey ctxKey = "fd.identity"

// Identity is the resolved caller: an account subject or a guest id.
type Identity struct {
	ID    string
	Guest bool
}

// WithIdentity stores the caller identity in context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromCtx fetches the caller identity from context.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok && id.ID != ""
}

// Authenticator resolves identities from request metadata.
type Authenticator struct {
	signKey []byte
}

// NewAuthenticator verifies HS256 bearer tokens signed with signKey.
func NewAuthenticator(signKey []byte) *Authenticator { return &Authenticator{signKey: signKey} }

// Resolve prefers a bearer token; without one it accepts a guest id. A bearer
// token that fails verification is rejected even if a guest id is present.
func (a *Authenticator) Resolve(ctx context.Context) (Identity, error) {
	if tok, err := bearerTokenFromMD(ctx); err == nil {
		sub, err := a.subject(tok)
		if err != nil {
			return Identity{}, err
		}
		return Identity{ID: sub}, nil
	}
	md, _ := metadata.FromIncomingContext(ctx)
	for _, v := range md.Get(GuestHeader) {
		if v = strings.TrimSpace(v); guestIDRe.MatchString(v) {
			return Identity{ID: v, Guest: true}, nil
		}
	}
	return Identity{}, errors.New("no identity")
}

func (a *Authenticator) subject(tok string) (string, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return a.signKey, nil
	}, jwt.WithLeeway(30*time.Second))
	if err != nil || !parsed.Valid {
		return "", errors.New("invalid token")
	}
	if claims.Subject == "" {
		return "", errors.New("empty subject")
	}
	return claims.Subject, nil
}

func bearerTokenFromMD(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.New("no metadata")
	}
	for _, v := range md.Get("authorization") {
		v = strings.TrimSpace(v)
		if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
			if t := strings.TrimSpace(v[7:]); t != "" {
				return t, nil
			}
		}
	}
	return "", errors.New("no bearer token")
}

// AuthUnary resolves the caller for methods under servicePrefix and rejects
// calls without a usable identity. Other services (health) pass through.
func AuthUnary(a *Authenticator, servicePrefix string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if !strings.HasPrefix(info.FullMethod, servicePrefix) {
			return next(ctx, req)
		}
		id, err := a.Resolve(ctx)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		return next(WithIdentity(ctx, id), req)
	}
}
