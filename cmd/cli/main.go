// Command fd is a CLI client for the flashdeck service.
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	grpcinsecure "google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	pb "github.com/and161185/flashdeck/gen/go/flashdeck/v1"
	"github.com/and161185/flashdeck/internal/guest"
	"github.com/and161185/flashdeck/internal/model"
	grpcserver "github.com/and161185/flashdeck/internal/server/grpc"
)

// ---- local state ----

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "flashdeck")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "flashdeck")
}

// ---- grpc dial ----

type bearerCreds struct {
	token  string
	secure bool
}

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + b.token}, nil
}
func (b bearerCreds) RequireTransportSecurity() bool { return b.secure }

type guestCreds struct{ id string }

func (g guestCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{grpcserver.GuestHeader: g.id}, nil
}
func (guestCreds) RequireTransportSecurity() bool { return false }

func loadTLS(caPath string, insecure bool) (credentials.TransportCredentials, error) {
	if insecure {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

// connOpts are the global connection flags.
type connOpts struct {
	addr      string
	caPath    string
	insecure  bool
	plaintext bool
	token     string
	guestID   string
}

// dialOptions builds transport and per-call credentials. A token wins over the guest id.
func dialOptions(o connOpts) ([]grpc.DialOption, error) {
	var creds credentials.TransportCredentials
	if o.plaintext {
		creds = grpcinsecure.NewCredentials()
	} else {
		c, err := loadTLS(o.caPath, o.insecure)
		if err != nil {
			return nil, err
		}
		creds = c
	}
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(grpc.MaxCallSendMsgSize(8 << 20)),
	}
	switch {
	case o.token != "":
		opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: o.token, secure: !o.plaintext}))
	case o.guestID != "":
		opts = append(opts, grpc.WithPerRPCCredentials(guestCreds{id: o.guestID}))
	}
	return opts, nil
}

func dial(ctx context.Context, o connOpts) (pb.DecksClient, func(), error) {
	opts, err := dialOptions(o)
	if err != nil {
		return nil, nil, err
	}
	//nolint:staticcheck // DialContext is supported through 1.x
	cc, err := grpc.DialContext(ctx, o.addr, opts...)
	if err != nil {
		return nil, nil, err
	}
	return pb.NewDecksClient(cc), func() { _ = cc.Close() }, nil
}

// ---- app ----

// app carries state shared by all commands. dialer is replaced in tests.
type app struct {
	out    io.Writer
	log    *zap.Logger
	dir    string
	conn   connOpts
	dialer func(ctx context.Context, o connOpts) (pb.DecksClient, func(), error)
	guests *guest.Store
	// study runs the interactive session; tests swap it for a scripted one.
	study func(topic string, cards []model.Card) error
}

func newApp(out io.Writer) *app {
	return &app{out: out, log: zap.NewNop(), dir: cfgDir(), dialer: dial, study: runStudyTUI}
}

func (a *app) isGuest() bool { return a.conn.token == "" }

func (a *app) client(ctx context.Context) (pb.DecksClient, func(), error) {
	return a.dialer(ctx, a.conn)
}

var errAccountRequired = errors.New("this command needs an account token (--token or FLASHDECK_TOKEN)")

// account returns a client for workspace calls, which need a bearer token.
func (a *app) account(ctx context.Context) (pb.DecksClient, func(), error) {
	if a.isGuest() {
		return nil, nil, errAccountRequired
	}
	return a.client(ctx)
}

func (a *app) printJSON(v any) {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// printProto renders API responses with their proto field names.
func (a *app) printProto(m proto.Message) error {
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true}.Marshal(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}

// before resolves global flags, the logger and, for guests, the local identity.
func (a *app) before(ctx context.Context, c *cli.Command) (context.Context, error) {
	a.conn = connOpts{
		addr:      c.String("addr"),
		caPath:    c.String("cacert"),
		insecure:  c.Bool("insecure"),
		plaintext: c.Bool("plaintext"),
		token:     c.String("token"),
	}
	if c.Bool("verbose") {
		l, err := zap.NewDevelopment()
		if err != nil {
			return ctx, err
		}
		a.log = l
	}
	if a.isGuest() {
		id, err := guest.ID(a.dir)
		if err != nil {
			return ctx, fmt.Errorf("guest id: %w", err)
		}
		a.conn.guestID = id
		a.log.Debug("guest mode", zap.String("id", id))
	}
	a.guests = guest.NewStore(a.dir)
	return ctx, nil
}

var (
	version   = "dev"
	buildDate = "unknown"
)

func (a *app) root() *cli.Command {
	return &cli.Command{
		Name:    "fd",
		Usage:   "flashdeck client",
		Version: fmt.Sprintf("%s (%s)", version, buildDate),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: "localhost:8443", Usage: "server address", Sources: cli.EnvVars("FLASHDECK_ADDR")},
			&cli.StringFlag{Name: "cacert", Usage: "CA cert (PEM)"},
			&cli.BoolFlag{Name: "insecure", Usage: "skip cert verify (dev)"},
			&cli.BoolFlag{Name: "plaintext", Usage: "connect without TLS (dev)"},
			&cli.StringFlag{Name: "token", Usage: "account bearer token; without it the CLI runs as a guest", Sources: cli.EnvVars("FLASHDECK_TOKEN")},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "debug logging to stderr"},
		},
		Before:   a.before,
		After:    func(ctx context.Context, _ *cli.Command) error { _ = a.log.Sync(); return nil },
		Commands: a.commands(),
	}
}

// formatErr renders gRPC statuses the way the server reported them.
func formatErr(err error) string {
	if s, ok := status.FromError(err); ok {
		return fmt.Sprintf("rpc error: code=%s msg=%s", s.Code(), s.Message())
	}
	return err.Error()
}

func main() {
	a := newApp(os.Stdout)
	if err := a.root().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, formatErr(err))
		os.Exit(1)
	}
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 60*time.Second)
}
