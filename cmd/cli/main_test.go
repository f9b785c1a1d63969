package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	grpcserver "github.com/and161185/flashdeck/internal/server/grpc"
)

func Test_cfgDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got, want := cfgDir(), filepath.Join(dir, "flashdeck"); got != want {
		t.Fatalf("cfgDir=%q, want %q", got, want)
	}
}

func Test_printJSON_WritesPretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	a := newApp(&buf)
	a.printJSON(map[string]any{"a": 1})

	var m map[string]any
	if json.Unmarshal(buf.Bytes(), &m) != nil || m["a"] != float64(1) {
		t.Fatalf("printJSON produced invalid json: %s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("\n  ")) {
		t.Fatalf("printJSON should indent")
	}
}

func Test_bearerCreds_Metadata(t *testing.T) {
	t.Parallel()

	b := bearerCreds{token: "T", secure: true}
	md, err := b.GetRequestMetadata(context.Background())
	if err != nil {
		t.Fatalf("GetRequestMetadata: %v", err)
	}
	if md["authorization"] != "Bearer T" {
		t.Fatalf("auth header mismatch: %v", md)
	}
	if !b.RequireTransportSecurity() {
		t.Fatalf("bearerCreds over TLS must require transport security")
	}
	if (bearerCreds{token: "T"}).RequireTransportSecurity() {
		t.Fatalf("plaintext bearer must not require transport security")
	}
}

func Test_guestCreds_Metadata(t *testing.T) {
	t.Parallel()

	md, err := guestCreds{id: "guest_1_a"}.GetRequestMetadata(context.Background())
	if err != nil || md[grpcserver.GuestHeader] != "guest_1_a" {
		t.Fatalf("guest header mismatch: %v %v", md, err)
	}
}

func Test_loadTLS_Variants(t *testing.T) {
	t.Parallel()

	creds, err := loadTLS("", true)
	if err != nil || creds == nil {
		t.Fatalf("insecure: %v %v", creds, err)
	}

	creds, err = loadTLS("", false)
	if err != nil || creds == nil {
		t.Fatalf("default tls: %v %v", creds, err)
	}

	tmp := filepath.Join(t.TempDir(), "bad.pem")
	_ = os.WriteFile(tmp, []byte("not pem"), 0o600)
	creds, err = loadTLS(tmp, false)
	if err == nil || creds != nil {
		t.Fatalf("bad CA should error, got creds=%v err=%v", creds, err)
	}
}

func Test_dialOptions(t *testing.T) {
	t.Parallel()

	if _, err := dialOptions(connOpts{plaintext: true, token: "t"}); err != nil {
		t.Fatalf("plaintext: %v", err)
	}
	if _, err := dialOptions(connOpts{caPath: "/nonexistent/ca.pem"}); err == nil {
		t.Fatalf("missing CA file must fail")
	}
}

func Test_formatErr(t *testing.T) {
	t.Parallel()

	got := formatErr(status.Error(codes.ResourceExhausted, "quota exceeded"))
	if !strings.Contains(got, "ResourceExhausted") || !strings.Contains(got, "quota exceeded") {
		t.Fatalf("status format: %q", got)
	}
	if formatErr(errors.New("plain")) != "plain" {
		t.Fatalf("plain errors pass through")
	}
}
