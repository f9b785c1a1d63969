// Package guest keeps the identity and decks of users without an account on
// the local machine.
package guest

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const idFile = "guest_id"

// NewID returns a fresh guest identifier: guest_<unix millis>_<random base36>.
func NewID(now time.Time) string {
	return fmt.Sprintf("guest_%d_%s", now.UnixMilli(), strconv.FormatUint(rand.Uint64()>>23, 36))
}

// ID returns the guest identifier persisted in dir, creating one on first use.
func ID(dir string) (string, error) {
	p := filepath.Join(dir, idFile)
	b, err := os.ReadFile(p)
	if err == nil {
		if id := strings.TrimSpace(string(b)); strings.HasPrefix(id, "guest_") {
			return id, nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	id := NewID(time.Now())
	if err := os.WriteFile(p, []byte(id+"\n"), 0o600); err != nil {
		return "", err
	}
	return id, nil
}
