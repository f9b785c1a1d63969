package guest

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/and161185/flashdeck/internal/errs"
	"github.com/and161185/flashdeck/internal/model"
)

var card = []model.Card{{Question: "q", Answer: "a"}}

func TestID_PersistsAcrossCalls(t *testing.T) {
	dir := t.TempDir()
	id1, err := ID(dir)
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^guest_\d+_[0-9a-z]+$`), id1)

	id2, err := ID(dir)
	require.NoError(t, err)
	require.Equal(t, id1, id2)
}

func TestStore_SaveListDelete(t *testing.T) {
	s := NewStore(t.TempDir())
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time { tick++; return base.Add(time.Duration(tick) * time.Second) }

	first, err := s.Save("first", card)
	require.NoError(t, err)
	second, err := s.Save("second", card)
	require.NoError(t, err)

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
	require.Equal(t, first.ID, list[1].ID)

	got, err := s.Get(first.ID)
	require.NoError(t, err)
	require.Equal(t, "first", got.Topic)

	require.NoError(t, s.Delete(first.ID))
	_, err = s.Get(first.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestStore_Limit(t *testing.T) {
	s := NewStore(t.TempDir())
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time { tick++; return base.Add(time.Duration(tick) * time.Millisecond) }

	for i := 0; i < model.GuestDeckLimit; i++ {
		if _, err := s.Save("d", card); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	_, err := s.Save("d", card)
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
}

func TestStore_Validation(t *testing.T) {
	s := NewStore(t.TempDir())
	_, err := s.Save("", card)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = s.Save("t", nil)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}
