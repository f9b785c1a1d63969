package convert

import (
	"errors"
	"testing"
	"time"

	u "github.com/gofrs/uuid/v5"

	pb "github.com/and161185/flashdeck/gen/go/flashdeck/v1"
	"github.com/and161185/flashdeck/internal/errs"
	model "github.com/and161185/flashdeck/internal/model"
)

func TestParseOptionalID(t *testing.T) {
	t.Parallel()

	id, err := ParseOptionalID("")
	if err != nil || id != nil {
		t.Fatalf("empty must mean root, got %v %v", id, err)
	}
	if _, err := ParseOptionalID("nope"); err == nil {
		t.Fatalf("expected error for bad id")
	}
	want := u.Must(u.NewV4())
	got, err := ParseOptionalID(want.String())
	if err != nil || *got != want {
		t.Fatalf("got %v %v", got, err)
	}
}

func TestToProtoDeck(t *testing.T) {
	t.Parallel()

	folder := u.Must(u.NewV4())
	created := time.Unix(100, 0).UTC()
	d := model.Deck{
		ID: u.Must(u.NewV4()), Topic: "t", FolderID: &folder,
		Cards:     []model.Card{{Question: "q", Answer: "a"}, {Question: "q2", Answer: "a2"}},
		CreatedAt: created,
	}
	list := ToProtoDeck(d, false)
	if list.GetCardCount() != 2 || len(list.GetCards()) != 0 || list.GetFolderId() != folder.String() {
		t.Fatalf("listing deck mismatch: %+v", list)
	}
	if !list.GetCreatedAt().AsTime().Equal(created) {
		t.Fatalf("created_at mismatch: %v", list.GetCreatedAt())
	}
	full := ToProtoDeck(d, true)
	back := FromProtoCards(full.GetCards())
	if len(back) != 2 || back[1] != d.Cards[1] {
		t.Fatalf("cards mismatch: %+v", back)
	}

	// listings carry only the count
	counted := ToProtoDeck(model.Deck{ID: d.ID, Topic: "t", NumCards: 7}, false)
	if counted.GetCardCount() != 7 {
		t.Fatalf("card_count from listing = %d", counted.GetCardCount())
	}

	root := ToProtoFolder(model.Folder{ID: u.Must(u.NewV4()), Name: "r"})
	if root.GetParentId() != "" || root.GetCreatedAt() != nil {
		t.Fatalf("root folder mismatch: %+v", root)
	}
}

func TestFromProtoCards_SkipsNil(t *testing.T) {
	t.Parallel()

	got := FromProtoCards([]*pb.Card{nil, {Question: "q", Answer: "a"}})
	if len(got) != 1 || got[0].Question != "q" {
		t.Fatalf("got %+v", got)
	}
}

func TestFromProtoKind(t *testing.T) {
	t.Parallel()

	if k, err := FromProtoKind("deck"); err != nil || k != model.KindDeck {
		t.Fatalf("got %v %v", k, err)
	}
	if _, err := FromProtoKind("card"); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
