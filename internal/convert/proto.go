// Package convert maps domain models to flashdeck.v1 protobuf messages and back.
package convert

import (
	"fmt"
	"time"

	u "github.com/gofrs/uuid/v5"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/flashdeck/gen/go/flashdeck/v1"
	"github.com/and161185/flashdeck/internal/errs"
	model "github.com/and161185/flashdeck/internal/model"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// ParseID parses a required id.
func ParseID(s string) (u.UUID, error) {
	id, err := u.FromString(s)
	if err != nil {
		return u.Nil, errs.Invalid("invalid id %q", s)
	}
	return id, nil
}

// ParseOptionalID parses an id where "" means the root.
func ParseOptionalID(s string) (*u.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := ParseID(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func idString(id *u.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

// --- cards ---

func ToProtoCards(cs []model.Card) []*pb.Card {
	out := make([]*pb.Card, 0, len(cs))
	for _, c := range cs {
		out = append(out, &pb.Card{Question: c.Question, Answer: c.Answer})
	}
	return out
}

// FromProtoCards skips nil entries; blank fields are left to validation.
func FromProtoCards(cs []*pb.Card) []model.Card {
	out := make([]model.Card, 0, len(cs))
	for _, c := range cs {
		if c == nil {
			continue
		}
		out = append(out, model.Card{Question: c.GetQuestion(), Answer: c.GetAnswer()})
	}
	return out
}

// --- folders / decks (server -> client) ---

func ToProtoFolder(f model.Folder) *pb.Folder {
	return &pb.Folder{
		Id:         f.ID.String(),
		Name:       f.Name,
		ParentId:   idString(f.ParentID),
		IsFavorite: f.IsFavorite,
		CreatedAt:  ts(f.CreatedAt),
	}
}

func ToProtoFolders(fs []model.Folder) []*pb.Folder {
	out := make([]*pb.Folder, 0, len(fs))
	for _, f := range fs {
		out = append(out, ToProtoFolder(f))
	}
	return out
}

// ToProtoDeck converts a deck; withCards=false is used for listings.
func ToProtoDeck(d model.Deck, withCards bool) *pb.Deck {
	m := &pb.Deck{
		Id:         d.ID.String(),
		Topic:      d.Topic,
		FolderId:   idString(d.FolderID),
		IsFavorite: d.IsFavorite,
		CreatedAt:  ts(d.CreatedAt),
		CardCount:  int32(d.CardCount()),
	}
	if withCards {
		m.Cards = ToProtoCards(d.Cards)
	}
	return m
}

func ToProtoDecks(ds []model.Deck) []*pb.Deck {
	out := make([]*pb.Deck, 0, len(ds))
	for _, d := range ds {
		out = append(out, ToProtoDeck(d, false))
	}
	return out
}

// FromProtoKind validates a favorite-toggle kind.
func FromProtoKind(k string) (model.Kind, error) {
	switch model.Kind(k) {
	case model.KindFolder, model.KindDeck:
		return model.Kind(k), nil
	default:
		return "", fmt.Errorf("kind %q: %w", k, errs.ErrInvalidArgument)
	}
}
