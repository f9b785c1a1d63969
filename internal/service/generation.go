package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/and161185/flashdeck/internal/errs"
	"github.com/and161185/flashdeck/internal/generation"
	"github.com/and161185/flashdeck/internal/limiter"
	"github.com/and161185/flashdeck/internal/model"
	"github.com/and161185/flashdeck/internal/repository"
)

// GenerationService admits and runs flashcard generation requests.
type GenerationService interface {
	Generate(ctx context.Context, identity string, req generation.Request) (*GenerationResult, error)
}

// GenerationResult is the provider output plus the caller's quota state.
type GenerationResult struct {
	Topic string
	Cards []model.Card
	Quota model.QuotaRecord
}

type GenerationServiceImpl struct {
	gate     limiter.Gate
	prompts  repository.PromptRepository
	provider generation.Provider
	log      *zap.Logger
}

// NewGenerationService wires the gate, prompt store and provider.
func NewGenerationService(gate limiter.Gate, prompts repository.PromptRepository, provider generation.Provider, log *zap.Logger) *GenerationServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &GenerationServiceImpl{gate: gate, prompts: prompts, provider: provider, log: log}
}

// Generate validates req, consumes one call from identity's quota and asks the
// provider for cards. Invalid requests do not consume quota.
func (s *GenerationServiceImpl) Generate(ctx context.Context, identity string, req generation.Request) (*GenerationResult, error) {
	if identity == "" {
		return nil, errs.ErrUnauthenticated
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	quota, err := s.gate.CheckAndConsume(ctx, identity)
	if err != nil {
		return nil, err
	}

	p, err := s.prompts.Get(ctx, req.PromptID())
	if err != nil {
		return nil, fmt.Errorf("prompt %s: %w", req.PromptID(), err)
	}
	instruction := strings.ReplaceAll(p.Template, "{{numCards}}", strconv.Itoa(req.NumCards))

	cards, err := s.provider.Generate(ctx, instruction, req)
	if err != nil {
		s.log.Warn("generation failed", zap.String("identity", identity), zap.Error(err))
		return nil, err
	}
	if len(cards) > generation.MaxCards {
		cards = cards[:generation.MaxCards]
	}
	s.log.Info("cards generated",
		zap.String("identity", identity),
		zap.Int("requested", req.NumCards),
		zap.Int("returned", len(cards)),
		zap.Int("quota_used", quota.Count))

	return &GenerationResult{Topic: DeckTopic(req), Cards: cards, Quota: quota}, nil
}

// DeckTopic is the topic to save a generated deck under: the request topic,
// or a name derived from the uploaded document.
func DeckTopic(req generation.Request) string {
	t := strings.TrimSpace(req.Topic)
	if t == "" && req.Document != nil {
		t = "Notes: " + req.Document.Name
	}
	if r := []rune(t); len(r) > model.MaxTopicLength {
		t = string(r[:model.MaxTopicLength])
	}
	return t
}
