// Package gemini implements generation.Provider on top of the Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/and161185/flashdeck/internal/errs"
	"github.com/and161185/flashdeck/internal/generation"
	"github.com/and161185/flashdeck/internal/model"
)

// DefaultTemperature applies when Config.Temperature is nil.
const DefaultTemperature float32 = 0.7

// Config selects the model and sampling temperature. A zero temperature is
// honored; only nil takes the default.
type Config struct {
	APIKey      string
	Model       string
	Temperature *float32
}

// contentGenerator is the subset of *genai.Models the provider needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type generateFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

func (f generateFunc) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return f(ctx, model, contents, config)
}

// Provider calls Gemini with a JSON response schema and sanitizes the cards it returns.
type Provider struct {
	gen    contentGenerator
	cfg    Config
	policy *bluemonday.Policy
	log    *zap.Logger
}

var _ generation.Provider = (*Provider)(nil)

// New creates a Gemini API client.
func New(ctx context.Context, cfg Config, log *zap.Logger) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: api key is empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	return newWithGenerator(generateFunc(func(ctx context.Context, m string, c []*genai.Content, gc *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return client.Models.GenerateContent(ctx, m, c, gc)
	}), cfg, log), nil
}

func newWithGenerator(gen contentGenerator, cfg Config, log *zap.Logger) *Provider {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	temp := DefaultTemperature
	if cfg.Temperature != nil {
		temp = *cfg.Temperature
	}
	cfg.Temperature = &temp
	if log == nil {
		log = zap.NewNop()
	}
	return &Provider{gen: gen, cfg: cfg, policy: bluemonday.StrictPolicy(), log: log}
}

var cardsSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"question": {Type: genai.TypeString},
			"answer":   {Type: genai.TypeString},
		},
		Required:         []string{"question", "answer"},
		PropertyOrdering: []string{"question", "answer"},
	},
}

// Generate sends the topic and/or document with the system instruction and
// parses the JSON array of cards from the first candidate.
func (p *Provider) Generate(ctx context.Context, systemInstruction string, req generation.Request) ([]model.Card, error) {
	var parts []*genai.Part
	if t := strings.TrimSpace(req.Topic); t != "" {
		parts = append(parts, &genai.Part{Text: "TOPIC: " + t})
	}
	if d := req.Document; d != nil {
		parts = append(parts, &genai.Part{InlineData: &genai.Blob{MIMEType: d.MIMEType, Data: d.Data}})
	}

	temp := *p.cfg.Temperature
	resp, err := p.gen.GenerateContent(ctx, p.cfg.Model,
		[]*genai.Content{{Role: "user", Parts: parts}},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
			ResponseMIMEType:  "application/json",
			ResponseSchema:    cardsSchema,
			Temperature:       &temp,
		})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, errs.Transient("gemini generate", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	cards, err := p.parse(text)
	if err != nil {
		return nil, err
	}
	p.log.Debug("gemini cards generated", zap.String("model", p.cfg.Model), zap.Int("cards", len(cards)))
	return cards, nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", generation.ErrInvalidResponse)
	}
	c := resp.Candidates[0]
	if c.FinishReason == genai.FinishReasonSafety {
		return "", generation.ErrContentBlocked
	}
	if c.Content == nil {
		return "", fmt.Errorf("%w: empty content", generation.ErrInvalidResponse)
	}
	var sb strings.Builder
	for _, part := range c.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: empty text", generation.ErrInvalidResponse)
	}
	return sb.String(), nil
}

// parse decodes the card array, strips markup and drops cards left empty.
func (p *Provider) parse(text string) ([]model.Card, error) {
	var raw []model.Card
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
	}
	out := make([]model.Card, 0, len(raw))
	for _, c := range raw {
		q, a := p.clean(c.Question), p.clean(c.Answer)
		if q == "" || a == "" {
			continue
		}
		out = append(out, model.Card{Question: q, Answer: a})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no usable cards", generation.ErrInvalidResponse)
	}
	return out, nil
}

func (p *Provider) clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(p.policy.Sanitize(s)))
}
