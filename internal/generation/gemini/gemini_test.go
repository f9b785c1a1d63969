package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/genai"

	"github.com/and161185/flashdeck/internal/errs"
	"github.com/and161185/flashdeck/internal/generation"
	"github.com/and161185/flashdeck/internal/model"
)

type fakeGen struct {
	gotModel    string
	gotContents []*genai.Content
	gotConfig   *genai.GenerateContentConfig

	resp *genai.GenerateContentResponse
	err  error
}

func (f *fakeGen) GenerateContent(_ context.Context, m string, c []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.gotModel, f.gotContents, f.gotConfig = m, c, cfg
	return f.resp, f.err
}

func textResponse(s string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content:      &genai.Content{Parts: []*genai.Part{{Text: s}}},
		FinishReason: genai.FinishReasonStop,
	}}}
}

func TestProvider_Generate_TopicAndDocument(t *testing.T) {
	fg := &fakeGen{resp: textResponse(`[{"question":"<b>2 &lt; 3?</b>","answer":"yes"},{"question":"<script>x</script>","answer":"dropped"}]`)}
	p := newWithGenerator(fg, Config{Model: "m1"}, zaptest.NewLogger(t))

	cards, err := p.Generate(context.Background(), "make 2 cards", generation.Request{
		Topic: " maths ", NumCards: 2,
		Document: &generation.Document{MIMEType: "text/plain", Data: []byte("notes")},
	})
	require.NoError(t, err)
	require.Equal(t, []model.Card{{Question: "2 < 3?", Answer: "yes"}}, cards)

	require.Equal(t, "m1", fg.gotModel)
	require.Len(t, fg.gotContents, 1)
	parts := fg.gotContents[0].Parts
	require.Len(t, parts, 2)
	require.Equal(t, "TOPIC: maths", parts[0].Text)
	require.Equal(t, "text/plain", parts[1].InlineData.MIMEType)
	require.Equal(t, "make 2 cards", fg.gotConfig.SystemInstruction.Parts[0].Text)
	require.Equal(t, "application/json", fg.gotConfig.ResponseMIMEType)
	require.InDelta(t, 0.7, float64(*fg.gotConfig.Temperature), 1e-6)
}

func TestProvider_Temperature(t *testing.T) {
	zero, hot := float32(0), float32(1.3)
	tests := []struct {
		name string
		in   *float32
		want float32
	}{
		{"unset takes default", nil, DefaultTemperature},
		{"zero is honored", &zero, 0},
		{"explicit", &hot, 1.3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fg := &fakeGen{resp: textResponse(`[{"question":"q","answer":"a"}]`)}
			p := newWithGenerator(fg, Config{Temperature: tc.in}, nil)
			_, err := p.Generate(context.Background(), "", generation.Request{Topic: "x", NumCards: 1})
			require.NoError(t, err)
			require.NotNil(t, fg.gotConfig.Temperature)
			require.InDelta(t, float64(tc.want), float64(*fg.gotConfig.Temperature), 1e-6)
		})
	}
}

func TestProvider_Generate_Errors(t *testing.T) {
	ctx := context.Background()
	req := generation.Request{Topic: "x", NumCards: 1}

	p := newWithGenerator(&fakeGen{err: errors.New("503")}, Config{}, nil)
	_, err := p.Generate(ctx, "", req)
	require.ErrorIs(t, err, errs.ErrTransient)

	blocked := textResponse("[]")
	blocked.Candidates[0].FinishReason = genai.FinishReasonSafety
	p = newWithGenerator(&fakeGen{resp: blocked}, Config{}, nil)
	_, err = p.Generate(ctx, "", req)
	require.ErrorIs(t, err, generation.ErrContentBlocked)

	p = newWithGenerator(&fakeGen{resp: textResponse("not json")}, Config{}, nil)
	_, err = p.Generate(ctx, "", req)
	require.ErrorIs(t, err, generation.ErrInvalidResponse)

	p = newWithGenerator(&fakeGen{resp: &genai.GenerateContentResponse{}}, Config{}, nil)
	_, err = p.Generate(ctx, "", req)
	require.ErrorIs(t, err, generation.ErrInvalidResponse)
}
