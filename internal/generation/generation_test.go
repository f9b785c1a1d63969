package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/and161185/flashdeck/internal/errs"
)

func TestRequest_Validate(t *testing.T) {
	pdf := &Document{Name: "a.pdf", MIMEType: "application/pdf", Data: []byte("%PDF")}
	tests := []struct {
		name string
		req  Request
		ok   bool
	}{
		{"topic only", Request{Topic: "Photosynthesis", NumCards: 10}, true},
		{"document only", Request{Document: pdf, NumCards: 1}, true},
		{"nothing", Request{Topic: "  ", NumCards: 5}, false},
		{"zero cards", Request{Topic: "x", NumCards: 0}, false},
		{"too many cards", Request{Topic: "x", NumCards: 26}, false},
		{"max cards", Request{Topic: "x", NumCards: 25}, true},
		{"long topic", Request{Topic: strings.Repeat("é", 251), NumCards: 5}, false},
		{"bad mime", Request{Document: &Document{MIMEType: "image/png", Data: []byte{1}}, NumCards: 5}, false},
		{"big file", Request{Document: &Document{MIMEType: "text/plain", Data: make([]byte, MaxDocumentSize+1)}, NumCards: 5}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrInvalidArgument)
		})
	}
}

func TestRequest_PromptID(t *testing.T) {
	require.Equal(t, PromptForTopic, Request{Topic: "x"}.PromptID())
	require.Equal(t, PromptForFile, Request{Document: &Document{}}.PromptID())
}
