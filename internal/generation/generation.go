// Package generation describes requests to an external flashcard generator
// and the provider contract the service layer calls after admission.
package generation

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/and161185/flashdeck/internal/errs"
	"github.com/and161185/flashdeck/internal/model"
)

const (
	// MaxDocumentSize is the largest accepted upload.
	MaxDocumentSize = 4 << 20
	// MaxCards is the largest number of cards one request may ask for.
	MaxCards = model.MaxCardsPerDeck
)

// Prompt template ids in the prompts table.
const (
	PromptForTopic = "systemInstructionForTopic"
	PromptForFile  = "systemInstructionForFile"
)

// AllowedMIMETypes are the document formats the provider understands.
var AllowedMIMETypes = []string{
	"application/pdf",
	"text/plain",
	"text/markdown",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
}

var (
	// ErrInvalidResponse is returned when the model output cannot be parsed.
	ErrInvalidResponse = errors.New("invalid response from language model")
	// ErrContentBlocked is returned when the model refuses on safety grounds.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")
)

// Document is an uploaded source file.
type Document struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Request asks for NumCards cards about Topic and/or Document.
type Request struct {
	Topic    string
	NumCards int
	Document *Document
}

// Validate checks the request before any quota is consumed.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Topic) == "" && r.Document == nil {
		return errs.Invalid("validation: topic or document required")
	}
	if r.NumCards < 1 || r.NumCards > MaxCards {
		return errs.Invalid("validation: number of cards must be between 1 and %d", MaxCards)
	}
	if len([]rune(r.Topic)) > model.MaxTopicLength {
		return errs.Invalid("validation: topic longer than %d characters", model.MaxTopicLength)
	}
	if d := r.Document; d != nil {
		if !slices.Contains(AllowedMIMETypes, d.MIMEType) {
			return errs.Invalid("validation: content type %q not allowed", d.MIMEType)
		}
		if len(d.Data) == 0 {
			return errs.Invalid("validation: empty document")
		}
		if len(d.Data) > MaxDocumentSize {
			return errs.Invalid("validation: document larger than %d bytes", MaxDocumentSize)
		}
	}
	return nil
}

// PromptID picks the template matching the request shape.
func (r Request) PromptID() string {
	if r.Document != nil {
		return PromptForFile
	}
	return PromptForTopic
}

// Provider turns a request into cards. Implementations may return more or
// fewer cards than requested.
type Provider interface {
	Generate(ctx context.Context, systemInstruction string, req Request) ([]model.Card, error)
}
