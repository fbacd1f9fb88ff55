// Package publisher wraps the external document and form services the
// workflows publish generated content to.
package publisher

import (
	"context"

	"github.com/classpilot/backend/internal/assistant"
)

// DocumentService creates shareable documents for generated feedback.
type DocumentService interface {
	// CreateDocument creates an empty document and returns its handle.
	CreateDocument(ctx context.Context, title string) (string, error)

	// SetBody replaces the document's entire body with the given text.
	SetBody(ctx context.Context, docID, text string) error

	// ShareableURL returns the document's shareable location.
	ShareableURL(ctx context.Context, docID string) (string, error)
}

// FormService builds published quiz forms.
type FormService interface {
	// CreateForm creates an empty form and returns its handle.
	CreateForm(ctx context.Context, title string) (string, error)

	// AddQuizItem appends one multiple-choice item to the form.
	AddQuizItem(ctx context.Context, formID string, question assistant.QuizQuestion) error

	// PublishedURL returns the form's published location.
	PublishedURL(ctx context.Context, formID string) (string, error)
}
