package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/models"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/repository"
)

// FAQService covers the read and curation side of the FAQ list; the write
// side (match-or-create on submission) lives in QueryService.Submit.
type FAQService struct {
	faqs repository.FAQRepository
}

func NewFAQService(faqs repository.FAQRepository) *FAQService {
	return &FAQService{faqs: faqs}
}

// List returns entries ordered by frequency desc. The public page asks for
// active entries only; the admin management view passes activeOnly=false.
func (s *FAQService) List(ctx context.Context, category string, activeOnly bool) ([]models.FAQ, error) {
	return s.faqs.List(ctx, category, activeOnly)
}

// Create adds a hand-written entry. It goes through the same unique-question
// write path as aggregation, so creating an already aggregated question
// curates that entry rather than duplicating it.
func (s *FAQService) Create(ctx context.Context, question, answer, category string) (*models.FAQ, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is required", ErrValidation)
	}
	return s.faqs.Put(ctx, question, strings.TrimSpace(answer), strings.TrimSpace(category), "")
}

// SetAnswer curates an entry's answer (and optionally category) without
// touching its frequency.
func (s *FAQService) SetAnswer(ctx context.Context, id, answer string, category *string) (*models.FAQ, error) {
	return s.faqs.SetAnswer(ctx, id, answer, category)
}

// Toggle flips an entry's visibility on the public FAQ page.
func (s *FAQService) Toggle(ctx context.Context, id string) (*models.FAQ, error) {
	f, err := s.faqs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.faqs.SetActive(ctx, id, !f.Active)
}
