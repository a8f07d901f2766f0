package service

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"sourdough-calculator/domain"
	"sourdough-calculator/repository"
)

// ContentService serves the site metadata, baking guide and troubleshooting
// reference. Documents are loaded once at construction and never change.
type ContentService struct {
	site            domain.Site
	guide           domain.Guide
	troubleshooting domain.Troubleshooting
	log             *zap.Logger
}

func NewContentService(repo repository.ContentRepository, log *zap.Logger) (*ContentService, error) {
	site, err := repo.LoadSite()
	if err != nil {
		return nil, fmt.Errorf("load site: %w", err)
	}
	guide, err := repo.LoadGuide()
	if err != nil {
		return nil, fmt.Errorf("load guide: %w", err)
	}
	if guide.Title == "" || len(guide.Steps) == 0 {
		return nil, errors.New("guide has no title or steps")
	}
	t, err := repo.LoadTroubleshooting()
	if err != nil {
		return nil, fmt.Errorf("load troubleshooting: %w", err)
	}
	if t.Title == "" || len(t.Sections) == 0 {
		return nil, errors.New("troubleshooting has no title or sections")
	}

	log.Debug("content loaded",
		zap.Int("guide_steps", len(guide.Steps)),
		zap.Int("troubleshooting_sections", len(t.Sections)),
	)
	return &ContentService{site: site, guide: guide, troubleshooting: t, log: log}, nil
}

func (s *ContentService) Site() domain.Site { return s.site }

func (s *ContentService) Guide() domain.Guide { return s.guide }

func (s *ContentService) Troubleshooting() domain.Troubleshooting { return s.troubleshooting }

// SearchTroubleshooting returns entries whose title or text contains every
// word of query, case-insensitively, in document order. Title hits come first.
func (s *ContentService) SearchTroubleshooting(query string) ([]domain.TroubleshootingMatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}
	if len(query) > MaxSearchQueryLength {
		return nil, fmt.Errorf("search query exceeds %d characters", MaxSearchQueryLength)
	}

	words := strings.Fields(strings.ToLower(query))

	var titleHits, bodyHits []domain.TroubleshootingMatch
	for _, section := range s.troubleshooting.Sections {
		for _, entry := range section.Entries {
			title := strings.ToLower(entry.Title)
			body := strings.ToLower(strings.Join(entry.Paragraphs, " "))

			inTitle, inAny := true, true
			for _, w := range words {
				if !strings.Contains(title, w) {
					inTitle = false
				}
				if !strings.Contains(title, w) && !strings.Contains(body, w) {
					inAny = false
				}
			}

			match := domain.TroubleshootingMatch{Section: section.Title, Entry: entry}
			switch {
			case inTitle:
				titleHits = append(titleHits, match)
			case inAny:
				bodyHits = append(bodyHits, match)
			}
		}
	}

	matches := append(titleHits, bodyHits...)
	if len(matches) > MaxSearchResults {
		matches = matches[:MaxSearchResults]
	}
	s.log.Debug("troubleshooting search", zap.String("query", query), zap.Int("matches", len(matches)))
	return matches, nil
}
