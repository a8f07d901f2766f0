package repository

import "sourdough-calculator/domain"

// ContentRepository loads the static pages shown next to the calculator.
type ContentRepository interface {
	LoadSite() (domain.Site, error)
	LoadGuide() (domain.Guide, error)
	LoadTroubleshooting() (domain.Troubleshooting, error)
}
