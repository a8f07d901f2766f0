package repository

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sourdough-calculator/domain"
)

func TestContentRepositoryYAML_Embedded(t *testing.T) {
	repo, err := NewContentRepositoryYAML("")
	require.NoError(t, err)

	site, err := repo.LoadSite()
	require.NoError(t, err)
	assert.Equal(t, domain.Site{
		Title:       "Sourdough Simplified",
		Description: "A simple tool to help you make sourdough bread with ease.",
	}, site)

	guide, err := repo.LoadGuide()
	require.NoError(t, err)
	require.Len(t, guide.Steps, 6)

	var stepTitles []string
	for _, s := range guide.Steps {
		stepTitles = append(stepTitles, s.Title)
	}
	want := []string{
		"Prepare Your Starter",
		"Autolyse (Optional, but helps)",
		"Bulk Fermentation",
		"Shaping",
		"Final Proof",
		"Baking",
	}
	if diff := cmp.Diff(want, stepTitles); diff != "" {
		t.Errorf("guide steps mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, guide.Steps[0].Bullets, 4)

	ts, err := repo.LoadTroubleshooting()
	require.NoError(t, err)
	assert.Equal(t, "https://www.the-sourdough-framework.com", ts.Source.URL)
	require.Len(t, ts.Sections, 3)
	for _, s := range ts.Sections {
		assert.Len(t, s.Entries, 3, s.Title)
	}
	assert.Len(t, ts.Sections[0].Entries[1].Paragraphs, 2)
}

func TestContentRepositoryFS_Custom(t *testing.T) {
	fsys := fstest.MapFS{
		"guide.yaml": {Data: []byte(`
title: Quick Guide
intro: Short.
steps:
  - title: Mix
    paragraphs: ["Mix everything."]
`)},
	}
	repo := NewContentRepositoryFS(fsys)

	guide, err := repo.LoadGuide()
	require.NoError(t, err)

	want := domain.Guide{
		Title: "Quick Guide",
		Intro: "Short.",
		Steps: []domain.GuideStep{{Title: "Mix", Paragraphs: []string{"Mix everything."}}},
	}
	if diff := cmp.Diff(want, guide); diff != "" {
		t.Errorf("guide mismatch (-want +got):\n%s", diff)
	}

	_, err = repo.LoadTroubleshooting()
	require.Error(t, err)
}

func TestContentRepositoryFS_MalformedYAML(t *testing.T) {
	repo := NewContentRepositoryFS(fstest.MapFS{
		"site.yaml": {Data: []byte("title: [unterminated")},
	})

	_, err := repo.LoadSite()
	require.Error(t, err)
}

func TestContentRepositoryYAML_Dir(t *testing.T) {
	dir := t.TempDir()

	_, err := NewContentRepositoryYAML(dir + "/missing")
	require.Error(t, err)

	repo, err := NewContentRepositoryYAML(dir)
	require.NoError(t, err)
	_, err = repo.LoadGuide()
	require.Error(t, err)
}
