package domain

// Site is the metadata shown in page headers.
type Site struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Guide is the step-by-step baking guide.
type Guide struct {
	Title string      `yaml:"title" json:"title"`
	Intro string      `yaml:"intro" json:"intro"`
	Steps []GuideStep `yaml:"steps" json:"steps"`
}

type GuideStep struct {
	Title      string   `yaml:"title" json:"title"`
	Paragraphs []string `yaml:"paragraphs" json:"paragraphs"`
	Bullets    []string `yaml:"bullets,omitempty" json:"bullets,omitempty"`
}

// Troubleshooting is the reference of common problems and their fixes.
type Troubleshooting struct {
	Title    string                   `yaml:"title" json:"title"`
	Intro    string                   `yaml:"intro" json:"intro"`
	Source   Source                   `yaml:"source" json:"source"`
	Sections []TroubleshootingSection `yaml:"sections" json:"sections"`
}

type Source struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

type TroubleshootingSection struct {
	Title   string                 `yaml:"title" json:"title"`
	Entries []TroubleshootingEntry `yaml:"entries" json:"entries"`
}

type TroubleshootingEntry struct {
	Title      string   `yaml:"title" json:"title"`
	Paragraphs []string `yaml:"paragraphs" json:"paragraphs"`
}

// TroubleshootingMatch is a search hit together with the section it lives in.
type TroubleshootingMatch struct {
	Section string               `json:"section"`
	Entry   TroubleshootingEntry `json:"entry"`
}
