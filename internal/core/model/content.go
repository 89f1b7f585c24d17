package model

// Content is the static copy shown on the page.
type Content struct {
	Title       string        `yaml:"title"`
	Subtitle    string        `yaml:"subtitle"`
	RegisterURL string        `yaml:"register_url"`
	About       About         `yaml:"about"`
	Tracks      []Track       `yaml:"tracks"`
	Domains     []string      `yaml:"domains"`
	Schedule    []ScheduleDay `yaml:"schedule"`
	Guidelines  Guidelines    `yaml:"guidelines"`
	Prizes      Prizes        `yaml:"prizes"`
	Footer      Footer        `yaml:"footer"`
}

// About is the introduction section.
type About struct {
	Paragraphs []string    `yaml:"paragraphs"`
	Highlights []Highlight `yaml:"highlights"`
}

// Highlight is a short titled fact.
type Highlight struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// Track is a competition theme.
type Track struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ScheduleDay groups the events of one day.
type ScheduleDay struct {
	Label  string          `yaml:"label"`
	Events []ScheduleEvent `yaml:"events"`
}

// ScheduleEvent is one timeline entry.
type ScheduleEvent struct {
	Time  string `yaml:"time"`
	Title string `yaml:"title"`
}

// Guidelines holds the participation rules.
type Guidelines struct {
	Rules  []string `yaml:"rules"`
	Notice string   `yaml:"notice"`
}

// Prizes describes the prize pool.
type Prizes struct {
	Pool   string  `yaml:"pool"`
	Note   string  `yaml:"note"`
	Places []Place `yaml:"places"`
}

// Place is one podium position.
type Place struct {
	Name   string `yaml:"name"`
	Amount string `yaml:"amount"`
}

// Footer is the closing section.
type Footer struct {
	Links     []Link   `yaml:"links"`
	Contacts  []string `yaml:"contacts"`
	Copyright string   `yaml:"copyright"`
}

// Link is a labelled URL.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}
