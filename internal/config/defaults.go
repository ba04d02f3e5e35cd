package config

import "github.com/matzehuels/folio/pkg/deck"

// defaultSections is the placeholder deck shipped when no config file is given.
func defaultSections() []Section {
	return []Section{
		{
			ID:    string(deck.SectionHero),
			Title: "Hello, I build things",
			Lines: []string{
				"Software engineer working on services, CLIs and the plumbing between them.",
				"Use ← → to move between sections, g to come back here.",
			},
		},
		{
			ID:    string(deck.SectionProfile),
			Title: "Profile",
			Lines: []string{
				"Curious about how things work behind the scenes.",
				"Most projects start as a small idea and turn into a reason to learn something new.",
			},
		},
		{
			ID:    string(deck.SectionMatrix),
			Title: "Skills matrix",
			Lines: []string{
				"Languages     Go · TypeScript · Python · SQL",
				"Systems       HTTP services · queues · caches",
				"Tooling       Docker · CI pipelines · observability",
			},
		},
		{
			ID:    string(deck.SectionExperience),
			Title: "Experience",
			Lines: []string{
				"2023 – now    Backend engineer",
				"2019 – 2023   Full-stack developer",
				"2016 – 2019   Operations & events",
			},
		},
		{
			ID:    string(deck.SectionTech),
			Title: "Tech stack",
			Lines: []string{
				"cobra · bubbletea · lipgloss · chi · TOML",
			},
		},
		{
			ID:    string(deck.SectionProjects),
			Title: "Projects",
			Lines: []string{
				"mailtui      terminal email client with fuzzy finding",
				"tunes        terminal music player",
				"folio        this deck",
			},
		},
		{
			ID:    string(deck.SectionContact),
			Title: "Contact",
			Lines: []string{
				"Say hello: hello@example.com",
			},
		},
	}
}
