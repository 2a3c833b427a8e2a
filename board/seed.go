package board

import "time"

// SeedIdeas returns the sample ideas the board starts with, timestamped relative to now.
func SeedIdeas(now time.Time) []Idea {
	day := 24 * time.Hour
	return []Idea{
		{
			ID:             1,
			Title:          "Implement User Profiles",
			Description:    "Allow users to create profiles to track their submitted ideas and votes.",
			Votes:          28,
			CreatedAt:      now.Add(-2 * day),
			Themes:         []string{"User Experience"},
			Category:       CategoryGeneral,
			AuthorName:     "Eleanor Vantage",
			AuthorEmail:    "e.vantage@example.com",
			AuthorTeam:     "UX Design",
			AuthorDivision: "Product",
		},
		{
			ID:             2,
			Title:          "Automate Invoice Processing",
			Description:    "Use AI to scan and process invoices from suppliers, reducing manual data entry.",
			Votes:          15,
			CreatedAt:      now.Add(-5 * day),
			Themes:         []string{"Credit Control", "Management Accounts"},
			Category:       CategoryAI,
			AuthorName:     "Ben Carter",
			AuthorEmail:    "b.carter@example.com",
			AuthorTeam:     "Finance",
			AuthorDivision: "Accounts Payable",
		},
		{
			ID:             3,
			Title:          "Add a Comment Section to Ideas",
			Description:    "Enable discussions on each idea to refine and debate them before voting.",
			Votes:          42,
			CreatedAt:      now.Add(-1 * day),
			Themes:         []string{"User Experience"},
			Category:       CategoryGeneral,
			AuthorName:     "Olivia Chen",
			AuthorEmail:    "o.chen@example.com",
			AuthorTeam:     "Community",
			AuthorDivision: "Marketing",
		},
		{
			ID:             4,
			Title:          "Weekly Idea Digest Email",
			Description:    "Send a summary of the top-voted and newest ideas every week to keep users engaged.",
			Votes:          8,
			CreatedAt:      now.Add(-3 * time.Hour),
			Themes:         []string{"Operations"},
			Category:       CategoryAutomation,
			AuthorName:     "Marcus Wright",
			AuthorEmail:    "m.wright@example.com",
			AuthorTeam:     "Internal Comms",
			AuthorDivision: "HR",
		},
	}
}
