package board

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportIdeas() []Idea {
	created := time.Date(2026, 10, 14, 8, 5, 9, 123000000, time.FixedZone("CEST", 2*3600))
	return []Idea{
		{
			ID: 2, Title: "Plain", Description: "desc, with comma", Votes: 16,
			CreatedAt: created, Themes: []string{"Credit Control", "Management Accounts"},
			Category: CategoryAI, AuthorName: "Ben Carter", AuthorEmail: "b.carter@example.com",
			AuthorTeam: "Finance", AuthorDivision: "Accounts Payable",
		},
		{
			ID: 4, Title: `Say "hi"`, Description: "line one\nline two", Votes: -1,
			CreatedAt: created, Themes: []string{"Operations"},
			Category: CategoryAutomation, AuthorName: "Marcus Wright", AuthorEmail: "m.wright@example.com",
			AuthorTeam: "Internal Comms", AuthorDivision: "HR",
		},
	}
}

func TestEscapeCSVCell(t *testing.T) {
	assert.Equal(t, "plain", escapeCSVCell("plain"))
	assert.Equal(t, " leading space", escapeCSVCell(" leading space"))
	assert.Equal(t, `"a,b"`, escapeCSVCell("a,b"))
	assert.Equal(t, `"say ""hi"""`, escapeCSVCell(`say "hi"`))
	assert.Equal(t, "\"a\nb\"", escapeCSVCell("a\nb"))
}

func TestExportCSV(t *testing.T) {
	t.Run("Happy path - header, quoting and line count", func(t *testing.T) {
		ideas := exportIdeas()[:1]
		second := exportIdeas()[0]
		second.ID = 3
		second.Description = "no comma"
		ideas = append(ideas, second)

		data, err := ExportCSV(ideas)
		require.NoError(t, err)

		out := string(data)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "ID,Title,Description,Votes,Category,Themes,Author Name,Author Email,Author Team,Author Division,Created At", lines[0])
		assert.Equal(t, `2,Plain,"desc, with comma",16,AI,Credit Control; Management Accounts,Ben Carter,b.carter@example.com,Finance,Accounts Payable,2026-10-14T06:05:09.123Z`, lines[1])
		assert.False(t, strings.HasSuffix(out, "\n"))
	})

	t.Run("Happy path - quotes and newlines are escaped", func(t *testing.T) {
		data, err := ExportCSV(exportIdeas()[1:])
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n4,\"Say \"\"hi\"\"\",\"line one\nline two\",-1,Automation,Operations,")
	})

	t.Run("Unhappy path - nothing to export", func(t *testing.T) {
		_, err := ExportCSV(nil)
		assert.ErrorIs(t, err, ErrNothingToExport)
	})
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 10, 16, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "idea_export_2026-10-16.csv", ExportFilename(now, "csv"))
	assert.Equal(t, "idea_export_2026-10-16.xlsx", ExportFilename(now, "xlsx"))
}

func TestExportXLSX(t *testing.T) {
	t.Run("Happy path - sheet mirrors the csv columns", func(t *testing.T) {
		data, err := ExportXLSX(exportIdeas())
		require.NoError(t, err)

		f, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		rows, err := f.GetRows("Ideas")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, exportHeader, rows[0])
		assert.Equal(t, "2", rows[1][0])
		assert.Equal(t, "desc, with comma", rows[1][2])
		assert.Equal(t, "Credit Control; Management Accounts", rows[1][5])
		assert.Equal(t, "2026-10-14T06:05:09.123Z", rows[1][10])
		assert.Equal(t, "-1", rows[2][3])
	})

	t.Run("Unhappy path - nothing to export", func(t *testing.T) {
		_, err := ExportXLSX([]Idea{})
		assert.ErrorIs(t, err, ErrNothingToExport)
	})
}
