package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdeaStore(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	t.Run("Happy path - add prepends with fresh id and zero votes", func(t *testing.T) {
		s := NewIdeaStore(SeedIdeas(now))
		idea := s.AddIdea(IdeaData{Title: "X", Themes: []string{"Payroll"}, Category: CategoryAI}, now)

		assert.Equal(t, now.UnixMilli(), idea.ID)
		assert.Equal(t, 0, idea.Votes)
		assert.Equal(t, now, idea.CreatedAt)
		assert.Equal(t, idea.ID, s.All()[0].ID)
		assert.Equal(t, 5, s.Len())
	})

	t.Run("Happy path - ids are strictly increasing on the same clock", func(t *testing.T) {
		s := NewIdeaStore(nil)
		a := s.AddIdea(IdeaData{Title: "a"}, now)
		b := s.AddIdea(IdeaData{Title: "b"}, now)
		c := s.AddIdea(IdeaData{Title: "c"}, now.Add(-time.Minute))

		assert.Less(t, a.ID, b.ID)
		assert.Less(t, b.ID, c.ID)
	})

	t.Run("Happy path - apply vote adjusts by exactly one", func(t *testing.T) {
		s := NewIdeaStore(SeedIdeas(now))

		require.True(t, s.ApplyVote(2, DirectionUp))
		idea, _ := s.Get(2)
		assert.Equal(t, 16, idea.Votes)

		require.True(t, s.ApplyVote(2, DirectionDown))
		require.True(t, s.ApplyVote(2, DirectionDown))
		idea, _ = s.Get(2)
		assert.Equal(t, 14, idea.Votes)
	})

	t.Run("Happy path - votes may go negative", func(t *testing.T) {
		s := NewIdeaStore([]Idea{{ID: 9, Votes: 0}})
		require.True(t, s.ApplyVote(9, DirectionDown))
		idea, _ := s.Get(9)
		assert.Equal(t, -1, idea.Votes)
	})

	t.Run("Unhappy path - unknown id is a no-op", func(t *testing.T) {
		s := NewIdeaStore(SeedIdeas(now))
		before := s.All()
		assert.False(t, s.ApplyVote(404, DirectionUp))
		assert.Equal(t, before, s.All())
	})

	t.Run("Happy path - returned ideas are copies", func(t *testing.T) {
		s := NewIdeaStore(SeedIdeas(now))
		all := s.All()
		all[0].Themes[0] = "mutated"
		all[0].Votes = 1000

		idea, _ := s.Get(1)
		assert.Equal(t, []string{"User Experience"}, idea.Themes)
		assert.Equal(t, 28, idea.Votes)
	})
}
