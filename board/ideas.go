package board

import "time"

// IdeaStore keeps ideas newest-submitted first. Ideas are never removed.
type IdeaStore struct {
	ideas  []Idea
	lastID int64
}

func NewIdeaStore(seed []Idea) *IdeaStore {
	s := &IdeaStore{ideas: make([]Idea, 0, len(seed))}
	for _, idea := range seed {
		s.ideas = append(s.ideas, idea.clone())
		s.lastID = max(s.lastID, idea.ID)
	}
	return s
}

// AddIdea stamps data with a fresh id, zero votes and now, and prepends it.
func (s *IdeaStore) AddIdea(data IdeaData, now time.Time) Idea {
	idea := Idea{
		ID:             s.nextID(now),
		Title:          data.Title,
		Description:    data.Description,
		Votes:          0,
		CreatedAt:      now,
		Themes:         append([]string(nil), data.Themes...),
		Category:       data.Category,
		AuthorName:     data.AuthorName,
		AuthorEmail:    data.AuthorEmail,
		AuthorTeam:     data.AuthorTeam,
		AuthorDivision: data.AuthorDivision,
	}
	s.ideas = append([]Idea{idea}, s.ideas...)
	return idea.clone()
}

// nextID is derived from the clock in milliseconds but never repeats or goes back.
func (s *IdeaStore) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// ApplyVote moves the count by one. Counts are not floored at zero.
func (s *IdeaStore) ApplyVote(ideaID int64, dir Direction) bool {
	for i := range s.ideas {
		if s.ideas[i].ID != ideaID {
			continue
		}
		switch dir {
		case DirectionUp:
			s.ideas[i].Votes++
		case DirectionDown:
			s.ideas[i].Votes--
		default:
			return false
		}
		return true
	}
	return false
}

func (s *IdeaStore) Get(ideaID int64) (Idea, bool) {
	for _, idea := range s.ideas {
		if idea.ID == ideaID {
			return idea.clone(), true
		}
	}
	return Idea{}, false
}

func (s *IdeaStore) All() []Idea {
	out := make([]Idea, 0, len(s.ideas))
	for _, idea := range s.ideas {
		out = append(out, idea.clone())
	}
	return out
}

func (s *IdeaStore) Len() int {
	return len(s.ideas)
}
