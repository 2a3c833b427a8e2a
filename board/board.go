package board

import (
	"context"
	"sync"
	"time"

	"github.com/alex-pricope/idea-board/logging"
	"github.com/alex-pricope/idea-board/storage"
)

// Board owns the idea store, the vote ledger and the current selection.
// Each method is one atomic step.
type Board struct {
	mu        sync.Mutex
	ideas     *IdeaStore
	ledger    *VoteLedger
	selection Selection
	now       func() time.Time
}

type options struct {
	now       func() time.Time
	ledgerKey string
	seed      []Idea
	hasSeed   bool
}

type Option func(*options)

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func WithLedgerKey(key string) Option {
	return func(o *options) { o.ledgerKey = key }
}

// WithSeed replaces the built-in sample ideas.
func WithSeed(ideas []Idea) Option {
	return func(o *options) {
		o.seed = ideas
		o.hasSeed = true
	}
}

func WithoutSeed() Option {
	return WithSeed(nil)
}

// NewBoard seeds the ideas and rehydrates the ledger from kv once.
func NewBoard(ctx context.Context, kv storage.KeyValueStore, opts ...Option) *Board {
	o := options{now: time.Now, ledgerKey: DefaultLedgerKey}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasSeed {
		o.seed = SeedIdeas(o.now())
	}

	b := &Board{
		ideas:     NewIdeaStore(o.seed),
		ledger:    LoadVoteLedger(ctx, kv, o.ledgerKey),
		selection: DefaultSelection(),
		now:       o.now,
	}
	logging.Log.Infof("BOARD: started with %d ideas", b.ideas.Len())
	return b
}

// Submit validates raw and adds the idea on success.
func (b *Board) Submit(_ context.Context, raw RawIdea) (Idea, error) {
	data, err := Submit(raw)
	if err != nil {
		return Idea{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	idea := b.ideas.AddIdea(data, b.now())
	logging.Log.Infof("BOARD: added idea %d '%s'", idea.ID, idea.Title)
	return idea, nil
}

// Vote records dir for the idea and adjusts its count. A repeated vote returns
// ErrAlreadyVoted with the idea unchanged.
func (b *Board) Vote(ctx context.Context, ideaID int64, dir Direction) (Idea, error) {
	if dir != DirectionUp && dir != DirectionDown {
		return Idea{}, ErrInvalidDirection
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	idea, ok := b.ideas.Get(ideaID)
	if !ok {
		return Idea{}, ErrIdeaNotFound
	}

	recorded, err := b.ledger.CastVote(ctx, ideaID, dir)
	if err != nil {
		return Idea{}, err
	}
	if !recorded {
		logging.Log.Debugf("BOARD: ignoring repeated vote on idea %d", ideaID)
		return idea, ErrAlreadyVoted
	}

	b.ideas.ApplyVote(ideaID, dir)
	idea, _ = b.ideas.Get(ideaID)
	return idea, nil
}

func (b *Board) Idea(ideaID int64) (Idea, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ideas.Get(ideaID)
}

func (b *Board) VoteFor(ideaID int64) (Direction, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ledger.Direction(ideaID)
}

func (b *Board) Votes() map[int64]Direction {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ledger.Snapshot()
}

func (b *Board) Selection() Selection {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selection
}

func (b *Board) SetThemeFilter(theme string) error {
	_, err := b.UpdateSelection(&theme, nil, nil)
	return err
}

func (b *Board) SetCategoryFilter(category string) error {
	_, err := b.UpdateSelection(nil, &category, nil)
	return err
}

func (b *Board) SetSortOption(sort string) error {
	_, err := b.UpdateSelection(nil, nil, &sort)
	return err
}

// UpdateSelection applies the non-nil fields. Nothing changes unless all of them are valid.
func (b *Board) UpdateSelection(theme, category, sort *string) (Selection, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	next := b.selection
	if theme != nil {
		switch {
		case isAll(*theme):
			next.Theme = FilterAll
		case IsKnownTheme(*theme):
			next.Theme = *theme
		default:
			return b.selection, ErrUnknownTheme
		}
	}
	if category != nil {
		if isAll(*category) {
			next.Category = FilterAll
		} else {
			c, ok := ParseCategory(*category)
			if !ok {
				return b.selection, ErrInvalidCategory
			}
			next.Category = string(c)
		}
	}
	if sort != nil {
		s, ok := ParseSortOption(*sort)
		if !ok {
			return b.selection, ErrInvalidSort
		}
		next.Sort = s
	}

	b.selection = next
	return next, nil
}

// View is the projection of all ideas under the current selection.
func (b *Board) View() []Idea {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Project(b.ideas.All(), b.selection)
}

func (b *Board) ExportCSV() ([]byte, string, error) {
	data, err := ExportCSV(b.View())
	if err != nil {
		return nil, "", err
	}
	return data, ExportFilename(b.now(), "csv"), nil
}

func (b *Board) ExportXLSX() ([]byte, string, error) {
	data, err := ExportXLSX(b.View())
	if err != nil {
		return nil, "", err
	}
	return data, ExportFilename(b.now(), "xlsx"), nil
}
