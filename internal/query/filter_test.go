package query_test

import (
	"testing"
	"time"

	"community-events/internal/model"
	"community-events/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildEvents() []*model.Event {
	return []*model.Event{
		{
			ID:          "e1",
			Title:       "Morning Yoga",
			Type:        model.EventTypeYoga,
			Difficulty:  model.DifficultyBeginner,
			Description: "Gentle sunrise flow",
			Address:     "Riverside Park",
			DateTime:    time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC),
		},
		{
			ID:          "e2",
			Title:       "Trail Run",
			Type:        model.EventTypeRun,
			Difficulty:  model.DifficultyHard,
			Description: "10k through the hills",
			Address:     "North Trailhead",
			DateTime:    time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:          "e3",
			Title:       "Evening Yoga",
			Type:        model.EventTypeYoga,
			Difficulty:  model.DifficultyHard,
			Description: "Power vinyasa session",
			Address:     "Community Hall",
			DateTime:    time.Date(2025, 6, 5, 19, 0, 0, 0, time.UTC),
		},
		{
			ID:          "e4",
			Title:       "Weekend Match",
			Type:        model.EventTypeMatch,
			Difficulty:  model.DifficultyModerate,
			Description: "Friendly five-a-side",
			Address:     "riverside stadium",
			DateTime:    time.Date(2025, 6, 7, 15, 0, 0, 0, time.UTC),
		},
	}
}

func ids(events []*model.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	events := buildEvents()

	t.Run("No criteria returns everything in order", func(t *testing.T) {
		got := query.Filter(events, query.Criteria{})
		assert.Equal(t, []string{"e1", "e2", "e3", "e4"}, ids(got))
	})

	t.Run("Text match is case-insensitive over title, description and address", func(t *testing.T) {
		assert.Equal(t, []string{"e1", "e3"}, ids(query.Filter(events, query.Criteria{Text: "yoga"})))
		assert.Equal(t, []string{"e2"}, ids(query.Filter(events, query.Criteria{Text: "HILLS"})))
		assert.Equal(t, []string{"e1", "e4"}, ids(query.Filter(events, query.Criteria{Text: "Riverside"})))
	})

	t.Run("Whitespace-only text means no filter", func(t *testing.T) {
		got := query.Filter(events, query.Criteria{Text: "   "})
		assert.Len(t, got, len(events))
	})

	t.Run("Type filter", func(t *testing.T) {
		yoga := model.EventTypeYoga
		got := query.Filter(events, query.Criteria{Type: &yoga})
		assert.Equal(t, []string{"e1", "e3"}, ids(got))
	})

	t.Run("Difficulty filter", func(t *testing.T) {
		hard := model.DifficultyHard
		got := query.Filter(events, query.Criteria{Difficulty: &hard})
		assert.Equal(t, []string{"e2", "e3"}, ids(got))
	})

	t.Run("Date range is inclusive on both bounds", func(t *testing.T) {
		from := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
		to := time.Date(2025, 6, 5, 19, 0, 0, 0, time.UTC)
		got := query.Filter(events, query.Criteria{From: &from, To: &to})
		assert.Equal(t, []string{"e2", "e3"}, ids(got))
	})

	t.Run("One-sided range is ignored", func(t *testing.T) {
		from := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
		got := query.Filter(events, query.Criteria{From: &from})
		assert.Len(t, got, len(events))
	})

	t.Run("Filters compose with AND", func(t *testing.T) {
		yoga := model.EventTypeYoga
		hard := model.DifficultyHard
		got := query.Filter(events, query.Criteria{Type: &yoga, Difficulty: &hard})
		assert.Equal(t, []string{"e3"}, ids(got))
	})
}

func TestFilterIdempotent(t *testing.T) {
	events := buildEvents()
	yoga := model.EventTypeYoga
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	criterias := []query.Criteria{
		{},
		{Text: "yoga"},
		{Type: &yoga},
		{Text: "riverside", Type: &yoga, From: &from, To: &to},
	}

	for _, c := range criterias {
		once := query.Filter(events, c)
		twice := query.Filter(once, c)
		require.Equal(t, once, twice)
	}
}

// 組合律：同時給 type 與 difficulty 等於兩個單獨過濾結果的交集
func TestFilterComposition(t *testing.T) {
	events := buildEvents()
	yoga := model.EventTypeYoga
	hard := model.DifficultyHard

	both := query.Filter(events, query.Criteria{Type: &yoga, Difficulty: &hard})
	byType := query.Filter(events, query.Criteria{Type: &yoga})
	byDifficulty := query.Filter(events, query.Criteria{Difficulty: &hard})

	intersection := []*model.Event{}
	for _, e := range byType {
		for _, other := range byDifficulty {
			if e.ID == other.ID {
				intersection = append(intersection, e)
			}
		}
	}
	assert.Equal(t, ids(intersection), ids(both))
}
