package query

import (
	"strings"
	"time"

	"community-events/internal/model"
)

// Criteria 搜尋條件，所有條件以 AND 組合。
// From/To 必須成對出現，只給一邊視為沒有日期條件。
type Criteria struct {
	Text       string
	Type       *model.EventType
	Difficulty *model.Difficulty
	From       *time.Time
	To         *time.Time
}

// Filter 純函數投影：從完整清單過濾出符合條件的子清單，保持原本順序。
// 同樣輸入永遠得到同樣輸出，套用兩次等於套用一次。
func Filter(events []*model.Event, c Criteria) []*model.Event {
	text := strings.ToLower(strings.TrimSpace(c.Text))
	hasRange := c.From != nil && c.To != nil

	out := make([]*model.Event, 0, len(events))
	for _, e := range events {
		if text != "" && !matchesText(e, text) {
			continue
		}
		if c.Type != nil && e.Type != *c.Type {
			continue
		}
		if c.Difficulty != nil && e.Difficulty != *c.Difficulty {
			continue
		}
		if hasRange && (e.DateTime.Before(*c.From) || e.DateTime.After(*c.To)) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesText(e *model.Event, text string) bool {
	return strings.Contains(strings.ToLower(e.Title), text) ||
		strings.Contains(strings.ToLower(e.Description), text) ||
		strings.Contains(strings.ToLower(e.Address), text)
}
