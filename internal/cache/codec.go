package cache

import (
	"encoding/json"
	"time"

	"community-events/internal/model"
)

// cachedEvent 快照在本機快取內的序列化形態，時間欄位以 epoch 毫秒存放，
// 和線上文件一致，來回轉換不損失毫秒精度。
type cachedEvent struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Type             string             `json:"type"`
	Difficulty       string             `json:"difficulty"`
	Description      string             `json:"description"`
	ShortDescription string             `json:"shortDescription"`
	ImageURL         string             `json:"imageURL,omitempty"`
	DateTime         int64              `json:"dateTime"`
	Duration         int                `json:"duration"`
	Address          string             `json:"address"`
	Coordinates      model.Coordinates  `json:"coordinates"`
	HostID           string             `json:"hostId"`
	HostName         string             `json:"hostName"`
	RSVPCount        int                `json:"rsvpCount"`
	RSVPList         []string           `json:"rsvpList"`
	CreatedAt        int64              `json:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt"`
}

// MarshalEvents 把活動清單序列化成快取 blob
func MarshalEvents(events []*model.Event) ([]byte, error) {
	cached := make([]cachedEvent, 0, len(events))
	for _, e := range events {
		cached = append(cached, cachedEvent{
			ID:               e.ID,
			Title:            e.Title,
			Type:             string(e.Type),
			Difficulty:       string(e.Difficulty),
			Description:      e.Description,
			ShortDescription: e.ShortDescription,
			ImageURL:         e.ImageURL,
			DateTime:         e.DateTime.UnixMilli(),
			Duration:         e.Duration,
			Address:          e.Address,
			Coordinates:      e.Coordinates,
			HostID:           e.HostID,
			HostName:         e.HostName,
			RSVPCount:        e.RSVPCount,
			RSVPList:         e.RSVPList,
			CreatedAt:        e.CreatedAt.UnixMilli(),
			UpdatedAt:        e.UpdatedAt.UnixMilli(),
		})
	}
	return json.Marshal(cached)
}

// UnmarshalEvents 把快取 blob 還原成活動清單
func UnmarshalEvents(blob []byte) ([]*model.Event, error) {
	var cached []cachedEvent
	if err := json.Unmarshal(blob, &cached); err != nil {
		return nil, err
	}
	events := make([]*model.Event, 0, len(cached))
	for _, c := range cached {
		rsvpList := c.RSVPList
		if rsvpList == nil {
			rsvpList = []string{}
		}
		events = append(events, &model.Event{
			ID:               c.ID,
			Title:            c.Title,
			Type:             model.EventType(c.Type),
			Difficulty:       model.Difficulty(c.Difficulty),
			Description:      c.Description,
			ShortDescription: c.ShortDescription,
			ImageURL:         c.ImageURL,
			DateTime:         time.UnixMilli(c.DateTime).UTC(),
			Duration:         c.Duration,
			Address:          c.Address,
			Coordinates:      c.Coordinates,
			HostID:           c.HostID,
			HostName:         c.HostName,
			RSVPCount:        c.RSVPCount,
			RSVPList:         rsvpList,
			CreatedAt:        time.UnixMilli(c.CreatedAt).UTC(),
			UpdatedAt:        time.UnixMilli(c.UpdatedAt).UTC(),
		})
	}
	return events, nil
}
