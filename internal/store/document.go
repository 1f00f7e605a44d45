package store

import (
	"fmt"
	"time"

	"community-events/internal/model"
	apperrors "community-events/pkg/app_errors"
)

// Document 後端文件的原始形態：外部 store 是弱型別的，欄位可能缺漏或型別飄移，
// 一律經過 DecodeEvent 補預設值，不做直接轉型。
type Document struct {
	ID   string
	Data map[string]interface{}
}

// DecodeEvent 把弱型別文件解碼成 Event。
// 時間欄位 (dateTime/createdAt/updatedAt) 的線上表示是 epoch 毫秒，解碼成 time.Time；
// 文件 body 內即使帶有 id 也一律以 store 指派的 doc.ID 為準。
// dateTime 缺漏或型別錯誤視為 DecodeError，由呼叫端跳過該筆。
func DecodeEvent(doc Document) (*model.Event, error) {
	if doc.ID == "" || doc.Data == nil {
		return nil, apperrors.ErrDecodeFailed
	}

	dateTime, ok := timeValue(doc.Data["dateTime"])
	if !ok {
		return nil, fmt.Errorf("%w: event %s missing dateTime", apperrors.ErrDecodeFailed, doc.ID)
	}

	event := &model.Event{
		ID:               doc.ID,
		Title:            stringValue(doc.Data["title"]),
		Type:             model.EventType(stringValue(doc.Data["type"])),
		Difficulty:       model.Difficulty(stringValue(doc.Data["difficulty"])),
		Description:      stringValue(doc.Data["description"]),
		ShortDescription: stringValue(doc.Data["shortDescription"]),
		ImageURL:         stringValue(doc.Data["imageURL"]),
		DateTime:         dateTime,
		Duration:         intValue(doc.Data["duration"]),
		Address:          stringValue(doc.Data["address"]),
		HostID:           stringValue(doc.Data["hostId"]),
		HostName:         stringValue(doc.Data["hostName"]),
		RSVPList:         stringListValue(doc.Data["rsvpList"]),
	}

	if coords, ok := doc.Data["coordinates"].(map[string]interface{}); ok {
		event.Coordinates = model.Coordinates{
			Latitude:  floatValue(coords["latitude"]),
			Longitude: floatValue(coords["longitude"]),
		}
	}

	// rsvpCount 缺漏或為負時以 rsvpList 長度補齊
	event.RSVPCount = len(event.RSVPList)
	if n := intValue(doc.Data["rsvpCount"]); n >= 0 && doc.Data["rsvpCount"] != nil {
		event.RSVPCount = n
	}

	if createdAt, ok := timeValue(doc.Data["createdAt"]); ok {
		event.CreatedAt = createdAt
	}
	if updatedAt, ok := timeValue(doc.Data["updatedAt"]); ok {
		event.UpdatedAt = updatedAt
	}

	return event, nil
}

// EncodeEvent 把 Event 編碼回線上文件格式。id 由 store 的 row key 承載，不寫進 body。
func EncodeEvent(event *model.Event) map[string]interface{} {
	return map[string]interface{}{
		"title":            event.Title,
		"type":             string(event.Type),
		"difficulty":       string(event.Difficulty),
		"description":      event.Description,
		"shortDescription": event.ShortDescription,
		"imageURL":         event.ImageURL,
		"dateTime":         event.DateTime.UnixMilli(),
		"duration":         event.Duration,
		"address":          event.Address,
		"coordinates": map[string]interface{}{
			"latitude":  event.Coordinates.Latitude,
			"longitude": event.Coordinates.Longitude,
		},
		"hostId":    event.HostID,
		"hostName":  event.HostName,
		"rsvpCount": event.RSVPCount,
		"rsvpList":  event.RSVPList,
		"createdAt": event.CreatedAt.UnixMilli(),
		"updatedAt": event.UpdatedAt.UnixMilli(),
	}
}

func stringValue(v interface{}) string {
	s, _ := v.(string)
	return s
}

func floatValue(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func intValue(v interface{}) int {
	return int(floatValue(v))
}

// timeValue 解析 epoch 毫秒；零值與非數字都視為缺漏
func timeValue(v interface{}) (time.Time, bool) {
	if v == nil {
		return time.Time{}, false
	}
	switch v.(type) {
	case float64, int64, int:
	default:
		return time.Time{}, false
	}
	ms := int64(floatValue(v))
	if ms == 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(ms).UTC(), true
}

func stringListValue(v interface{}) []string {
	switch raw := v.(type) {
	case []string:
		return append([]string{}, raw...)
	case []interface{}:
		list := make([]string, 0, len(raw))
		for _, item := range raw {
			if s, ok := item.(string); ok {
				list = append(list, s)
			}
		}
		return list
	}
	return []string{}
}
