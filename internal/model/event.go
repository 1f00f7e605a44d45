package model

import "time"

// EventType 活動類型
type EventType string

const (
	EventTypeYoga  EventType = "Yoga"
	EventTypeRun   EventType = "Run"
	EventTypeMatch EventType = "Match"
)

func (t EventType) IsValid() bool {
	switch t {
	case EventTypeYoga, EventTypeRun, EventTypeMatch:
		return true
	}
	return false
}

// Difficulty 活動難度 (共 9 級)
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyEasy         Difficulty = "Easy"
	DifficultyModerate     Difficulty = "Moderate"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyChallenging  Difficulty = "Challenging"
	DifficultyHard         Difficulty = "Hard"
	DifficultyExpert       Difficulty = "Expert"
	DifficultyElite        Difficulty = "Elite"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyEasy, DifficultyModerate,
		DifficultyIntermediate, DifficultyAdvanced, DifficultyChallenging,
		DifficultyHard, DifficultyExpert, DifficultyElite:
		return true
	}
	return false
}

// Coordinates 活動座標; (0,0) 代表尚未 geocode
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinates) IsZero() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

// Event 活動模型。RSVPCount 與 RSVPList 永遠一起更新，寫入後必須滿足
// RSVPCount == len(RSVPList)。
type Event struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Type             EventType   `json:"type"`
	Difficulty       Difficulty  `json:"difficulty"`
	Description      string      `json:"description"`
	ShortDescription string      `json:"shortDescription"`
	ImageURL         string      `json:"imageURL,omitempty"`
	DateTime         time.Time   `json:"dateTime"`
	Duration         int         `json:"duration"`
	Address          string      `json:"address"`
	Coordinates      Coordinates `json:"coordinates"`
	HostID           string      `json:"hostId"`
	HostName         string      `json:"hostName"`
	RSVPCount        int         `json:"rsvpCount"`
	RSVPList         []string    `json:"rsvpList"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// HasRSVP 檢查使用者是否已報名
func (e *Event) HasRSVP(uid string) bool {
	for _, id := range e.RSVPList {
		if id == uid {
			return true
		}
	}
	return false
}

// IsPast 檢查活動是否已開始 (過去的活動不開放報名)
func (e *Event) IsPast(now time.Time) bool {
	return e.DateTime.Before(now)
}

// Clone 回傳深拷貝，read-model 對外只發佈拷貝
func (e *Event) Clone() *Event {
	dup := *e
	dup.RSVPList = append([]string(nil), e.RSVPList...)
	return &dup
}

type UpdateEventParams struct {
	Title            *string
	Type             *EventType
	Difficulty       *Difficulty
	Description      *string
	ShortDescription *string
	ImageURL         *string
	DateTime         *time.Time
	Duration         *int
	Address          *string
	Coordinates      *Coordinates
}
