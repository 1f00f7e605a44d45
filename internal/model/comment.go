package model

import "time"

// Comment 活動留言。UserName 是發文當下的顯示名稱快照，之後改名不會回填。
// 建立後不可修改或刪除。
type Comment struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
