package domain

import "time"

type Notification struct {
	ID        int64     `json:"id"`
	FromID    int64     `json:"fromID"`
	ToID      int64     `json:"toID"`
	FromName  string    `json:"fromName"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
