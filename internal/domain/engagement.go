package domain

import "time"

// SavedAttraction - элемент личного списка пользователя
type SavedAttraction struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	AttractionID int64     `json:"attraction_id" db:"attraction_id"`
	Notes        *string   `json:"notes,omitempty" db:"notes"`
	Visited      bool      `json:"visited" db:"visited"`
	AddedAt      time.Time `json:"added_at" db:"added_at"`
}

// LikeToggleResult - результат переключения лайка
type LikeToggleResult struct {
	Liked    bool `json:"liked"`
	NumLikes int  `json:"num_likes"`
}

// SaveToggleResult - результат переключения сохранения в список
type SaveToggleResult struct {
	Saved bool `json:"saved"`
}
