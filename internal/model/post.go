package model

import "time"

// Тип публикации определяет лимит слов: совет - короткая заметка, блог - полноценный пост.
const (
	PostTypeTip  = "tip"
	PostTypeBlog = "blog"
)

// AdventureDetails - обязательные дополнительные сведения для публикаций категории "adventure".
type AdventureDetails struct {
	Time       string `json:"time"`       // требуемое время, например "2-3 часа"
	Difficulty string `json:"difficulty"` // уровень сложности
	SafetyTips string `json:"safetyTips"`
}

// Post представляет публикацию пользователя о месте (совет или блог).
type Post struct {
	ID          string            `json:"id"`
	AuthorEmail string            `json:"authorEmail"`
	AuthorName  string            `json:"authorName"`
	Type        string            `json:"type"` // PostTypeTip или PostTypeBlog
	Category    string            `json:"category"`
	PlaceName   string            `json:"placeName"`
	Location    string            `json:"location"` // "город, штат"
	Content     string            `json:"content"`
	Tags        []string          `json:"tags"`
	Media       []string          `json:"media,omitempty"` // ссылки на изображения/видео, не более трех
	Adventure   *AdventureDetails `json:"adventure,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// Review представляет отзыв о месте из каталога (блог или совет другого пользователя).
type Review struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Upvotes   int       `json:"upvotes"`
	Downvotes int       `json:"downvotes"`
	Comments  int       `json:"comments"`
	PostedAt  time.Time `json:"postedAt"`
}
