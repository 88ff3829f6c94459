package service

import (
	"strings"
	"time"

	"github.com/PrathameshWCE/Offcentre/internal/model"
	"github.com/PrathameshWCE/Offcentre/internal/repository"
	"github.com/google/uuid"
)

// Лимиты композера публикаций.
const (
	TipMaxWords  = 120
	BlogMaxWords = 500
	MinTags      = 2
	MaxMedia     = 3
)

// PostDraft - черновик публикации, поступающий из формы.
type PostDraft struct {
	Type      string
	Category  string
	PlaceName string
	Location  string
	Content   string
	Tags      []string
	Media     []string
	Adventure *model.AdventureDetails
}

// PostService проверяет и публикует пользовательские публикации.
type PostService struct {
	postRepo *repository.PostRepository
	now      func() time.Time
}

// NewPostService создает новый сервис публикаций.
func NewPostService(postRepo *repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo, now: time.Now}
}

// Publish проверяет черновик и сохраняет публикацию.
// Любая ошибка проверки блокирует сохранение целиком.
func (s *PostService) Publish(user *model.User, draft PostDraft) (*model.Post, error) {
	if user == nil {
		return nil, ErrNotSignedIn
	}
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}

	media := draft.Media
	if len(media) > MaxMedia {
		media = media[:MaxMedia]
	}
	post := model.Post{
		ID:          uuid.New().String(),
		AuthorEmail: user.Email,
		AuthorName:  user.Name,
		Type:        draft.Type,
		Category:    draft.Category,
		PlaceName:   draft.PlaceName,
		Location:    draft.Location,
		Content:     draft.Content,
		Tags:        draft.Tags,
		Media:       media,
		Adventure:   draft.Adventure,
		CreatedAt:   s.now(),
	}
	if err := s.postRepo.Append(post); err != nil {
		return nil, err
	}
	return &post, nil
}

// List возвращает все публикации в порядке создания.
func (s *PostService) List() ([]model.Post, error) {
	return s.postRepo.List()
}

func validateDraft(draft *PostDraft) error {
	if draft.Type != model.PostTypeTip && draft.Type != model.PostTypeBlog {
		return validationErr("type", "ожидается tip или blog")
	}
	if draft.Category == "" {
		return validationErr("category", "выберите категорию")
	}
	if draft.PlaceName == "" {
		return validationErr("placeName", "обязательное поле")
	}
	if draft.Location == "" {
		return validationErr("location", "обязательное поле")
	}
	if strings.TrimSpace(draft.Content) == "" {
		return validationErr("content", "обязательное поле")
	}
	if len(draft.Tags) < MinTags {
		return validationErr("tags", "выберите не менее двух тегов")
	}

	maxWords := BlogMaxWords
	if draft.Type == model.PostTypeTip {
		maxWords = TipMaxWords
	}
	if wordCount(draft.Content) > maxWords {
		return validationErr("content", "превышен лимит слов")
	}

	// Для категории "adventure" обязательны дополнительные сведения.
	if draft.Category == "adventure" {
		a := draft.Adventure
		if a == nil || a.Time == "" || a.Difficulty == "" || a.SafetyTips == "" {
			return validationErr("adventure", "заполните все сведения о приключении")
		}
	}
	return nil
}

func wordCount(content string) int {
	return len(strings.Fields(content))
}
