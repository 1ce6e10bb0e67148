package announcementapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

type AnnouncementData struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Audience []string `json:"audience"`
}

func (r AnnouncementData) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("не указан заголовок объявления")
	}
	if strings.TrimSpace(r.Body) == "" {
		return errors.New("не указан текст объявления")
	}
	return nil
}

type AnnouncementView struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Audience   []string  `json:"audience,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
