package dbmodels

import (
	announcementapimodels "hrms-backend/models/api/announcement"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type Announcement struct {
	BaseModel
	Title    string `gorm:"type:varchar(255)"`
	Body     string
	AuthorID string `gorm:"type:varchar(36)"`
	Author   *User  `gorm:"foreignKey:AuthorID"`
	// Audience - роли, которым адресовано объявление
	Audience pq.StringArray `gorm:"type:text[]"`
}

func (r Announcement) Validate() error {
	if r.Title == "" {
		return errors.New("не указан заголовок объявления")
	}
	if r.Body == "" {
		return errors.New("не указан текст объявления")
	}
	return nil
}

func (r Announcement) ToModel() announcementapimodels.AnnouncementView {
	view := announcementapimodels.AnnouncementView{
		ID:        r.ID,
		Title:     r.Title,
		Body:      r.Body,
		AuthorID:  r.AuthorID,
		Audience:  r.Audience,
		CreatedAt: r.CreatedAt,
	}
	if r.Author != nil {
		view.AuthorName = r.Author.GetFullName()
	}
	return view
}
