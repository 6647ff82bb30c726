package event

import (
	"time"
)

// Defaults applied when a create request leaves optional fields empty.
const (
	DefaultTime     = "09:00"
	DefaultCategory = "Other"
	DefaultImageURL = "📅"
)

// ============================
// 🔷 GORM Event Model
type Event struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"type:varchar(255);not null" json:"title"`
	ShortDescription string    `gorm:"type:text;not null" json:"shortDescription"`
	FullDescription  string    `gorm:"type:text;not null" json:"fullDescription"`
	Date             string    `gorm:"type:varchar(50);not null;index" json:"date"`
	Time             string    `gorm:"type:varchar(20)" json:"time"`
	Location         string    `gorm:"type:text;not null" json:"location"`
	Price            string    `gorm:"type:varchar(50);not null" json:"price"`
	Category         string    `gorm:"type:varchar(100)" json:"category"`
	ImageURL         string    `gorm:"type:text" json:"imageUrl"`
	CreatedBy        string    `gorm:"type:varchar(255);not null;index" json:"createdBy"`
	CreatedAt        time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ============================
// 🟡 Create Event Request
type CreateEventRequest struct {
	Title            string `json:"title" binding:"required"`
	ShortDescription string `json:"shortDescription" binding:"required"`
	FullDescription  string `json:"fullDescription" binding:"required"`
	Date             string `json:"date" binding:"required"`
	Time             string `json:"time,omitempty"`
	Location         string `json:"location" binding:"required"`
	Price            string `json:"price" binding:"required"`
	Category         string `json:"category,omitempty"`
	ImageURL         string `json:"imageUrl,omitempty"`
	CreatedBy        string `json:"createdBy" binding:"required"`
}

// ============================
// 🟠 Replace Event Request (PUT keeps the record identity)
type ReplaceEventRequest struct {
	Title            string `json:"title" binding:"required"`
	ShortDescription string `json:"shortDescription" binding:"required"`
	FullDescription  string `json:"fullDescription" binding:"required"`
	Date             string `json:"date" binding:"required"`
	Time             string `json:"time,omitempty"`
	Location         string `json:"location" binding:"required"`
	Price            string `json:"price" binding:"required"`
	Category         string `json:"category,omitempty"`
	ImageURL         string `json:"imageUrl,omitempty"`
	CreatedBy        string `json:"createdBy" binding:"required"`
}

// toEvent builds a persistable Event with defaults applied.
func (r *CreateEventRequest) toEvent() *Event {
	e := &Event{
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		FullDescription:  r.FullDescription,
		Date:             r.Date,
		Time:             r.Time,
		Location:         r.Location,
		Price:            r.Price,
		Category:         r.Category,
		ImageURL:         r.ImageURL,
		CreatedBy:        r.CreatedBy,
	}
	applyDefaults(e)
	return e
}

func applyDefaults(e *Event) {
	if e.Time == "" {
		e.Time = DefaultTime
	}
	if e.Category == "" {
		e.Category = DefaultCategory
	}
	if e.ImageURL == "" {
		e.ImageURL = DefaultImageURL
	}
}
