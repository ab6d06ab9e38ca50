package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Message is an immutable chat message relayed between a user and moderators.
type Message struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID    string         `gorm:"size:255;not null" json:"author_id"`
	AuthorTag   string         `gorm:"size:255;not null" json:"author_tag"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	Attachments datatypes.JSON `json:"attachments" swaggertype:"array,object"`
	CreatedAt   time.Time      `gorm:"not null;index:idx_messages_guild_created,priority:2" json:"created_at"`
	GuildID     string         `gorm:"size:255;not null;index:idx_messages_guild_created,priority:1" json:"guild_id"`
}

// Note is an internal moderator annotation on a thread.
type Note struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ThreadID  *uint     `gorm:"index" json:"thread_id"`
	AuthorID  string    `gorm:"size:255;not null" json:"author_id"`
	AuthorTag string    `gorm:"size:255;not null" json:"author_tag"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	GuildID   string    `gorm:"size:255;not null;index" json:"guild_id"`
}

// BeforeCreate assigns a UUID when the caller did not.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Attachments == nil {
		m.Attachments = datatypes.JSON("[]")
	}
	return nil
}

// BeforeCreate assigns a UUID when the caller did not.
func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
