package models

import (
	"time"

	"github.com/google/uuid"
)

// Urgency is the triage level of a thread.
type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
	UrgencyUrgent Urgency = "Urgent"
)

// DefaultUrgency applies when a thread is created without one.
const DefaultUrgency = UrgencyMedium

// Urgencies lists the accepted urgency values in ascending order.
var Urgencies = []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyUrgent}

// Valid reports whether u is one of the accepted urgency values.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyUrgent:
		return true
	}
	return false
}

// Thread is one support conversation between a guild member and the moderators.
// Threads are never deleted; closing flips IsOpen.
type Thread struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      string     `gorm:"size:255;not null;index:idx_threads_guild_user,priority:2" json:"user_id"`
	ThreadID    string     `gorm:"size:255;not null" json:"thread_id"`
	IsOpen      bool       `gorm:"not null;default:true" json:"is_open"`
	Urgency     Urgency    `gorm:"size:16;not null" json:"urgency"`
	GuildID     string     `gorm:"size:255;not null;index:idx_threads_guild_user,priority:1" json:"guild_id"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	ClosedByID  *string    `gorm:"size:255" json:"closed_by_id,omitempty"`
	ClosedByTag *string    `gorm:"size:255" json:"closed_by_tag,omitempty"`
}

// ThreadMessage links a message to the thread it was posted in.
type ThreadMessage struct {
	ThreadID  uint      `gorm:"primaryKey;autoIncrement:false" json:"thread_id"`
	MessageID uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"message_id"`
}

// ThreadDetail is a thread together with one page of its messages.
type ThreadDetail struct {
	Thread     Thread     `json:"thread"`
	Messages   []Message  `json:"messages"`
	Pagination Pagination `json:"pagination"`
}
