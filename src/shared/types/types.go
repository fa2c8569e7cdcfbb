package types

import "time"

// Discussion topics, one per Telegram forum thread. The thread id is assigned
// by Telegram and is not required to be unique in the schema.
type Topic struct {
	ID        uint64 `gorm:"primaryKey"`
	TopicID   int64  `gorm:"index;not null"`
	TopicName string `gorm:"size:255;not null"`
}

// Registered squad members
type User struct {
	ID         uint64  `gorm:"primaryKey"`
	TelegramID int64   `gorm:"index;not null"`
	Admin      bool    `gorm:"default:false"`
	Reserved   bool    `gorm:"default:false"`
	Warn       int     `gorm:"default:0"`
	Callsign   *string `gorm:"size:255;unique"`
}

// Scheduled events, each owned by a topic. TopicID holds the owning topic's
// surrogate id without a database constraint: removing a topic leaves its
// events in place.
type Event struct {
	ID             uint64    `gorm:"primaryKey"`
	TopicID        uint64    `gorm:"index;not null"`
	EventName      string    `gorm:"size:255;not null"`
	EventLink      *string   `gorm:"size:255"`
	OrganizerRules *string   `gorm:"type:text"`
	Latitude       float64   `gorm:"not null;check:latitude >= -90 AND latitude <= 90"`
	Longitude      float64   `gorm:"not null;check:longitude >= -90 AND longitude <= 90"`
	Price          int64     `gorm:"not null"`
	ExpireDate     time.Time `gorm:"not null"`
}

// Per-user event attendance polls. Deleting the owning user or event deletes
// the poll.
type Poll struct {
	ID            uint64  `gorm:"primaryKey"`
	UserID        uint64  `gorm:"index;not null"`
	EventID       uint64  `gorm:"index;not null"`
	Visitation    bool    `gorm:"not null"`
	Reason        *string `gorm:"type:text"`
	Car           bool    `gorm:"not null"`
	Hitchhike     *bool
	StartLocation string `gorm:"type:text;not null"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Event Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}
