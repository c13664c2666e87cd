// Package model holds the gorm models of the persistence layer.
package model

import "time"

// SessionSnapshotModel is one persisted session snapshot keyed by storage key.
type SessionSnapshotModel struct {
	SessionKey string    `gorm:"column:session_key;primaryKey;type:varchar(128)"`
	Payload    []byte    `gorm:"column:payload;type:jsonb;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the table name.
func (SessionSnapshotModel) TableName() string {
	return "session_snapshots"
}
