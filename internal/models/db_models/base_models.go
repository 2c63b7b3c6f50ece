package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id" bson:"id"`
	CreatedAt int64          `gorm:"autoCreateTime" json:"created_at" bson:"created_at"`
	UpdatedAt int64          `gorm:"autoUpdateTime" json:"updated_at" bson:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" bson:"-"`
}

// Touch assigns an id and timestamps the way the gorm hooks do, for stores
// that do not run them.
func (b *BaseModel) Touch() {
	now := time.Now().Unix()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt == 0 {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// Hooks to manage int64 timestamps
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	b.Touch()
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}
