package models

import (
	"time"

	"gorm.io/gorm"
)

// Instance is a named member of a data type, e.g. "France".
type Instance struct {
	ID         uint            `gorm:"primaryKey" json:"-"`
	PublicID   string          `gorm:"not null;size:32;uniqueIndex" json:"id"`
	DataTypeID uint            `gorm:"not null;index" json:"-"`
	DataType   DataType        `gorm:"foreignKey:DataTypeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Name       string          `gorm:"not null;size:200" json:"name"`
	Values     []PropertyValue `gorm:"foreignKey:InstanceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (i *Instance) BeforeCreate(tx *gorm.DB) error {
	return ensurePublicID(&i.PublicID)
}

// PropertyValue is the text-encoded value of one property for one instance.
type PropertyValue struct {
	ID         uint     `gorm:"primaryKey"`
	InstanceID uint     `gorm:"not null;uniqueIndex:idx_value_instance_property"`
	PropertyID uint     `gorm:"not null;uniqueIndex:idx_value_instance_property"`
	Property   Property `gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Value      string   `gorm:"not null;size:1000"`
	UpdatedAt  time.Time
}
