package model

import (
	"time"

	"github.com/google/uuid"
)

// InstitutionModel: katalog kampus (read-only dari sisi tracking).
type InstitutionModel struct {
	InstitutionID      uuid.UUID `gorm:"column:institution_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"institution_id"`
	InstitutionName    string    `gorm:"column:institution_name;type:varchar(200);not null" json:"institution_name"`
	InstitutionCity    *string   `gorm:"column:institution_city;type:varchar(120)" json:"institution_city,omitempty"`
	InstitutionState   *string   `gorm:"column:institution_state;type:varchar(80)" json:"institution_state,omitempty"`
	InstitutionWebsite *string   `gorm:"column:institution_website;type:text" json:"institution_website,omitempty"`

	InstitutionCreatedAt time.Time `gorm:"column:institution_created_at;autoCreateTime" json:"institution_created_at"`
	InstitutionUpdatedAt time.Time `gorm:"column:institution_updated_at;autoUpdateTime" json:"institution_updated_at"`
}

func (InstitutionModel) TableName() string {
	return "institutions"
}

func (m InstitutionModel) GetID() uuid.UUID { return m.InstitutionID }
