package model

import (
	"time"

	"github.com/google/uuid"
)

type ScholarshipModel struct {
	ScholarshipID        uuid.UUID  `gorm:"column:scholarship_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"scholarship_id"`
	ScholarshipTitle     string     `gorm:"column:scholarship_title;type:varchar(200);not null" json:"scholarship_title"`
	ScholarshipProvider  *string    `gorm:"column:scholarship_provider;type:varchar(200)" json:"scholarship_provider,omitempty"`
	ScholarshipAmountMin *float64   `gorm:"column:scholarship_amount_min;type:numeric(12,2)" json:"scholarship_amount_min,omitempty"`
	ScholarshipAmountMax *float64   `gorm:"column:scholarship_amount_max;type:numeric(12,2)" json:"scholarship_amount_max,omitempty"`
	ScholarshipDeadline  *time.Time `gorm:"column:scholarship_deadline;type:timestamptz" json:"scholarship_deadline,omitempty"`
	ScholarshipURL       *string    `gorm:"column:scholarship_url;type:text" json:"scholarship_url,omitempty"`

	ScholarshipCreatedAt time.Time `gorm:"column:scholarship_created_at;autoCreateTime" json:"scholarship_created_at"`
	ScholarshipUpdatedAt time.Time `gorm:"column:scholarship_updated_at;autoUpdateTime" json:"scholarship_updated_at"`
}

func (ScholarshipModel) TableName() string {
	return "scholarships"
}

func (m ScholarshipModel) GetID() uuid.UUID { return m.ScholarshipID }
