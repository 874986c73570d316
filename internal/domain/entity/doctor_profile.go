package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DoctorProfile represents doctor-specific profile data, one per doctor user
type DoctorProfile struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Specialization  string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	ExperienceYears int             `gorm:"not null;default:0" json:"experience_years"`
	AcademicHistory JSON            `gorm:"type:jsonb" json:"academic_history,omitempty"`
	Bio             string          `gorm:"type:text" json:"bio,omitempty"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"consultation_fee"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

func (p *DoctorProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
