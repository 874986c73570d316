package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionUserRegister        = "user.register"
	AuditActionUserLogin           = "user.login"
	AuditActionUserLogout          = "user.logout"
	AuditActionUserDelete          = "user.delete"
	AuditActionProfileCreate       = "doctor_profile.create"
	AuditActionProfileUpdate       = "doctor_profile.update"
	AuditActionSlotCreate          = "time_slot.create"
	AuditActionSlotUpdate          = "time_slot.update"
	AuditActionSlotDelete          = "time_slot.delete"
	AuditActionAppointmentBook     = "appointment.book"
	AuditActionAppointmentComplete = "appointment.complete"
	AuditActionAppointmentCancel   = "appointment.cancel"
)
