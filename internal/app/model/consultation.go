package model

import "time"

type ConsultationStatus string

const (
	ConsultationPending   ConsultationStatus = "pending"
	ConsultationContacted ConsultationStatus = "contacted"
	ConsultationCompleted ConsultationStatus = "completed"
	ConsultationCancelled ConsultationStatus = "cancelled"
)

// ConsultationRequest is an append-only lead.
type ConsultationRequest struct {
	ID          uint               `gorm:"primarykey" json:"id"`
	FullName    string             `gorm:"not null" json:"full_name"`
	Email       string             `gorm:"not null" json:"email"`
	PhoneNumber string             `gorm:"not null" json:"phone_number"`
	ProjectType string             `gorm:"not null" json:"project_type"`
	Description string             `gorm:"type:text;not null" json:"description"`
	BudgetRange *string            `json:"budget_range"`
	Status      ConsultationStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt   time.Time          `gorm:"not null;index" json:"created_at"`
}

func (ConsultationRequest) TableName() string {
	return "consultation_requests"
}
