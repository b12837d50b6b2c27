package models

import "time"

// ContactSubmission is a message received through the contact form
type ContactSubmission struct {
	SubmissionID int64     `json:"SubmissionID" gorm:"column:SubmissionID;primaryKey;autoIncrement"`
	Name         string    `json:"Name" gorm:"column:Name;type:text;not null"`
	Email        string    `json:"Email" gorm:"column:Email;type:text;not null"`
	Message      string    `json:"Message" gorm:"column:Message;type:text;not null"`
	CreatedDate  time.Time `json:"CreatedDate" gorm:"column:CreatedDate;not null;default:CURRENT_TIMESTAMP"`
}

func (ContactSubmission) TableName() string {
	return "ContactSubmission"
}

type ContactRequest struct {
	Name    string `json:"Name" validate:"required"`
	Email   string `json:"Email" validate:"required"`
	Message string `json:"Message" validate:"required"`
}

func (r ContactRequest) ToSubmission() *ContactSubmission {
	return &ContactSubmission{Name: r.Name, Email: r.Email, Message: r.Message}
}
