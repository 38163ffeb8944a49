package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inquiry is an archived contact form submission.
// Only written when an inquiry archive is configured.
type Inquiry struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index:idx_inquiry_created_at" json:"created_at"`

	FullName    string `gorm:"not null" json:"full_name"`
	Email       string `gorm:"not null;index:idx_inquiry_email" json:"email"`
	Phone       string `json:"phone,omitempty"`
	Company     string `json:"company,omitempty"`
	Budget      string `json:"budget,omitempty"`
	Message     string `gorm:"type:text;not null" json:"message"`
	GDPRConsent bool   `gorm:"not null" json:"gdpr_consent"`

	// Request metadata
	Region    string `json:"region,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// NewInquiry builds an archive record from a submission
func NewInquiry(s ContactSubmission) *Inquiry {
	return &Inquiry{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now().UTC(),
		FullName:    s.FullName,
		Email:       s.Email,
		Phone:       s.Phone,
		Company:     s.Company,
		Budget:      s.Budget,
		Message:     s.Message,
		GDPRConsent: s.GDPRConsent,
	}
}

// BeforeCreate generates a UUID if one was not assigned
func (i *Inquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}

// BeforeUpdate prevents modification of archived inquiries
func (i *Inquiry) BeforeUpdate(tx *gorm.DB) error {
	return gorm.ErrRecordNotFound
}

// TableName specifies the table name
func (Inquiry) TableName() string {
	return "inquiries"
}
