package services

import (
	"consulting_site_go/config"
	"consulting_site_go/db"
	"consulting_site_go/models"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
)

// InquiryArchive keeps a durable record of contact submissions.
// Archiving is best-effort: callers log failures and carry on.
type InquiryArchive interface {
	Record(ctx context.Context, inquiry *models.Inquiry) error
	List(ctx context.Context, since time.Time) ([]models.Inquiry, error)
}

// OpenInquiryArchive builds the archive selected by INQUIRY_ARCHIVE.
// It returns a nil archive when archiving is off. The close func is never nil.
func OpenInquiryArchive(cfg *config.Config) (InquiryArchive, func(), error) {
	switch cfg.InquiryArchive {
	case config.ArchiveSQLite:
		conn, err := db.Open(cfg.DBPath, cfg.Environment)
		if err != nil {
			return nil, func() {}, fmt.Errorf("failed to open inquiry database: %w", err)
		}
		closeFn := func() {
			if err := db.Close(conn); err != nil {
				log.Printf("[WARNING] Failed to close inquiry database: %v", err)
			}
		}
		return NewGormInquiryArchive(conn), closeFn, nil
	case config.ArchiveR2:
		return NewObjectInquiryArchive(NewObjectStore(cfg, "tmp/inquiries")), func() {}, nil
	default:
		return nil, func() {}, nil
	}
}

// GormInquiryArchive stores inquiries in the SQL database
type GormInquiryArchive struct {
	db *gorm.DB
}

func NewGormInquiryArchive(db *gorm.DB) *GormInquiryArchive {
	return &GormInquiryArchive{db: db}
}

// Record inserts the inquiry
func (a *GormInquiryArchive) Record(ctx context.Context, inquiry *models.Inquiry) error {
	if err := a.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return fmt.Errorf("failed to archive inquiry: %w", err)
	}
	return nil
}

// List returns inquiries created at or after since, oldest first
func (a *GormInquiryArchive) List(ctx context.Context, since time.Time) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	if err := a.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&inquiries).Error; err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return inquiries, nil
}

// inquiryPrefix is the key prefix for inquiries in object storage
const inquiryPrefix = "inquiries/"

// ObjectInquiryArchive stores each inquiry as a JSON object, keyed by date
type ObjectInquiryArchive struct {
	store ObjectStore
}

func NewObjectInquiryArchive(store ObjectStore) *ObjectInquiryArchive {
	return &ObjectInquiryArchive{store: store}
}

// inquiryKey builds inquiries/YYYY/MM/DD/<unix-nanos>-<id>.json so keys sort by time
func inquiryKey(inquiry *models.Inquiry) string {
	t := inquiry.CreatedAt.UTC()
	return fmt.Sprintf("%s%s/%019d-%s.json", inquiryPrefix, t.Format("2006/01/02"), t.UnixNano(), inquiry.ID)
}

// Record uploads the inquiry as JSON
func (a *ObjectInquiryArchive) Record(ctx context.Context, inquiry *models.Inquiry) error {
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = time.Now().UTC()
	}
	body, err := json.Marshal(inquiry)
	if err != nil {
		return fmt.Errorf("failed to encode inquiry: %w", err)
	}
	if err := a.store.Put(ctx, inquiryKey(inquiry), "application/json", body); err != nil {
		return fmt.Errorf("failed to archive inquiry: %w", err)
	}
	return nil
}

// List downloads inquiries created at or after since, oldest first
func (a *ObjectInquiryArchive) List(ctx context.Context, since time.Time) ([]models.Inquiry, error) {
	keys, err := a.store.List(ctx, inquiryPrefix)
	if err != nil {
		return nil, err
	}

	var inquiries []models.Inquiry
	for _, key := range keys {
		if !strings.HasSuffix(key, ".json") {
			continue
		}
		data, err := a.store.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		var inquiry models.Inquiry
		if err := json.Unmarshal(data, &inquiry); err != nil {
			return nil, fmt.Errorf("failed to decode inquiry %s: %w", key, err)
		}
		if inquiry.CreatedAt.Before(since) {
			continue
		}
		inquiries = append(inquiries, inquiry)
	}
	return inquiries, nil
}
