package journal

import "time"

// TransferRecord is one journaled upload, download or delete.
type TransferRecord struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Operation    string     `gorm:"size:16;index" json:"operation"`
	Bucket       string     `gorm:"size:63;index" json:"bucket"`
	Key          string     `gorm:"size:1024" json:"key"`
	Size         int64      `json:"size"`
	ETag         string     `gorm:"size:128" json:"etag,omitempty"`
	LastModified *time.Time `json:"last_modified,omitempty"`
	Error        string     `gorm:"size:1024" json:"error,omitempty"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
}

// TableName overrides the table name used by TransferRecord.
func (TransferRecord) TableName() string {
	return "transfer_records"
}
