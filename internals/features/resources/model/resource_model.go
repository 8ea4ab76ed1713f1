// file: internals/features/resources/model/resource_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tipe resource yang dikenal
const (
	TypeNote       = "note"
	TypeAssignment = "assignment"
	TypePaper      = "paper"
)

func ValidResourceType(t string) bool {
	switch t {
	case TypeNote, TypeAssignment, TypePaper:
		return true
	}
	return false
}

type ResourceModel struct {
	/* ============ PK ============ */
	ResourceID uuid.UUID `gorm:"column:resource_id;type:uuid;default:gen_random_uuid();primaryKey" json:"resource_id"`

	/* ============ FK eksplisit (→ subjects) ============ */
	ResourceSubjectID uuid.UUID `gorm:"column:resource_subject_id;type:uuid;not null;index:idx_resources_subject" json:"resource_subject_id"`

	/* ============ Identitas & atribut ============ */
	ResourceType  string `gorm:"column:resource_type;type:varchar(20);not null;index:idx_resources_type" json:"resource_type"`
	ResourceTitle string `gorm:"column:resource_title;type:varchar(200);not null" json:"resource_title"`
	ResourceUnit  *int16 `gorm:"column:resource_unit" json:"resource_unit,omitempty"`

	/* ============ File eksternal (link only) ============ */
	ResourceFileURL  string  `gorm:"column:resource_file_url;type:text;not null" json:"resource_file_url"`
	ResourceFileSize *int64  `gorm:"column:resource_file_size" json:"resource_file_size,omitempty"`
	ResourceFileMime *string `gorm:"column:resource_file_mime;type:varchar(120)" json:"resource_file_mime,omitempty"`

	/* ============ Uploader (label bebas) ============ */
	ResourceUploadedBy *string `gorm:"column:resource_uploaded_by;type:varchar(120)" json:"resource_uploaded_by,omitempty"`

	/* ============ Status & audit ============ */
	ResourceIsActive  bool           `gorm:"column:resource_is_active;not null;default:true;index:idx_resources_active" json:"resource_is_active"`
	ResourceCreatedAt time.Time      `gorm:"column:resource_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"resource_created_at"`
	ResourceUpdatedAt time.Time      `gorm:"column:resource_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"resource_updated_at"`
	ResourceDeletedAt gorm.DeletedAt `gorm:"column:resource_deleted_at;index" json:"resource_deleted_at,omitempty"`
}

func (ResourceModel) TableName() string { return "resources" }
