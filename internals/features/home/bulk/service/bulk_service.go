// file: internals/features/home/bulk/service/bulk_service.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	subjectDTO "catatanku_backend/internals/features/academics/subjects/dto"
	widgetModel "catatanku_backend/internals/features/home/widgets/model"
	resourceModel "catatanku_backend/internals/features/resources/model"
	profileModel "catatanku_backend/internals/features/users/profiles/model"
)

/* =========================================================
   Response shape
   ========================================================= */

type SubjectWithResources struct {
	subjectDTO.OrderedSubject
	Resources []resourceModel.ResourceModel `json:"resources"`
}

type AcademicBlock struct {
	Subjects []SubjectWithResources `json:"subjects"`
}

type WidgetsBlock struct {
	Reminders     []widgetModel.ReminderModel     `json:"reminders"`
	Exams         []widgetModel.ExamModel         `json:"exams"`
	RecentUpdates []widgetModel.RecentUpdateModel `json:"recent_updates"`
}

type ScopeLabels struct {
	BranchName    string `json:"branch_name"`
	YearLabel     string `json:"year_label"`
	SemesterLabel string `json:"semester_label"`
}

type FromCache struct {
	Academic bool `json:"academic"`
	Widgets  bool `json:"widgets"`
}

type BulkResponse struct {
	Profile     profileModel.ProfileModel `json:"profile"`
	Labels      ScopeLabels               `json:"labels"`
	Academic    AcademicBlock             `json:"academic"`
	Widgets     WidgetsBlock              `json:"widgets"`
	FromCache   FromCache                 `json:"from_cache"`
	GeneratedAt time.Time                 `json:"generated_at"`
}

/* =========================================================
   Service
   ========================================================= */

type BulkService struct {
	DB *gorm.DB
}

func NewBulkService(db *gorm.DB) *BulkService {
	return &BulkService{DB: db}
}

// batas waktu load bersama, terpisah dari timeout request
const sharedLoadTimeout = 5 * time.Second

// detachedLoadContext melepas context load dari cancel milik request
// pemenang singleflight — waiter lain tidak boleh ikut gagal kalau
// pemenangnya timeout. Nilai context tetap terbawa.
func detachedLoadContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(parent), sharedLoadTimeout)
}

// GetBulkAcademicData merakit seluruh data dashboard untuk satu email:
// profile → label scope → subject terurut + resource per subject →
// widget. Profile tidak pernah di-cache; blok akademik & widget lewat
// Store (cache-aside + singleflight).
func (s *BulkService) GetBulkAcademicData(ctx context.Context, email string) (*BulkResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "email wajib dikirim")
	}

	var profile profileModel.ProfileModel
	if err := s.DB.WithContext(ctx).
		First(&profile, "lower(profile_email) = ? AND profile_deleted_at IS NULL", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Profile tidak ditemukan")
		}
		return nil, err
	}

	resp := &BulkResponse{Profile: profile}

	// Tiga stage independen — jalan paralel
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		labels, err := s.loadLabels(gctx, profile)
		if err != nil {
			return err
		}
		resp.Labels = labels
		return nil
	})

	g.Go(func() error {
		key := AcademicKey(profile.ProfileBranchID, profile.ProfileSemesterID)
		v, cached, err := Store.GetOrLoad(key, AcademicTTL, func() (any, error) {
			loadCtx, cancel := detachedLoadContext(gctx)
			defer cancel()
			return s.loadAcademic(loadCtx, profile.ProfileBranchID, profile.ProfileSemesterID)
		})
		if err != nil {
			return err
		}
		resp.Academic = v.(AcademicBlock)
		resp.FromCache.Academic = cached
		return nil
	})

	g.Go(func() error {
		key := WidgetsKey(profile.ProfileBranchID, profile.ProfileSemesterID)
		v, cached, err := Store.GetOrLoad(key, WidgetsTTL, func() (any, error) {
			loadCtx, cancel := detachedLoadContext(gctx)
			defer cancel()
			return s.loadWidgets(loadCtx, profile.ProfileBranchID, profile.ProfileSemesterID)
		})
		if err != nil {
			return err
		}
		resp.Widgets = v.(WidgetsBlock)
		resp.FromCache.Widgets = cached
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp.GeneratedAt = time.Now().UTC()
	return resp, nil
}

/* =========================================================
   Stage loaders
   ========================================================= */

func (s *BulkService) loadLabels(ctx context.Context, p profileModel.ProfileModel) (ScopeLabels, error) {
	var labels ScopeLabels

	row := struct {
		BranchName    string
		YearLabel     string
		SemesterLabel string
	}{}
	err := s.DB.WithContext(ctx).
		Table("branches").
		Select(`branches.branch_name AS branch_name,
			years.year_label AS year_label,
			semesters.semester_label AS semester_label`).
		Joins("CROSS JOIN years").
		Joins("CROSS JOIN semesters").
		Where(`branches.branch_id = ? AND years.year_id = ? AND semesters.semester_id = ?`,
			p.ProfileBranchID, p.ProfileYearID, p.ProfileSemesterID).
		Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// scope profile menunjuk data yang sudah dihapus — label kosong saja
			return labels, nil
		}
		return labels, err
	}

	labels.BranchName = row.BranchName
	labels.YearLabel = row.YearLabel
	labels.SemesterLabel = row.SemesterLabel
	return labels, nil
}

// loadAcademic: subject terurut offering utk kombinasi, lalu resource
// aktif per subject dalam satu query IN.
func (s *BulkService) loadAcademic(ctx context.Context, branchID, semesterID uuid.UUID) (AcademicBlock, error) {
	var subjects []subjectDTO.OrderedSubject
	err := s.DB.WithContext(ctx).
		Table("subject_offerings").
		Select("subjects.*, subject_offerings.offering_id, subject_offerings.offering_order_index").
		Joins("JOIN subjects ON subjects.subject_id = subject_offerings.offering_subject_id").
		Where(`subject_offerings.offering_branch_id = ?
			AND subject_offerings.offering_semester_id = ?
			AND subject_offerings.offering_deleted_at IS NULL
			AND subjects.subject_deleted_at IS NULL
			AND subjects.subject_is_active = TRUE`, branchID, semesterID).
		Order("subject_offerings.offering_order_index ASC, subjects.subject_name ASC").
		Find(&subjects).Error
	if err != nil {
		return AcademicBlock{}, err
	}

	block := AcademicBlock{Subjects: make([]SubjectWithResources, 0, len(subjects))}
	if len(subjects) == 0 {
		return block, nil
	}

	subjectIDs := make([]uuid.UUID, 0, len(subjects))
	for _, sub := range subjects {
		subjectIDs = append(subjectIDs, sub.SubjectID)
	}

	var resources []resourceModel.ResourceModel
	if err := s.DB.WithContext(ctx).
		Where(`resource_subject_id IN ? AND resource_is_active = TRUE AND resource_deleted_at IS NULL`,
			subjectIDs).
		Order("resource_created_at DESC").
		Find(&resources).Error; err != nil {
		return AcademicBlock{}, err
	}

	return assembleAcademic(subjects, resources), nil
}

// assembleAcademic mengelompokkan resource per subject, urutan subject
// dipertahankan.
func assembleAcademic(subjects []subjectDTO.OrderedSubject, resources []resourceModel.ResourceModel) AcademicBlock {
	block := AcademicBlock{Subjects: make([]SubjectWithResources, 0, len(subjects))}

	grouped := make(map[uuid.UUID][]resourceModel.ResourceModel, len(subjects))
	for _, r := range resources {
		grouped[r.ResourceSubjectID] = append(grouped[r.ResourceSubjectID], r)
	}

	for _, sub := range subjects {
		rs := grouped[sub.SubjectID]
		if rs == nil {
			rs = []resourceModel.ResourceModel{}
		}
		block.Subjects = append(block.Subjects, SubjectWithResources{
			OrderedSubject: sub,
			Resources:      rs,
		})
	}
	return block
}

func (s *BulkService) loadWidgets(ctx context.Context, branchID, semesterID uuid.UUID) (WidgetsBlock, error) {
	var block WidgetsBlock

	if err := s.DB.WithContext(ctx).
		Where(`reminder_is_active = TRUE AND reminder_deleted_at IS NULL
			AND (reminder_branch_id IS NULL OR reminder_branch_id = ?)
			AND (reminder_semester_id IS NULL OR reminder_semester_id = ?)`, branchID, semesterID).
		Order("reminder_due_at ASC").Limit(50).
		Find(&block.Reminders).Error; err != nil {
		return block, err
	}

	if err := s.DB.WithContext(ctx).
		Where(`exam_is_active = TRUE AND exam_deleted_at IS NULL
			AND (exam_branch_id IS NULL OR exam_branch_id = ?)
			AND (exam_semester_id IS NULL OR exam_semester_id = ?)`, branchID, semesterID).
		Order("exam_starts_at ASC").Limit(50).
		Find(&block.Exams).Error; err != nil {
		return block, err
	}

	if err := s.DB.WithContext(ctx).
		Where("update_deleted_at IS NULL").
		Order("update_created_at DESC").Limit(10).
		Find(&block.RecentUpdates).Error; err != nil {
		return block, err
	}

	return block, nil
}
