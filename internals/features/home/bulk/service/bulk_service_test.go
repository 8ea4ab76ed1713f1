// file: internals/features/home/bulk/service/bulk_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subjectDTO "catatanku_backend/internals/features/academics/subjects/dto"
	subjectModel "catatanku_backend/internals/features/academics/subjects/model"
	resourceModel "catatanku_backend/internals/features/resources/model"
)

func orderedSubject(name string, order int) subjectDTO.OrderedSubject {
	return subjectDTO.OrderedSubject{
		SubjectModel: subjectModel.SubjectModel{
			SubjectID:   uuid.New(),
			SubjectName: name,
		},
		OfferingID:         uuid.New(),
		OfferingOrderIndex: order,
	}
}

func TestAssembleAcademic(t *testing.T) {
	s1 := orderedSubject("Struktur Data", 0)
	s2 := orderedSubject("Basis Data", 1)
	s3 := orderedSubject("Jaringan", 2)

	resources := []resourceModel.ResourceModel{
		{ResourceID: uuid.New(), ResourceSubjectID: s1.SubjectID, ResourceType: resourceModel.TypeNote},
		{ResourceID: uuid.New(), ResourceSubjectID: s2.SubjectID, ResourceType: resourceModel.TypePaper},
		{ResourceID: uuid.New(), ResourceSubjectID: s1.SubjectID, ResourceType: resourceModel.TypeAssignment},
	}

	block := assembleAcademic([]subjectDTO.OrderedSubject{s1, s2, s3}, resources)
	require.Len(t, block.Subjects, 3)

	// urutan subject dipertahankan
	assert.Equal(t, "Struktur Data", block.Subjects[0].SubjectName)
	assert.Equal(t, "Basis Data", block.Subjects[1].SubjectName)
	assert.Equal(t, "Jaringan", block.Subjects[2].SubjectName)

	// grouping per subject
	assert.Len(t, block.Subjects[0].Resources, 2)
	assert.Len(t, block.Subjects[1].Resources, 1)

	// subject tanpa resource → slice kosong, bukan nil (JSON: [])
	assert.NotNil(t, block.Subjects[2].Resources)
	assert.Empty(t, block.Subjects[2].Resources)

	// resource nyasar ke subject yang benar
	for _, r := range block.Subjects[0].Resources {
		assert.Equal(t, s1.SubjectID, r.ResourceSubjectID)
	}
}

func TestAssembleAcademic_Empty(t *testing.T) {
	block := assembleAcademic(nil, nil)
	assert.NotNil(t, block.Subjects)
	assert.Empty(t, block.Subjects)
}

func TestDetachedLoadContext(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	loadCtx, cancel := detachedLoadContext(parent)
	defer cancel()

	// cancel request pemenang tidak boleh menjalar ke load bersama
	cancelParent()
	select {
	case <-loadCtx.Done():
		t.Fatal("load context ikut batal saat parent dibatalkan")
	default:
	}

	// tapi load tetap punya deadline sendiri
	deadline, ok := loadCtx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(sharedLoadTimeout), deadline, time.Second)

	cancel()
	select {
	case <-loadCtx.Done():
	default:
		t.Fatal("cancel milik load sendiri harus tetap jalan")
	}
}

func TestKeyFormats(t *testing.T) {
	b, s := uuid.New(), uuid.New()
	assert.Equal(t, "academic:"+b.String()+":"+s.String(), AcademicKey(b, s))
	assert.Equal(t, "widgets:"+b.String()+":"+s.String(), WidgetsKey(b, s))
}
