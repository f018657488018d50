package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"legal-assist-be/internal/dto"
	"legal-assist-be/internal/entity"
	"legal-assist-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConsultationRepo struct {
	consultations map[uuid.UUID]*entity.Consultation
	failCreate    bool
}

func newFakeConsultationRepo() *fakeConsultationRepo {
	return &fakeConsultationRepo{consultations: make(map[uuid.UUID]*entity.Consultation)}
}

func (r *fakeConsultationRepo) Create(ctx context.Context, c *entity.Consultation) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	cp := *c
	r.consultations[c.Id] = &cp
	return nil
}

func (r *fakeConsultationRepo) Update(ctx context.Context, c *entity.Consultation) error {
	cp := *c
	r.consultations[c.Id] = &cp
	return nil
}

func (r *fakeConsultationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.consultations, id)
	return nil
}

func (r *fakeConsultationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Consultation, error) {
	var id, userId uuid.UUID
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			id = s.ID
		case specification.UserOwnedBy:
			userId = s.UserID
		}
	}
	c, ok := r.consultations[id]
	if !ok || (userId != uuid.Nil && c.UserId != userId) {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeConsultationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Consultation, error) {
	var userId uuid.UUID
	for _, spec := range specs {
		if s, ok := spec.(specification.UserOwnedBy); ok {
			userId = s.UserID
		}
	}
	var out []*entity.Consultation
	for _, c := range r.consultations {
		if userId == uuid.Nil || c.UserId == userId {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.After(out[j].ScheduledAt) })
	return out, nil
}

func (r *fakeConsultationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.consultations)), nil
}

type consultationFixture struct {
	service   IConsultationService
	repo      *fakeConsultationRepo
	publisher *recordingPublisher
	userId    uuid.UUID
}

func newConsultationFixture() *consultationFixture {
	repo := newFakeConsultationRepo()
	uow := &fakeUow{consultations: repo}
	publisher := &recordingPublisher{}
	return &consultationFixture{
		service:   NewConsultationService(uow, publisher, nopLogger{}),
		repo:      repo,
		publisher: publisher,
		userId:    uuid.New(),
	}
}

func TestBookConsultation(t *testing.T) {
	f := newConsultationFixture()
	scheduled := time.Now().Add(48 * time.Hour)

	res, err := f.service.Book(context.Background(), f.userId, &dto.BookConsultationRequest{
		LawyerName:   "Adv. Meera Krishnan",
		PracticeArea: "Tenancy",
		ScheduledAt:  scheduled,
		Notes:        "Eviction notice received last week",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ConsultationStatusPending, res.Status)
	assert.Equal(t, "Adv. Meera Krishnan", res.LawyerName)
	require.Len(t, f.repo.consultations, 1)

	// Booking fans out to email and push via the bus.
	require.Len(t, f.publisher.topics, 1)
	assert.Equal(t, "consultation.booked", f.publisher.topics[0])
}

func TestBookConsultationPersistenceFailureAborts(t *testing.T) {
	f := newConsultationFixture()
	f.repo.failCreate = true

	_, err := f.service.Book(context.Background(), f.userId, &dto.BookConsultationRequest{
		LawyerName:  "Adv. Meera Krishnan",
		ScheduledAt: time.Now().Add(time.Hour),
	})
	assert.Error(t, err)
	assert.Empty(t, f.publisher.topics, "a failed booking must not announce itself")
}

func TestCancelConsultation(t *testing.T) {
	f := newConsultationFixture()
	res, err := f.service.Book(context.Background(), f.userId, &dto.BookConsultationRequest{
		LawyerName:  "Adv. Meera Krishnan",
		ScheduledAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	err = f.service.Cancel(context.Background(), f.userId, res.Id)
	require.NoError(t, err)

	assert.Equal(t, entity.ConsultationStatusCancelled, f.repo.consultations[res.Id].Status)
	require.Len(t, f.publisher.topics, 2)
	assert.Equal(t, "consultation.changed", f.publisher.topics[1])
}

func TestCancelConsultationOwnershipCheck(t *testing.T) {
	f := newConsultationFixture()
	res, err := f.service.Book(context.Background(), f.userId, &dto.BookConsultationRequest{
		LawyerName:  "Adv. Meera Krishnan",
		ScheduledAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	err = f.service.Cancel(context.Background(), uuid.New(), res.Id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, entity.ConsultationStatusPending, f.repo.consultations[res.Id].Status)
}

func TestGetAllConsultationsScopedToUser(t *testing.T) {
	f := newConsultationFixture()
	_, err := f.service.Book(context.Background(), f.userId, &dto.BookConsultationRequest{
		LawyerName:  "Adv. Meera Krishnan",
		ScheduledAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	_, err = f.service.Book(context.Background(), uuid.New(), &dto.BookConsultationRequest{
		LawyerName:  "Adv. Ravi Shankar",
		ScheduledAt: time.Now().Add(2 * time.Hour),
	})
	require.NoError(t, err)

	list, err := f.service.GetAll(context.Background(), f.userId)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Adv. Meera Krishnan", list[0].LawyerName)
}
