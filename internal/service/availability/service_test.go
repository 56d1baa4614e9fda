package availability

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevadoor/booking-service/internal/domain"
	workerRepo "github.com/sevadoor/booking-service/internal/infra/storage/worker"
	"github.com/sevadoor/booking-service/internal/integrations/identity"
	"github.com/sevadoor/booking-service/internal/service/availability/models"
	"github.com/sevadoor/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// memWorkerRepo репозиторий профилей в памяти
type memWorkerRepo struct {
	profiles map[string]*domain.AvailabilityProfile

	createCalls int
	createErr   error
}

func newMemWorkerRepo(profiles ...*domain.AvailabilityProfile) *memWorkerRepo {
	repo := &memWorkerRepo{profiles: make(map[string]*domain.AvailabilityProfile)}
	for _, p := range profiles {
		repo.profiles[p.WorkerID] = p
	}
	return repo
}

func (r *memWorkerRepo) Create(_ context.Context, profile *domain.AvailabilityProfile) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.profiles[profile.WorkerID]; ok {
		return workerRepo.ErrProfileExists
	}
	r.profiles[profile.WorkerID] = profile
	return nil
}

func (r *memWorkerRepo) GetByWorkerID(_ context.Context, workerID string) (*domain.AvailabilityProfile, error) {
	p, ok := r.profiles[workerID]
	if !ok {
		return nil, workerRepo.ErrProfileNotFound
	}
	return p, nil
}

func (r *memWorkerRepo) AddBlockedDates(_ context.Context, workerID string, dates []types.DateString) ([]types.DateString, error) {
	p, ok := r.profiles[workerID]
	if !ok {
		return nil, workerRepo.ErrProfileNotFound
	}

	set := make(map[types.DateString]struct{})
	for _, d := range p.BlockedDates {
		set[d] = struct{}{}
	}
	for _, d := range dates {
		set[d] = struct{}{}
	}

	p.BlockedDates = p.BlockedDates[:0]
	for d := range set {
		p.BlockedDates = append(p.BlockedDates, d)
	}
	sort.Slice(p.BlockedDates, func(i, j int) bool { return p.BlockedDates[i] < p.BlockedDates[j] })
	return p.BlockedDates, nil
}

func (r *memWorkerRepo) RemoveBlockedDates(_ context.Context, workerID string, dates []types.DateString) ([]types.DateString, error) {
	p, ok := r.profiles[workerID]
	if !ok {
		return nil, workerRepo.ErrProfileNotFound
	}

	drop := make(map[types.DateString]struct{}, len(dates))
	for _, d := range dates {
		drop[d] = struct{}{}
	}

	kept := p.BlockedDates[:0]
	for _, d := range p.BlockedDates {
		if _, ok := drop[d]; !ok {
			kept = append(kept, d)
		}
	}
	p.BlockedDates = kept
	return p.BlockedDates, nil
}

func (r *memWorkerRepo) ReplaceBlockedDates(_ context.Context, workerID string, dates []types.DateString) ([]types.DateString, error) {
	p, ok := r.profiles[workerID]
	if !ok {
		return nil, workerRepo.ErrProfileNotFound
	}
	p.BlockedDates = append([]types.DateString(nil), dates...)
	return p.BlockedDates, nil
}

func (r *memWorkerRepo) SetWorkingHours(_ context.Context, workerID string, hours domain.WorkingHours) error {
	p, ok := r.profiles[workerID]
	if !ok {
		return workerRepo.ErrProfileNotFound
	}
	p.WorkingHours = hours
	return nil
}

type stubIdentity struct {
	worker *identity.Worker
	err    error
}

func (s *stubIdentity) GetWorkerWithGracefulDegradation(context.Context, string) (*identity.Worker, error) {
	return s.worker, s.err
}

func existingProfile() *domain.AvailabilityProfile {
	return &domain.AvailabilityProfile{
		WorkerID:     "w-1",
		BlockedDates: []types.DateString{"2026-09-01"},
		WorkingHours: domain.WorkingHours{Start: "08:00", End: "16:00", SlotDuration: 60},
	}
}

func knownIdentity() *stubIdentity {
	return &stubIdentity{worker: &identity.Worker{ID: "w-1", Name: "Ivan"}}
}

func TestGetAvailability_ExistingProfile(t *testing.T) {
	repo := newMemWorkerRepo(existingProfile())
	svc := NewService(repo, knownIdentity(), nopLogger{})

	resp, err := svc.GetAvailability(context.Background(), "w-1")
	require.NoError(t, err)

	assert.Equal(t, "w-1", resp.WorkerID)
	assert.Equal(t, []string{"2026-09-01"}, resp.BlockedDates)
	assert.Equal(t, "08:00", resp.WorkingHours.Start)
	assert.Equal(t, 60, resp.WorkingHours.SlotDuration)
	assert.Zero(t, repo.createCalls)
}

func TestGetAvailability_LazyProvisioning(t *testing.T) {
	t.Run("known worker gets default profile", func(t *testing.T) {
		repo := newMemWorkerRepo()
		svc := NewService(repo, knownIdentity(), nopLogger{})

		resp, err := svc.GetAvailability(context.Background(), "w-1")
		require.NoError(t, err)

		assert.Equal(t, 1, repo.createCalls)
		assert.Empty(t, resp.BlockedDates)
		assert.Equal(t, "09:00", resp.WorkingHours.Start)
		assert.Equal(t, "18:00", resp.WorkingHours.End)
		assert.Equal(t, 30, resp.WorkingHours.SlotDuration)
	})

	t.Run("unknown worker gets nothing", func(t *testing.T) {
		repo := newMemWorkerRepo()
		svc := NewService(repo, &stubIdentity{err: identity.ErrWorkerNotFound}, nopLogger{})

		_, err := svc.GetAvailability(context.Background(), "w-404")
		assert.ErrorIs(t, err, ErrWorkerNotFound)
		assert.Zero(t, repo.createCalls)
	})

	t.Run("identity outage still provisions", func(t *testing.T) {
		repo := newMemWorkerRepo()
		svc := NewService(repo, &stubIdentity{err: identity.ErrServiceDegraded}, nopLogger{})

		resp, err := svc.GetAvailability(context.Background(), "w-1")
		require.NoError(t, err)
		assert.Equal(t, 1, repo.createCalls)
		assert.Equal(t, "w-1", resp.WorkerID)
	})

	t.Run("concurrent provisioning reads winner profile", func(t *testing.T) {
		repo := newMemWorkerRepo(existingProfile())
		repo.createErr = workerRepo.ErrProfileExists
		// Профиль "появился" между Get и Create - симулируем гонку,
		// подменив GetByWorkerID через двухфазный репозиторий
		svc := NewService(&racingWorkerRepo{memWorkerRepo: repo}, knownIdentity(), nopLogger{})

		resp, err := svc.GetAvailability(context.Background(), "w-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"2026-09-01"}, resp.BlockedDates)
	})
}

// racingWorkerRepo отдает ErrProfileNotFound на первое чтение,
// дальше ведет себя как обычный репозиторий
type racingWorkerRepo struct {
	*memWorkerRepo
	reads int
}

func (r *racingWorkerRepo) GetByWorkerID(ctx context.Context, workerID string) (*domain.AvailabilityProfile, error) {
	r.reads++
	if r.reads == 1 {
		return nil, workerRepo.ErrProfileNotFound
	}
	return r.memWorkerRepo.GetByWorkerID(ctx, workerID)
}

func TestUpdateBlockedDates(t *testing.T) {
	t.Run("add merges as a set", func(t *testing.T) {
		repo := newMemWorkerRepo(existingProfile())
		svc := NewService(repo, knownIdentity(), nopLogger{})

		resp, err := svc.UpdateBlockedDates(context.Background(), "w-1", &models.UpdateBlockedDatesRequest{
			Action: models.ActionAdd,
			Dates:  []string{"2026-09-02", "2026-09-01"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"2026-09-01", "2026-09-02"}, resp.BlockedDates)
	})

	t.Run("remove is set difference", func(t *testing.T) {
		repo := newMemWorkerRepo(existingProfile())
		svc := NewService(repo, knownIdentity(), nopLogger{})

		resp, err := svc.UpdateBlockedDates(context.Background(), "w-1", &models.UpdateBlockedDatesRequest{
			Action: models.ActionRemove,
			Dates:  []string{"2026-09-01", "2026-09-09"},
		})
		require.NoError(t, err)
		assert.Empty(t, resp.BlockedDates)
	})

	t.Run("replace overwrites", func(t *testing.T) {
		repo := newMemWorkerRepo(existingProfile())
		svc := NewService(repo, knownIdentity(), nopLogger{})

		resp, err := svc.UpdateBlockedDates(context.Background(), "w-1", &models.UpdateBlockedDatesRequest{
			Action: models.ActionReplace,
			Dates:  []string{"2026-10-01"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"2026-10-01"}, resp.BlockedDates)
	})

	t.Run("one bad date rejects the whole request", func(t *testing.T) {
		repo := newMemWorkerRepo(existingProfile())
		svc := NewService(repo, knownIdentity(), nopLogger{})

		_, err := svc.UpdateBlockedDates(context.Background(), "w-1", &models.UpdateBlockedDatesRequest{
			Action: models.ActionAdd,
			Dates:  []string{"2026-09-02", "02.09.2026"},
		})
		assert.ErrorIs(t, err, ErrInvalidDate)
		assert.Equal(t, []types.DateString{"2026-09-01"}, repo.profiles["w-1"].BlockedDates)
	})

	t.Run("unknown action", func(t *testing.T) {
		svc := NewService(newMemWorkerRepo(existingProfile()), knownIdentity(), nopLogger{})

		_, err := svc.UpdateBlockedDates(context.Background(), "w-1", &models.UpdateBlockedDatesRequest{
			Action: "merge",
			Dates:  []string{"2026-09-02"},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("provisions missing profile before update", func(t *testing.T) {
		repo := newMemWorkerRepo()
		svc := NewService(repo, knownIdentity(), nopLogger{})

		resp, err := svc.UpdateBlockedDates(context.Background(), "w-1", &models.UpdateBlockedDatesRequest{
			Action: models.ActionAdd,
			Dates:  []string{"2026-09-05"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, repo.createCalls)
		assert.Equal(t, []string{"2026-09-05"}, resp.BlockedDates)
	})
}

func TestSetWorkingHours(t *testing.T) {
	t.Run("valid configuration applied", func(t *testing.T) {
		repo := newMemWorkerRepo(existingProfile())
		svc := NewService(repo, knownIdentity(), nopLogger{})

		resp, err := svc.SetWorkingHours(context.Background(), "w-1", &models.UpdateWorkingHoursRequest{
			Start: "10:00", End: "14:00", SlotDuration: 20,
		})
		require.NoError(t, err)
		assert.Equal(t, "10:00", resp.WorkingHours.Start)
		assert.Equal(t, "14:00", resp.WorkingHours.End)
		assert.Equal(t, 20, resp.WorkingHours.SlotDuration)
	})

	t.Run("invalid configuration keeps the old one", func(t *testing.T) {
		repo := newMemWorkerRepo(existingProfile())
		svc := NewService(repo, knownIdentity(), nopLogger{})

		tests := []*models.UpdateWorkingHoursRequest{
			{Start: "18:00", End: "09:00", SlotDuration: 30},
			{Start: "09:00", End: "18:00", SlotDuration: 0},
			{Start: "9am", End: "18:00", SlotDuration: 30},
		}
		for _, req := range tests {
			_, err := svc.SetWorkingHours(context.Background(), "w-1", req)
			assert.ErrorIs(t, err, ErrInvalidWorkingHours)
		}

		assert.Equal(t, types.TimeString("08:00"), repo.profiles["w-1"].WorkingHours.Start)
	})

	t.Run("unknown worker", func(t *testing.T) {
		svc := NewService(newMemWorkerRepo(), &stubIdentity{err: identity.ErrWorkerNotFound}, nopLogger{})

		_, err := svc.SetWorkingHours(context.Background(), "w-404", &models.UpdateWorkingHoursRequest{
			Start: "10:00", End: "14:00", SlotDuration: 20,
		})
		assert.ErrorIs(t, err, ErrWorkerNotFound)
	})
}
