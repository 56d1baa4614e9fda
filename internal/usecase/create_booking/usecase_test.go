package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevadoor/booking-service/internal/domain"
	bookingRepo "github.com/sevadoor/booking-service/internal/infra/storage/booking"
	"github.com/sevadoor/booking-service/internal/integrations/identity"
	availabilitySvc "github.com/sevadoor/booking-service/internal/service/availability"
	"github.com/sevadoor/booking-service/pkg/ptr"
	"github.com/sevadoor/booking-service/pkg/simpletxmanager"
	"github.com/sevadoor/booking-service/pkg/types"
)

// nopLogger заглушка логгера
type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// memBookingRepo репозиторий в памяти, воспроизводящий частичные уникальные
// индексы хранилища: один активный слот и одно активное дневное бронирование
// на (работник, дата)
type memBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
	taken    map[string]struct{} // коды отслеживания, занятые до начала теста
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{taken: make(map[string]struct{})}
}

func (r *memBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.taken[b.TrackingID]; ok {
		return nil, bookingRepo.ErrTrackingIDTaken
	}

	for _, existing := range r.bookings {
		if existing.TrackingID == b.TrackingID {
			return nil, bookingRepo.ErrTrackingIDTaken
		}
		if existing.WorkerID != b.WorkerID || !existing.BookingDate.Equal(b.BookingDate) || !existing.IsActive() {
			continue
		}
		if existing.TimeSlot == nil && b.TimeSlot == nil {
			return nil, bookingRepo.ErrDateTaken
		}
		if existing.TimeSlot != nil && b.TimeSlot != nil && *existing.TimeSlot == *b.TimeSlot {
			return nil, bookingRepo.ErrSlotTaken
		}
	}

	r.nextID++
	stored := *b
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.bookings = append(r.bookings, &stored)
	return &stored, nil
}

func (r *memBookingRepo) GetActiveForDate(_ context.Context, workerID string, date time.Time, timeSlot *types.TimeString) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.WorkerID != workerID || !b.BookingDate.Equal(date) || !b.IsActive() {
			continue
		}
		if timeSlot != nil && (b.TimeSlot == nil || *b.TimeSlot != *timeSlot) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *memBookingRepo) ExistsByTrackingID(_ context.Context, trackingID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.taken[trackingID]; ok {
		return true, nil
	}
	for _, b := range r.bookings {
		if b.TrackingID == trackingID {
			return true, nil
		}
	}
	return false, nil
}

// stubAvailability отдаёт фиксированный профиль или ошибку
type stubAvailability struct {
	profile *domain.AvailabilityProfile
	err     error
}

func (s *stubAvailability) GetProfile(context.Context, string) (*domain.AvailabilityProfile, error) {
	return s.profile, s.err
}

// stubIdentity отдаёт фиксированную карточку работника или ошибку
type stubIdentity struct {
	worker *identity.Worker
	err    error
}

func (s *stubIdentity) GetWorkerWithGracefulDegradation(context.Context, string) (*identity.Worker, error) {
	return s.worker, s.err
}

// passTxManager выполняет fn без реальной транзакции
type passTxManager struct{}

func (passTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func defaultProfile() *domain.AvailabilityProfile {
	return &domain.AvailabilityProfile{
		WorkerID:     "w-1",
		BlockedDates: []types.DateString{"2026-09-15"},
		WorkingHours: domain.DefaultWorkingHours(),
	}
}

func newTestUseCase(repo *memBookingRepo, profile *domain.AvailabilityProfile) *UseCase {
	return NewUseCase(
		repo,
		&stubAvailability{profile: profile},
		&stubIdentity{worker: &identity.Worker{ID: "w-1", Name: "Ivan", Profession: "plumber"}},
		passTxManager{},
		nopLogger{},
	)
}

func validRequest() *Request {
	return &Request{
		WorkerID:    "w-1",
		ClientName:  "Anna",
		JobDetails:  "fix the sink",
		BookingDate: "2026-09-10",
		Time:        ptr.Ptr("10:00"),
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	repo := newMemBookingRepo()
	uc := newTestUseCase(repo, defaultProfile())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Len(t, resp.TrackingID, 9)
	require.NotNil(t, resp.Time)
	assert.Equal(t, types.TimeString("10:00"), *resp.Time)
	require.NotNil(t, resp.WorkerName)
	assert.Equal(t, "Ivan", *resp.WorkerName)
	require.NotNil(t, resp.WorkerProfession)
	assert.Equal(t, "plumber", *resp.WorkerProfession)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(newMemBookingRepo(), defaultProfile())

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"missing worker", func(r *Request) { r.WorkerID = " " }, ErrInvalidInput},
		{"missing client", func(r *Request) { r.ClientName = "" }, ErrInvalidInput},
		{"missing details", func(r *Request) { r.JobDetails = "" }, ErrInvalidInput},
		{"missing date", func(r *Request) { r.BookingDate = "" }, ErrInvalidInput},
		{"bad time", func(r *Request) { r.Time = ptr.Ptr("25:99") }, ErrInvalidInput},
		{"bad date", func(r *Request) { r.BookingDate = "10.09.2026" }, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_AcceptsRFC3339Date(t *testing.T) {
	repo := newMemBookingRepo()
	uc := newTestUseCase(repo, defaultProfile())

	req := validRequest()
	req.BookingDate = "2026-09-10T15:04:05Z"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Время суток отброшено, бронирование привязано к календарной дате
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), resp.BookingDate)
}

func TestExecute_WorkerNotFound(t *testing.T) {
	uc := NewUseCase(
		newMemBookingRepo(),
		&stubAvailability{err: availabilitySvc.ErrWorkerNotFound},
		&stubIdentity{err: identity.ErrWorkerNotFound},
		passTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestExecute_BlockedDateVeto(t *testing.T) {
	uc := newTestUseCase(newMemBookingRepo(), defaultProfile())

	req := validRequest()
	req.BookingDate = "2026-09-15"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateBlocked)
}

func TestExecute_OutOfHours(t *testing.T) {
	uc := newTestUseCase(newMemBookingRepo(), defaultProfile())

	for _, slot := range []string{"08:30", "18:00", "09:15"} {
		req := validRequest()
		req.Time = ptr.Ptr(slot)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutOfHours, slot)
	}
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := newMemBookingRepo()
	uc := newTestUseCase(repo, defaultProfile())

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_CancelledBookingDoesNotConflict(t *testing.T) {
	repo := newMemBookingRepo()
	uc := newTestUseCase(repo, defaultProfile())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Отменяем первое бронирование напрямую в хранилище
	repo.mu.Lock()
	for _, b := range repo.bookings {
		if b.ID == resp.ID {
			b.Status = domain.StatusCancelled
		}
	}
	repo.mu.Unlock()

	_, err = uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_DateLevelBookings(t *testing.T) {
	repo := newMemBookingRepo()
	uc := newTestUseCase(repo, defaultProfile())

	// Слотовое бронирование не мешает дневному
	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	dateLevel := validRequest()
	dateLevel.Time = nil
	_, err = uc.Execute(context.Background(), dateLevel)
	require.NoError(t, err)

	// Второе дневное на ту же дату конфликтует
	second := validRequest()
	second.Time = nil
	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_TrackingIDCollisionFallsBackToLongCode(t *testing.T) {
	repo := newMemBookingRepo()

	// Все короткие коды "заняты": ExistsByTrackingID всегда true для 9 символов
	repo.taken = map[string]struct{}{}
	collisionRepo := &collisionBookingRepo{memBookingRepo: repo}

	uc := NewUseCase(
		collisionRepo,
		&stubAvailability{profile: defaultProfile()},
		&stubIdentity{worker: &identity.Worker{Name: "Ivan", Profession: "plumber"}},
		passTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, resp.TrackingID, 12)
}

// collisionBookingRepo считает занятыми все короткие коды
type collisionBookingRepo struct {
	*memBookingRepo
}

func (r *collisionBookingRepo) ExistsByTrackingID(ctx context.Context, trackingID string) (bool, error) {
	if len(trackingID) == 9 {
		return true, nil
	}
	return r.memBookingRepo.ExistsByTrackingID(ctx, trackingID)
}

func TestExecute_IdentityOutageDoesNotBlockAdmission(t *testing.T) {
	uc := NewUseCase(
		newMemBookingRepo(),
		&stubAvailability{profile: defaultProfile()},
		&stubIdentity{err: identity.ErrServiceDegraded},
		passTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Nil(t, resp.WorkerName)
	assert.Nil(t, resp.WorkerProfession)
}

func TestExecuteSafe_CreatesConfirmedBooking(t *testing.T) {
	uc := newTestUseCase(newMemBookingRepo(), defaultProfile())

	resp, err := uc.ExecuteSafe(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecuteSafe_TransactionsUnsupported(t *testing.T) {
	uc := NewUseCase(
		newMemBookingRepo(),
		&stubAvailability{profile: defaultProfile()},
		&stubIdentity{worker: &identity.Worker{Name: "Ivan"}},
		simpletxmanager.NewTransactionManager(),
		nopLogger{},
	)

	_, err := uc.ExecuteSafe(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTransactionsUnsupported)
}

func TestExecute_ConcurrentRequestsOneWinner(t *testing.T) {
	repo := newMemBookingRepo()
	uc := newTestUseCase(repo, defaultProfile())

	const n = 16

	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	// Уникальный индекс хранилища пропускает ровно одного
	var won, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		default:
			require.ErrorIs(t, err, ErrSlotConflict)
			conflicted++
		}
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, n-1, conflicted)
}
