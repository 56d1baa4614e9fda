package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/sevadoor/booking-service/internal/domain"
	"github.com/sevadoor/booking-service/internal/integrations/identity"
	workerRepo "github.com/sevadoor/booking-service/internal/infra/storage/worker"
	"github.com/sevadoor/booking-service/internal/service/availability/models"
	"github.com/sevadoor/booking-service/pkg/types"
)

// Service сервис профилей доступности работников
type Service struct {
	workerRepo     WorkerRepository
	identityClient IdentityClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	workerRepo WorkerRepository,
	identityClient IdentityClient,
	logger Logger,
) *Service {
	return &Service{
		workerRepo:     workerRepo,
		identityClient: identityClient,
		logger:         logger,
	}
}

// GetAvailability получает профиль доступности работника
// При отсутствии профиля выполняет ленивый провижининг: если работник
// известен IdentityService, создается профиль с дефолтными рабочими часами
func (s *Service) GetAvailability(ctx context.Context, workerID string) (*models.AvailabilityResponse, error) {
	s.logger.Info("GetAvailability: fetching profile for worker=%s", workerID)

	profile, err := s.getOrProvision(ctx, workerID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainProfile(profile), nil
}

// GetProfile получает domain профиль (с ленивым провижинингом)
// Используется юзкейсами, которым нужна domain модель, а не DTO
func (s *Service) GetProfile(ctx context.Context, workerID string) (*domain.AvailabilityProfile, error) {
	return s.getOrProvision(ctx, workerID)
}

// UpdateBlockedDates изменяет список заблокированных дат работника
// Действие add - объединение множеств, remove - разность, replace - перезапись
func (s *Service) UpdateBlockedDates(ctx context.Context, workerID string, req *models.UpdateBlockedDatesRequest) (*models.BlockedDatesResponse, error) {
	s.logger.Info("UpdateBlockedDates: worker=%s action=%s dates=%d", workerID, req.Action, len(req.Dates))

	dates, err := models.ToDomainDates(req.Dates)
	if err != nil {
		s.logger.Warn("UpdateBlockedDates: invalid dates for worker=%s: %v", workerID, err)
		return nil, ErrInvalidDate
	}

	// Профиль должен существовать до атомарного обновления массива
	if _, err := s.getOrProvision(ctx, workerID); err != nil {
		return nil, err
	}

	var result []types.DateString
	switch req.Action {
	case models.ActionAdd:
		result, err = s.workerRepo.AddBlockedDates(ctx, workerID, dates)
	case models.ActionRemove:
		result, err = s.workerRepo.RemoveBlockedDates(ctx, workerID, dates)
	case models.ActionReplace:
		result, err = s.workerRepo.ReplaceBlockedDates(ctx, workerID, dates)
	default:
		s.logger.Warn("UpdateBlockedDates: unknown action=%s for worker=%s", req.Action, workerID)
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}

	if err != nil {
		if errors.Is(err, workerRepo.ErrProfileNotFound) {
			return nil, ErrWorkerNotFound
		}
		s.logger.Error("UpdateBlockedDates: repository error for worker=%s: %v", workerID, err)
		return nil, fmt.Errorf("%w: UpdateBlockedDates - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBlockedDates: worker=%s now has %d blocked dates", workerID, len(result))
	return models.FromDomainBlockedDates(workerID, result), nil
}

// SetWorkingHours заменяет конфигурацию рабочих часов работника
// Некорректная конфигурация отклоняется, прежняя остается нетронутой
func (s *Service) SetWorkingHours(ctx context.Context, workerID string, req *models.UpdateWorkingHoursRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("SetWorkingHours: worker=%s start=%s end=%s duration=%d",
		workerID, req.Start, req.End, req.SlotDuration)

	hours := req.ToDomainWorkingHours()
	if !hours.Valid() {
		s.logger.Warn("SetWorkingHours: invalid configuration for worker=%s", workerID)
		return nil, ErrInvalidWorkingHours
	}

	if _, err := s.getOrProvision(ctx, workerID); err != nil {
		return nil, err
	}

	if err := s.workerRepo.SetWorkingHours(ctx, workerID, hours); err != nil {
		if errors.Is(err, workerRepo.ErrProfileNotFound) {
			return nil, ErrWorkerNotFound
		}
		s.logger.Error("SetWorkingHours: repository error for worker=%s: %v", workerID, err)
		return nil, fmt.Errorf("%w: SetWorkingHours - repository error: %v", ErrInternal, err)
	}

	profile, err := s.workerRepo.GetByWorkerID(ctx, workerID)
	if err != nil {
		s.logger.Error("SetWorkingHours: failed to reload profile for worker=%s: %v", workerID, err)
		return nil, fmt.Errorf("%w: SetWorkingHours - reload profile: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(profile), nil
}

// getOrProvision возвращает профиль, при отсутствии провижинит дефолтный
// Работник, неизвестный IdentityService, профиля не получает
func (s *Service) getOrProvision(ctx context.Context, workerID string) (*domain.AvailabilityProfile, error) {
	profile, err := s.workerRepo.GetByWorkerID(ctx, workerID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, workerRepo.ErrProfileNotFound) {
		s.logger.Error("getOrProvision: repository error for worker=%s: %v", workerID, err)
		return nil, fmt.Errorf("%w: getOrProvision - repository error: %v", ErrInternal, err)
	}

	// Профиля нет - проверяем, что работник вообще существует
	// При недоступности IdentityService профиль все равно создаем:
	// деградация идентификации не должна блокировать расписание
	if _, err := s.identityClient.GetWorkerWithGracefulDegradation(ctx, workerID); err != nil {
		if errors.Is(err, identity.ErrWorkerNotFound) {
			s.logger.Warn("getOrProvision: worker=%s unknown to identity service", workerID)
			return nil, ErrWorkerNotFound
		}
		s.logger.Warn("getOrProvision: identity degraded for worker=%s, provisioning anyway", workerID)
	}

	profile = &domain.AvailabilityProfile{
		WorkerID:     workerID,
		BlockedDates: []types.DateString{},
		WorkingHours: domain.DefaultWorkingHours(),
	}

	if err := s.workerRepo.Create(ctx, profile); err != nil {
		// Конкурентный провижининг того же работника - читаем чужой профиль
		if errors.Is(err, workerRepo.ErrProfileExists) {
			return s.workerRepo.GetByWorkerID(ctx, workerID)
		}
		s.logger.Error("getOrProvision: failed to create profile for worker=%s: %v", workerID, err)
		return nil, fmt.Errorf("%w: getOrProvision - create profile: %v", ErrInternal, err)
	}

	s.logger.Info("getOrProvision: provisioned default profile for worker=%s", workerID)
	return profile, nil
}
