package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tidepool-org/dieticians/deletions"
	"github.com/tidepool-org/dieticians/dieticians"
	"github.com/tidepool-org/dieticians/outbox"
	"github.com/tidepool-org/dieticians/patients"
)

type service struct {
	logger *zap.SugaredLogger

	dieticiansRepo dieticians.Repository
	patientsRepo   patients.Repository
	outboxRepo     outbox.Repository
	validator      dieticians.Validator
}

var _ dieticians.Service = &service{}

func NewService(repo dieticians.Repository, patientsRepo patients.Repository, outboxRepo outbox.Repository, validator dieticians.Validator, logger *zap.SugaredLogger) (dieticians.Service, error) {
	return &service{
		logger:         logger,
		dieticiansRepo: repo,
		patientsRepo:   patientsRepo,
		outboxRepo:     outboxRepo,
		validator:      validator,
	}, nil
}

func (s *service) List(ctx context.Context) ([]*dieticians.Dietician, error) {
	return s.dieticiansRepo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*dieticians.Dietician, error) {
	return s.dieticiansRepo.Get(ctx, id)
}

// Create assigns a new id and a generated password to the dietician and stores it.
// Any id or password supplied by the caller is discarded.
func (s *service) Create(ctx context.Context, dietician *dieticians.Dietician) (*dieticians.Dietician, error) {
	inUse, err := s.dieticiansRepo.IsEmailInUse(ctx, dietician.Email)
	if err != nil {
		return nil, err
	}
	if inUse {
		s.logger.Debugw("unable to create dietician, email is already in use")
		return nil, dieticians.ErrEmailInUse
	}

	created := *dietician
	created.Id = uuid.NewString()
	created.Password = NewPassword()

	s.logger.Infow("creating dietician", "dieticianId", created.Id)
	if err := s.dieticiansRepo.Save(ctx, &created); err != nil {
		return nil, err
	}

	// The dietician is stored at this point, enqueue failures are only logged
	if err := s.enqueueWelcomeEmail(ctx, &created); err != nil {
		s.logger.Errorw("unable to enqueue welcome email", "dieticianId", created.Id, zap.Error(err))
	}

	return &created, nil
}

func (s *service) enqueueWelcomeEmail(ctx context.Context, dietician *dieticians.Dietician) error {
	event, err := outbox.NewSendDieticianWelcomeEmailEvent(outbox.SendDieticianWelcomeEmailPayload{
		DieticianId:    dietician.Id,
		DieticianEmail: dietician.Email,
		DieticianName:  strings.TrimSpace(dietician.FirstName + " " + dietician.LastName),
	})
	if err != nil {
		return err
	}

	return s.outboxRepo.Create(ctx, event)
}

func (s *service) Update(ctx context.Context, current *dieticians.Dietician, patch dieticians.Patch) (*dieticians.Dietician, error) {
	if ignored := patch.IgnoredKeys(); len(ignored) > 0 {
		s.logger.Debugw("ignoring attributes which cannot be patched", "dieticianId", current.Id, "keys", ignored)
	}

	updated, err := dieticians.ApplyPatch(current, patch)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Validate(updated); err != nil {
		return nil, err
	}

	s.logger.Infow("updating dietician", "dieticianId", updated.Id)
	if err := s.dieticiansRepo.Save(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, current *dieticians.Dietician, metadata deletions.Metadata) error {
	list, err := s.patientsRepo.ListByDieticianId(ctx, current.Id)
	if err != nil {
		return err
	}
	if len(list) > 0 {
		s.logger.Infow("dietician cannot be deleted while patients are assigned", "dieticianId", current.Id, "patients", len(list))
		return dieticians.ErrHasPatients
	}

	s.logger.Infow("deleting dietician", "dieticianId", current.Id)
	return s.dieticiansRepo.Delete(ctx, current.Id, metadata)
}

// NewPassword returns a random 32 character hex string
func NewPassword() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
