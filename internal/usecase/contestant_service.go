package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/contestants/internal/domain/contestant"
	idgen "github.com/riskibarqy/contestants/internal/platform/id"
	"github.com/riskibarqy/contestants/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const contestantResource = "contestant"

type CreateContestantInput struct {
	Name        string
	Nickname    string
	CountryCode string
	AvatarURL   string
}

type ContestantService struct {
	repo   contestant.Repository
	idGen  idgen.Generator
	logger *logging.Logger
	now    func() time.Time
}

func NewContestantService(repo contestant.Repository, idGen idgen.Generator, logger *logging.Logger) *ContestantService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ContestantService{
		repo:   repo,
		idGen:  idGen,
		logger: logger,
		now:    time.Now,
	}
}

func (s *ContestantService) Create(ctx context.Context, input CreateContestantInput) (contestant.Contestant, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestantService.Create")
	defer span.End()

	contestantID, err := s.idGen.NewID()
	if err != nil {
		return contestant.Contestant{}, fmt.Errorf("generate contestant id: %w", err)
	}

	now := s.now().UTC()
	item := contestant.Contestant{
		ID:          contestantID,
		Name:        strings.TrimSpace(input.Name),
		Nickname:    strings.TrimSpace(input.Nickname),
		CountryCode: strings.TrimSpace(input.CountryCode),
		AvatarURL:   strings.TrimSpace(input.AvatarURL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := item.Validate(); err != nil {
		return contestant.Contestant{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.repo.Create(ctx, item)
	if err != nil {
		return contestant.Contestant{}, fmt.Errorf("create contestant: %w", err)
	}
	span.SetAttributes(attribute.String("contestant.id", saved.ID))

	s.logger.InfoContext(ctx, "contestant created", "contestant_id", saved.ID)
	return saved, nil
}

// List returns every contestant, newest first.
func (s *ContestantService) List(ctx context.Context) ([]contestant.Contestant, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestantService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contestants: %w", err)
	}
	if items == nil {
		items = []contestant.Contestant{}
	}

	return items, nil
}

func (s *ContestantService) Get(ctx context.Context, contestantID string) (contestant.Contestant, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestantService.Get")
	defer span.End()

	return s.get(ctx, contestantID)
}

// Update merges the supplied patch fields onto the stored record.
func (s *ContestantService) Update(ctx context.Context, contestantID string, patch contestant.Patch) (contestant.Contestant, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestantService.Update")
	defer span.End()

	current, err := s.get(ctx, contestantID)
	if err != nil {
		return contestant.Contestant{}, err
	}

	merged := patch.Apply(current)
	merged.Name = strings.TrimSpace(merged.Name)
	merged.Nickname = strings.TrimSpace(merged.Nickname)
	merged.CountryCode = strings.TrimSpace(merged.CountryCode)
	merged.AvatarURL = strings.TrimSpace(merged.AvatarURL)
	if err := merged.Validate(); err != nil {
		return contestant.Contestant{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if patch.IsEmpty() {
		return current, nil
	}
	merged.UpdatedAt = s.now().UTC()

	saved, exists, err := s.repo.Update(ctx, merged)
	if err != nil {
		return contestant.Contestant{}, fmt.Errorf("update contestant: %w", err)
	}
	if !exists {
		return contestant.Contestant{}, notFound(contestantResource, current.ID)
	}

	return saved, nil
}

func (s *ContestantService) Delete(ctx context.Context, contestantID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestantService.Delete")
	defer span.End()

	contestantID = strings.TrimSpace(contestantID)
	if contestantID == "" {
		return notFound(contestantResource, contestantID)
	}

	affected, err := s.repo.Delete(ctx, contestantID)
	if err != nil {
		return fmt.Errorf("delete contestant: %w", err)
	}
	if affected == 0 {
		return notFound(contestantResource, contestantID)
	}

	s.logger.InfoContext(ctx, "contestant deleted", "contestant_id", contestantID)
	return nil
}

func (s *ContestantService) IncrementWins(ctx context.Context, contestantID string) (contestant.Contestant, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestantService.IncrementWins")
	defer span.End()

	return s.increment(ctx, contestantID, contestant.CounterWins)
}

func (s *ContestantService) IncrementLosses(ctx context.Context, contestantID string) (contestant.Contestant, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestantService.IncrementLosses")
	defer span.End()

	return s.increment(ctx, contestantID, contestant.CounterLosses)
}

func (s *ContestantService) increment(ctx context.Context, contestantID string, counter contestant.Counter) (contestant.Contestant, error) {
	contestantID = strings.TrimSpace(contestantID)
	if contestantID == "" {
		return contestant.Contestant{}, notFound(contestantResource, contestantID)
	}

	item, exists, err := s.repo.Increment(ctx, contestantID, counter)
	if err != nil {
		return contestant.Contestant{}, fmt.Errorf("increment contestant %s: %w", counter, err)
	}
	if !exists {
		return contestant.Contestant{}, notFound(contestantResource, contestantID)
	}

	return item, nil
}

func (s *ContestantService) get(ctx context.Context, contestantID string) (contestant.Contestant, error) {
	contestantID = strings.TrimSpace(contestantID)
	if contestantID == "" {
		return contestant.Contestant{}, notFound(contestantResource, contestantID)
	}

	item, exists, err := s.repo.GetByID(ctx, contestantID)
	if err != nil {
		return contestant.Contestant{}, fmt.Errorf("get contestant by id: %w", err)
	}
	if !exists {
		return contestant.Contestant{}, notFound(contestantResource, contestantID)
	}

	return item, nil
}
