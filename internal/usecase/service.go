package usecase

import (
	"context"
	"errors"
	"fmt"

	"svw.info/sudokusolver/internal/domain"
	"svw.info/sudokusolver/internal/grid"
	"svw.info/sudokusolver/internal/ports"
)

// Service is the facade over the solving, generating, validating, hinting,
// and persistence ports. Any nil dependency reports errNotConfigured rather
// than panicking.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Solve checks the givens for duplicates first when a validator is wired, so
// an inconsistent board is rejected as a contradiction without a search.
func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	if u.Validator != nil {
		ok, conflicts, err := u.Validator.Validate(ctx, b)
		if err != nil {
			return nil, ports.Stats{}, err
		}
		if !ok {
			return nil, ports.Stats{}, fmt.Errorf("%w: conflicting givens at %v", grid.ErrContradiction, conflicts)
		}
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Unique(ctx, b)
}

// Generate stamps the puzzle with a seed-derived ID so the result can be
// handed straight to Save.
func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	p, st, err := u.Generator.Generate(ctx, seed, d)
	if err != nil {
		return nil, st, err
	}
	if p.ID == "" {
		p.ID = fmt.Sprintf("%s-%d", d, seed)
	}
	return p, st, nil
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b, max)
}

// Persistence

func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
