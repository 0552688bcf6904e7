package assign

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"bingpaper/internal/display"
	"bingpaper/internal/faults"
	"bingpaper/internal/feed"
	"bingpaper/internal/logging"
	"bingpaper/internal/picstore"
)

// Lister enumerates the cached pictures.
type Lister interface {
	List() ([]picstore.Picture, error)
}

// Result describes a completed assignment.
type Result struct {
	Picture     picstore.Picture
	Output      display.Output
	ScreenIndex int
}

// Service ties the picture inventory to monitor outputs.
type Service struct {
	feed    feed.Fetcher
	store   Lister
	backend display.Backend
	pick    func(n int) int
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithPicker overrides the uniform random choice used by ApplyRandom. pick
// must return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(s *Service) {
		if pick != nil {
			s.pick = pick
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService constructs the assignment policy.
func NewService(fetcher feed.Fetcher, store Lister, backend display.Backend, opts ...Option) *Service {
	s := &Service{
		feed:    fetcher,
		store:   store,
		backend: backend,
		pick:    rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.NewComponentLogger(s.logger, "assign")
	return s
}

// ApplyNewest downloads (or reuses) the picture for dayIndex and assigns it.
func (s *Service) ApplyNewest(ctx context.Context, dayIndex, screenIndex int) (Result, error) {
	return s.applyFeed(ctx, dayIndex, false, screenIndex)
}

// ApplyNewestGlobal is ApplyNewest against the international feed region.
func (s *Service) ApplyNewestGlobal(ctx context.Context, dayIndex, screenIndex int) (Result, error) {
	return s.applyFeed(ctx, dayIndex, true, screenIndex)
}

func (s *Service) applyFeed(ctx context.Context, dayIndex int, global bool, screenIndex int) (Result, error) {
	picture, err := s.feed.Fetch(ctx, dayIndex, global)
	if err != nil {
		return Result{}, err
	}
	return s.Assign(ctx, picture, screenIndex)
}

// ApplyBySelection assigns the picture at the 1-based ordinal of the current
// listing.
func (s *Service) ApplyBySelection(ctx context.Context, ordinal, screenIndex int) (Result, error) {
	pictures, err := s.store.List()
	if err != nil {
		return Result{}, err
	}
	if ordinal < 1 || ordinal > len(pictures) {
		return Result{}, faults.Wrap(faults.ErrSelectionOutOfRange, "assign", "select picture",
			fmt.Sprintf("picture %d not in 1..%d", ordinal, len(pictures)), nil)
	}
	return s.Assign(ctx, pictures[ordinal-1], screenIndex)
}

// ApplyRandom assigns a uniformly chosen cached picture.
func (s *Service) ApplyRandom(ctx context.Context, screenIndex int) (Result, error) {
	pictures, err := s.store.List()
	if err != nil {
		return Result{}, err
	}
	if len(pictures) == 0 {
		return Result{}, faults.Wrap(faults.ErrNoPicturesAvailable, "assign", "random picture", "picture directory is empty", nil)
	}
	idx := s.pick(len(pictures))
	if idx < 0 || idx >= len(pictures) {
		return Result{}, fmt.Errorf("assign: picker returned %d for %d pictures", idx, len(pictures))
	}
	return s.Assign(ctx, pictures[idx], screenIndex)
}

// Assign sets picture on the output at screenIndex. The backend is not
// touched when the index does not address an output.
func (s *Service) Assign(ctx context.Context, picture picstore.Picture, screenIndex int) (Result, error) {
	output, err := s.output(ctx, screenIndex)
	if err != nil {
		return Result{}, err
	}

	ok, err := s.backend.Set(ctx, output, picture.Path)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{}, faults.Wrap(faults.ErrAssignFailed, "assign", s.backend.Name(),
			fmt.Sprintf("screen %d rejected %s", screenIndex, picture.Name), nil)
	}

	s.logger.Info("wallpaper assigned",
		logging.String(logging.FieldEventType, "wallpaper_assigned"),
		logging.Int("screen", screenIndex),
		logging.String("output", string(output)),
		logging.String("picture", picture.Path))
	return Result{Picture: picture, Output: output, ScreenIndex: screenIndex}, nil
}

// Outputs lists the addressable outputs in index order.
func (s *Service) Outputs(ctx context.Context) ([]display.Output, error) {
	return s.backend.Outputs(ctx)
}

// Current returns the wallpaper path configured for screenIndex.
func (s *Service) Current(ctx context.Context, screenIndex int) (string, error) {
	output, err := s.output(ctx, screenIndex)
	if err != nil {
		return "", err
	}
	return s.backend.Current(ctx, output)
}

func (s *Service) output(ctx context.Context, screenIndex int) (display.Output, error) {
	outputs, err := s.backend.Outputs(ctx)
	if err != nil {
		return "", err
	}
	if screenIndex < 0 || screenIndex >= len(outputs) {
		return "", faults.Wrap(faults.ErrSelectionOutOfRange, "assign", "select screen",
			fmt.Sprintf("screen %d not in 0..%d", screenIndex, len(outputs)-1), nil)
	}
	return outputs[screenIndex], nil
}
