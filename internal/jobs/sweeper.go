package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"TRIPPLANNER_BACK-END/internal/logger"
	"TRIPPLANNER_BACK-END/internal/models"
	"TRIPPLANNER_BACK-END/internal/resolver"
)

const (
	DefaultSpec        = "@every 10m"
	DefaultMaxAttempts = 5
)

// DeferredHotels lists hotels stored with a search descriptor only.
// ListDeferredHotels returns the least recently swept first and skips
// hotels that have failed maxAttempts times.
type DeferredHotels interface {
	ListDeferredHotels(ctx context.Context, limit, maxAttempts int) ([]models.HotelEntry, error)
	RecordSweepFailure(ctx context.Context, id int64) (attempts int, err error)
}

// Committer resolves and persists one draft
type Committer interface {
	ResolveAndCommit(ctx context.Context, tripID uuid.UUID, kind models.EventKind, d resolver.Draft) (models.Event, *resolver.Operation, error)
}

// Sweeper periodically resolves deferred hotel entries
type Sweeper struct {
	source      DeferredHotels
	committer   Committer
	batch       int
	maxAttempts int
	timeout     time.Duration
}

// NewSweeper creates a Sweeper that handles up to batch hotels per run,
// each under its own timeout. A hotel is retried until it has failed
// maxAttempts times.
func NewSweeper(source DeferredHotels, committer Committer, batch, maxAttempts int, timeout time.Duration) *Sweeper {
	if batch <= 0 {
		batch = 20
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Sweeper{source: source, committer: committer, batch: batch, maxAttempts: maxAttempts, timeout: timeout}
}

// Result counts the outcome of one run
type Result struct {
	Resolved int
	Failed   int
	GivenUp  int
}

// Run resolves one batch. A failing hotel is recorded as swept so the next
// run starts with hotels that have waited longest.
func (s *Sweeper) Run(ctx context.Context) (Result, error) {
	var res Result
	hotels, err := s.source.ListDeferredHotels(ctx, s.batch, s.maxAttempts)
	if err != nil {
		return res, err
	}

	for _, h := range hotels {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		hctx, cancel := context.WithTimeout(ctx, s.timeout)
		ev, op, err := s.committer.ResolveAndCommit(hctx, h.TripID, models.KindHotel, resolver.DraftFromHotel(h))
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			res.Failed++
			s.recordFailure(ctx, h, op, err, &res)
			continue
		}
		res.Resolved++
		log.Info().
			Str("trip_id", h.TripID.String()).
			Int64("hotel_entry_id", ev.EntryID()).
			Str("amadeus_hotel_id", deref(ev.Hotel.AmadeusHotelID)).
			Msg("deferred hotel resolved")
	}
	return res, nil
}

func (s *Sweeper) recordFailure(ctx context.Context, h models.HotelEntry, op *resolver.Operation, cause error, res *Result) {
	state := resolver.StateFailed
	if op != nil {
		state = op.State
	}
	attempts, err := s.source.RecordSweepFailure(ctx, h.ID)
	if err != nil {
		log.Error().Err(err).Int64("hotel_entry_id", h.ID).Msg("failed to record sweep attempt")
		return
	}
	evt := log.Warn()
	if attempts >= s.maxAttempts {
		res.GivenUp++
		evt = log.Error()
	}
	evt.Err(cause).
		Str("trip_id", h.TripID.String()).
		Int64("hotel_entry_id", h.ID).
		Str("state", string(state)).
		Int("attempts", attempts).
		Int("max_attempts", s.maxAttempts).
		Msg("deferred hotel not resolved")
}

// Schedule registers the sweeper on a new cron scheduler. The caller starts
// and stops it.
func (s *Sweeper) Schedule(spec string) (*cron.Cron, error) {
	if spec == "" {
		spec = DefaultSpec
	}
	l := logger.CronLogger{}
	c := cron.New(
		cron.WithLogger(l),
		cron.WithChain(cron.Recover(l), cron.SkipIfStillRunning(l)),
	)
	_, err := c.AddFunc(spec, func() {
		res, err := s.Run(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("deferred hotel sweep failed")
			return
		}
		if res.Resolved+res.Failed > 0 {
			log.Info().Int("resolved", res.Resolved).Int("failed", res.Failed).Int("given_up", res.GivenUp).
				Msg("deferred hotel sweep finished")
		}
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
