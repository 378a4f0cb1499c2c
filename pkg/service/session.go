//nolint:whitespace //can't make both the linter and editor happy :(
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velosprint/sprintlog-go/pkg/model"
	"github.com/velosprint/sprintlog-go/pkg/processing/compare"
	"github.com/velosprint/sprintlog-go/pkg/processing/timing"
	sessionrepo "github.com/velosprint/sprintlog-go/pkg/repository/session"
)

// CompareMode selects how the comparison table values a checkpoint.
type CompareMode string

const (
	ModeTotal CompareMode = "total"
	ModeSplit CompareMode = "split"
)

var ErrUnknownMode = errors.New("unknown compare mode")

// SessionService is the only place that touches both the store and the pure
// processing core: it loads sessions and derives the ephemeral views.
type SessionService struct {
	pool *pgxpool.Pool
}

func NewSessionService(pool *pgxpool.Pool) *SessionService {
	return &SessionService{pool: pool}
}

func (s *SessionService) List(ctx context.Context) ([]*model.Session, error) {
	return sessionrepo.LoadAll(ctx, s.pool)
}

func (s *SessionService) Get(ctx context.Context, key string) (*model.Session, error) {
	return sessionrepo.LoadByKey(ctx, s.pool, key)
}

func (s *SessionService) Save(ctx context.Context, sess *model.Session) error {
	return sessionrepo.Upsert(ctx, s.pool, sess)
}

func (s *SessionService) Delete(ctx context.Context, key string) (int, error) {
	return sessionrepo.DeleteByKey(ctx, s.pool, key)
}

// Metrics computes the segment rows for one session. With an empty choice the
// session's stored distances are used; otherwise the grid is regenerated for
// the requested granularity.
func (s *SessionService) Metrics(
	ctx context.Context, key string, choice model.SplitChoice,
) ([]model.SegmentRow, error) {
	sess, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	distances := sess.Distances
	if choice != "" {
		distances = timing.BuildSplitDistances(sess.DistanceTotal, choice)
	}
	return timing.BuildMetrics(distances, sess.Marks), nil
}

// Series computes a session's relative-time series: the stored-distance
// series for an empty choice, the regenerated split grid otherwise.
func (s *SessionService) Series(
	ctx context.Context, key string, choice model.SplitChoice,
) ([]model.SeriesPoint, error) {
	sess, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if choice == "" {
		return timing.BuildDistanceSeries(sess), nil
	}
	return timing.BuildSplitSeries(sess, choice), nil
}

// Compare builds the annotated comparison table for the given session keys.
func (s *SessionService) Compare(
	ctx context.Context,
	keys []string,
	mode CompareMode,
	choice model.SplitChoice,
	referenceKey string,
) ([]model.TableRow, error) {
	sessions, err := s.loadSessions(ctx, keys)
	if err != nil {
		return nil, err
	}
	var rows []model.TableRow
	switch mode {
	case ModeTotal:
		rows = compare.BuildTotalTimeRows(sessions)
	case ModeSplit:
		rows = compare.BuildSplitTimeRows(sessions, choice)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
	return compare.AnnotateDiffs(rows, referenceKey), nil
}

// CompareChart aligns the sessions' distance series onto the union of
// distances for chart display.
func (s *SessionService) CompareChart(
	ctx context.Context, keys []string,
) ([]model.ChartRow, error) {
	sessions, err := s.loadSessions(ctx, keys)
	if err != nil {
		return nil, err
	}
	return compare.BuildChartRows(sessions), nil
}

func (s *SessionService) loadSessions(
	ctx context.Context, keys []string,
) ([]*model.Session, error) {
	ret := make([]*model.Session, 0, len(keys))
	for _, key := range keys {
		sess, err := sessionrepo.LoadByKey(ctx, s.pool, key)
		if err != nil {
			return nil, fmt.Errorf("loading session %s: %w", key, err)
		}
		ret = append(ret, sess)
	}
	return ret, nil
}
