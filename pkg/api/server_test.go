package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velosprint/sprintlog-go/pkg/model"
	"github.com/velosprint/sprintlog-go/pkg/processing/compare"
	"github.com/velosprint/sprintlog-go/pkg/processing/timing"
	"github.com/velosprint/sprintlog-go/pkg/service"
)

// stubAPI serves canned sessions and computes views through the processing
// core, bypassing the database
type stubAPI struct {
	sessions map[string]*model.Session
	saved    []*model.Session
}

func (s *stubAPI) List(ctx context.Context) ([]*model.Session, error) {
	ret := make([]*model.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		ret = append(ret, sess)
	}
	return ret, nil
}

func (s *stubAPI) Get(ctx context.Context, key string) (*model.Session, error) {
	if sess, ok := s.sessions[key]; ok {
		return sess, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubAPI) Save(ctx context.Context, sess *model.Session) error {
	s.saved = append(s.saved, sess)
	return nil
}

func (s *stubAPI) Delete(ctx context.Context, key string) (int, error) {
	if _, ok := s.sessions[key]; ok {
		delete(s.sessions, key)
		return 1, nil
	}
	return 0, nil
}

func (s *stubAPI) Metrics(ctx context.Context, key string, choice model.SplitChoice) (
	[]model.SegmentRow, error,
) {
	sess, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return timing.BuildMetrics(sess.Distances, sess.Marks), nil
}

func (s *stubAPI) Series(ctx context.Context, key string, choice model.SplitChoice) (
	[]model.SeriesPoint, error,
) {
	sess, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return timing.BuildDistanceSeries(sess), nil
}

func (s *stubAPI) Compare(ctx context.Context, keys []string, mode service.CompareMode,
	choice model.SplitChoice, referenceKey string,
) ([]model.TableRow, error) {
	sessions := make([]*model.Session, 0, len(keys))
	for _, key := range keys {
		sess, err := s.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return compare.AnnotateDiffs(
		compare.BuildTotalTimeRows(sessions), referenceKey), nil
}

func (s *stubAPI) CompareChart(ctx context.Context, keys []string) (
	[]model.ChartRow, error,
) {
	return []model.ChartRow{}, nil
}

func testServer() (*httptest.Server, *stubAPI) {
	stub := &stubAPI{sessions: map[string]*model.Session{
		"abc": {
			Video:         "sprint.mp4",
			VideoKey:      "abc",
			DistanceTotal: 250,
			SplitChoice:   model.SplitQuarter,
			Distances:     []float64{62.5, 125},
			Marks: model.Marks{
				model.MarkStart: lo.ToPtr(5.0),
				"62.5":          lo.ToPtr(8.0),
				"125":           lo.ToPtr(11.5),
			},
		},
		"def": {
			Video:         "sprint2.mp4",
			VideoKey:      "def",
			DistanceTotal: 250,
			SplitChoice:   model.SplitQuarter,
			Distances:     []float64{62.5, 125},
			Marks: model.Marks{
				model.MarkStart: lo.ToPtr(6.0),
				"62.5":          lo.ToPtr(9.5),
			},
		},
	}}
	return httptest.NewServer(NewServer(stub).Mux()), stub
}

func TestGetSession(t *testing.T) {
	srv, _ := testServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/sessions/abc")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var sess model.Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sess))
	assert.Equal(t, "abc", sess.VideoKey)
	assert.Len(t, sess.Distances, 2)
}

func TestGetSessionNotFound(t *testing.T) {
	srv, _ := testServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/sessions/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPutSession(t *testing.T) {
	srv, stub := testServer()
	defer srv.Close()

	body := `{"video":"new.mp4","distanceTotalMeters":250,"splitChoice":"half",
		"distances":[125,250],"marksAbsolute":{"Start time":1.0,"125":7.5}}`
	req, err := http.NewRequest(http.MethodPut,
		srv.URL+"/api/sessions/newkey", strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	require.Len(t, stub.saved, 1)
	assert.Equal(t, "newkey", stub.saved[0].VideoKey)
}

func TestPutSessionKeyMismatch(t *testing.T) {
	srv, _ := testServer()
	defer srv.Close()

	req, err := http.NewRequest(http.MethodPut,
		srv.URL+"/api/sessions/other", strings.NewReader(`{"videoKey":"abc"}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSessionMetrics(t *testing.T) {
	srv, _ := testServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/sessions/abc/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []model.SegmentRow
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 2)
	assert.InDelta(t, 75.0, rows[0].VelocityKmh, 1e-9)
}

func TestSessionMetricsInvalidSplit(t *testing.T) {
	srv, _ := testServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/sessions/abc/metrics?split=eighth")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCompareSessions(t *testing.T) {
	srv, _ := testServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/compare?keys=abc,def&ref=abc")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []model.TableRow
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.NotEmpty(t, rows)
	assert.Equal(t, "Start", rows[0].Label)
	// reference session's own delta stays null
	assert.Nil(t, rows[0].Deltas["abc"])
}

func TestCompareSessionsMissingKeys(t *testing.T) {
	srv, _ := testServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/compare")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCompareSplitRequiresGranularity(t *testing.T) {
	srv, _ := testServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/compare?keys=abc,def&mode=split")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteSession(t *testing.T) {
	srv, _ := testServer()
	defer srv.Close()

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/sessions/abc", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
