//nolint:dupl,funlen,errcheck //ok for this test code
package session

import (
	"context"
	"log"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"
	"gotest.tools/v3/assert"

	"github.com/velosprint/sprintlog-go/pkg/model"
	"github.com/velosprint/sprintlog-go/testsupport/testdb"
)

func initTestDb() *pgxpool.Pool {
	return testdb.InitTestDb()
}

func sampleSession(key string) *model.Session {
	return &model.Session{
		Video:         "sprint-0412.mp4",
		VideoKey:      key,
		Athlete:       "Rider One",
		DistanceTotal: 250,
		SplitChoice:   model.SplitQuarter,
		Distances:     []float64{62.5, 125, 187.5, 250},
		Marks: model.Marks{
			model.MarkStart:    lo.ToPtr(5.0),
			model.MarkReaction: lo.ToPtr(5.4),
			"62.5":             lo.ToPtr(8.0),
			"125":              nil,
		},
	}
}

func createSampleEntry(db *pgxpool.Pool, key string) *model.Session {
	sess := sampleSession(key)
	err := pgx.BeginFunc(context.Background(), db, func(tx pgx.Tx) error {
		return Create(context.Background(), tx.Conn(), sess)
	})
	if err != nil {
		log.Fatalf("createSampleEntry: %v\n", err)
	}
	return sess
}

func TestCreate(t *testing.T) {
	pool := initTestDb()
	if err := Create(context.Background(), pool, sampleSession("key1")); err != nil {
		t.Errorf("Create() error = %v", err)
	}
	// duplicate video key must be rejected
	if err := Create(context.Background(), pool, sampleSession("key1")); err == nil {
		t.Errorf("Create() expected unique violation on duplicate video key")
	}
}

func TestLoadByKey(t *testing.T) {
	pool := initTestDb()
	want := createSampleEntry(pool, "key1")

	got, err := LoadByKey(context.Background(), pool, "key1")
	if err != nil {
		t.Fatalf("LoadByKey() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadByKey() mismatch: %s", diff)
	}
	// explicit null marks survive the round trip
	if v, present := got.Marks["125"]; !present || v != nil {
		t.Errorf("null mark lost in round trip: %v", got.Marks)
	}

	if _, err := LoadByKey(context.Background(), pool, "unknown"); err == nil {
		t.Errorf("LoadByKey() expected error for unknown key")
	}
}

func TestLoadAll(t *testing.T) {
	pool := initTestDb()
	createSampleEntry(pool, "key1")
	createSampleEntry(pool, "key2")

	got, err := LoadAll(context.Background(), pool)
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("LoadAll() = %d sessions, want 2", len(got))
	}
}

func TestUpsert(t *testing.T) {
	pool := initTestDb()
	createSampleEntry(pool, "key1")

	changed := sampleSession("key1")
	changed.Marks["125"] = lo.ToPtr(11.5)
	if err := Upsert(context.Background(), pool, changed); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := LoadByKey(context.Background(), pool, "key1")
	if err != nil {
		t.Fatalf("LoadByKey() error = %v", err)
	}
	if diff := cmp.Diff(changed, got); diff != "" {
		t.Errorf("Upsert() mismatch: %s", diff)
	}
}

func TestUpdate(t *testing.T) {
	pool := initTestDb()
	sess := createSampleEntry(pool, "key1")

	sess.Athlete = "Rider Two"
	num, err := Update(context.Background(), pool, sess)
	assert.NilError(t, err)
	assert.Equal(t, 1, num)
}

func TestDeleteByKey(t *testing.T) {
	pool := initTestDb()
	createSampleEntry(pool, "key1")

	num, err := DeleteByKey(context.Background(), pool, "key1")
	assert.NilError(t, err)
	assert.Equal(t, 1, num)

	num, err = DeleteByKey(context.Background(), pool, "key1")
	assert.NilError(t, err)
	assert.Equal(t, 0, num)
}
