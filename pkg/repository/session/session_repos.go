//nolint:whitespace //can't make both the linter and editor happy :(
package session

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/velosprint/sprintlog-go/pkg/model"
	"github.com/velosprint/sprintlog-go/pkg/repository"
)

// Sessions are stored as a JSONB payload keyed by the content-derived
// video_key; the annotation frontend owns the payload shape.

func Create(ctx context.Context, conn repository.Querier, sess *model.Session) error {
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}
	_, err = conn.Exec(ctx,
		"insert into session (id, video_key, data) values ($1,$2,$3)",
		id, sess.VideoKey, sess)
	if err != nil {
		return err
	}
	return nil
}

// Upsert replaces the stored payload for the session's video key,
// last-write-wins.
func Upsert(ctx context.Context, conn repository.Querier, sess *model.Session) error {
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}
	_, err = conn.Exec(ctx,
		`insert into session (id, video_key, data) values ($1,$2,$3)
		 on conflict (video_key) do update set data=excluded.data`,
		id, sess.VideoKey, sess)
	if err != nil {
		return err
	}
	return nil
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByKey(
	ctx context.Context,
	conn repository.Querier,
	videoKey string,
) (int, error) {
	cmdTag, err := conn.Exec(ctx, "delete from session where video_key=$1", videoKey)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

func LoadByKey(
	ctx context.Context,
	conn repository.Querier,
	videoKey string,
) (*model.Session, error) {
	row := conn.QueryRow(ctx,
		fmt.Sprintf("%s where video_key=$1", selector), videoKey)
	var item model.Session
	if err := scan(&item, row); err != nil {
		return nil, err
	}
	return &item, nil
}

func LoadAll(
	ctx context.Context,
	conn repository.Querier,
) ([]*model.Session, error) {
	rows, err := conn.Query(ctx,
		fmt.Sprintf("%s order by video_key", selector))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.Session, 0)
	for rows.Next() {
		var item model.Session
		if err := scan(&item, rows); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}

func Update(
	ctx context.Context,
	conn repository.Querier,
	sess *model.Session,
) (int, error) {
	cmdTag, err := conn.Exec(ctx,
		"update session set data=$1 where video_key=$2", sess, sess.VideoKey)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

// little helper
const selector = string(`select data from session`)

func scan(e *model.Session, row pgx.Row) error {
	return row.Scan(e)
}
