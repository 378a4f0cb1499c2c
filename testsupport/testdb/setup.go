package testdb

import (
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	tcpg "github.com/velosprint/sprintlog-go/testsupport/tcpostgres"
)

// InitTestDb returns a pool against a clean session table. With TESTDB_URL
// set the tests run against that database, otherwise a container is started.
func InitTestDb() *pgxpool.Pool {
	var pool *pgxpool.Pool
	if url := os.Getenv("TESTDB_URL"); url != "" {
		pool = tcpg.SetupExternalTestDb(url)
	} else {
		pool = tcpg.SetupTestDb()
	}
	tcpg.ClearAllTables(pool)
	return pool
}
