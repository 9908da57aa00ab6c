package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gophdash/internal/client/models"
	"github.com/dmitrijs2005/gophdash/internal/client/repositories/settings"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) (*settings.SQLiteRepository, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE settings (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return settings.NewSQLiteRepository(db), db
}

// failingRepo fails every call with err.
type failingRepo struct {
	err error
}

func (r failingRepo) Get(ctx context.Context, key string) ([]byte, error) { return nil, r.err }
func (r failingRepo) Set(ctx context.Context, key string, value []byte) error {
	return r.err
}
func (r failingRepo) Delete(ctx context.Context, key string) error { return r.err }
func (r failingRepo) List(ctx context.Context) ([]settings.Slot, error) {
	return nil, r.err
}

var errRepo = errors.New("disk on fire")

type fakeClient struct {
	comments    []models.Comment
	users       []models.User
	commentsErr error
	usersErr    error

	commentCalls int
	userCalls    int
}

func (f *fakeClient) GetComments(ctx context.Context) ([]models.Comment, error) {
	f.commentCalls++
	if f.commentsErr != nil {
		return nil, f.commentsErr
	}
	return f.comments, nil
}

func (f *fakeClient) GetUsers(ctx context.Context) ([]models.User, error) {
	f.userCalls++
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return f.users, nil
}
