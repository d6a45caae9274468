package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// SQLiteTestSuite exercises the SQLite-backed KV against a temp file.
type SQLiteTestSuite struct {
	suite.Suite
	kv   *SQLite
	path string
}

func (s *SQLiteTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "nested", "chitieu.db")
	kv, err := Open(s.path)
	require.NoError(s.T(), err, "failed to open test database")
	s.kv = kv
}

func (s *SQLiteTestSuite) TearDownTest() {
	if s.kv != nil {
		_ = s.kv.Close()
	}
}

func (s *SQLiteTestSuite) TestGetMissingKey() {
	v, ok, err := s.kv.Get("expenses")
	require.NoError(s.T(), err)
	assert.False(s.T(), ok)
	assert.Empty(s.T(), v)
}

func (s *SQLiteTestSuite) TestSetThenGet() {
	require.NoError(s.T(), s.kv.Set("expenses", `[]`))

	v, ok, err := s.kv.Get("expenses")
	require.NoError(s.T(), err)
	assert.True(s.T(), ok)
	assert.Equal(s.T(), `[]`, v)
}

func (s *SQLiteTestSuite) TestSetOverwrites() {
	require.NoError(s.T(), s.kv.Set("expenses", `[1]`))
	require.NoError(s.T(), s.kv.Set("expenses", `[2]`))

	v, _, err := s.kv.Get("expenses")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), `[2]`, v)

	keys, err := s.kv.Keys()
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"expenses"}, keys)
}

func (s *SQLiteTestSuite) TestValuesSurviveReopen() {
	require.NoError(s.T(), s.kv.Set("expenses", `[{"id":1}]`))
	require.NoError(s.T(), s.kv.Close())

	reopened, err := Open(s.path)
	require.NoError(s.T(), err)
	s.kv = reopened

	v, ok, err := s.kv.Get("expenses")
	require.NoError(s.T(), err)
	assert.True(s.T(), ok)
	assert.Equal(s.T(), `[{"id":1}]`, v)
	assert.Equal(s.T(), s.path, s.kv.Path())
}

func TestSQLiteTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteTestSuite))
}

func TestMemory(t *testing.T) {
	m := NewMemory()

	_, ok, err := m.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set("k", "v"))
	v, ok, err := m.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	boom := errors.New("quota exceeded")
	m.FailWrites = boom
	assert.ErrorIs(t, m.Set("k", "w"), boom)
	v, _, _ = m.Get("k")
	assert.Equal(t, "v", v, "failed write must not change the value")

	require.NoError(t, m.Close())
	_, _, err = m.Get("k")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestDefaultPathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "chitieu", "chitieu.db"), DefaultPath())
}
