package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCertPath(t *testing.T) {
	assert.Equal(t, "/tmp/ca.pem", resolveCertPath("/tmp/ca.pem"))
	assert.Equal(t, filepath.Join("./config/certs", "missing.pem"), resolveCertPath("@certs/missing.pem"))
}

func TestRegisterTLSConfig(t *testing.T) {
	assert.NoError(t, registerTLSConfig(Config{}))

	err := registerTLSConfig(Config{TLSCAPath: filepath.Join(t.TempDir(), "nope.pem")})
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.pem")
	require.NoError(t, os.WriteFile(bad, []byte("not a certificate"), 0o600))
	err = registerTLSConfig(Config{TLSCAPath: bad})
	assert.ErrorContains(t, err, "failed to parse CA certificate")
}

func TestPing(t *testing.T) {
	ms, mock := newMockStore(t)
	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	require.NoError(t, ms.Ping(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
