package main

import (
	"errors"
	"testing"
	"time"

	"github.com/jekabolt/organic-reports/internal/auth/jwt"
	"github.com/jekabolt/organic-reports/internal/entity"
	gerr "github.com/jekabolt/organic-reports/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportRange(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		period   string
		from, to string
		wantFrom string
		wantTo   string
		wantErr  error
	}{
		{name: "7days", period: "7days", wantFrom: "2024-03-03", wantTo: "2024-03-10"},
		{name: "custom", period: "custom", from: "2024-01-01", to: "2024-01-31", wantFrom: "2024-01-01", wantTo: "2024-01-31"},
		{name: "custom missing bound", period: "custom", from: "2024-01-01", wantErr: gerr.ErrInvalidDateRange},
		{name: "custom reversed", period: "custom", from: "2024-02-01", to: "2024-01-01", wantErr: gerr.ErrInvalidDateRange},
		{name: "bad date", period: "custom", from: "01/02/2024", to: "2024-01-31", wantErr: gerr.ErrInvalidDateRange},
		{name: "unknown period", period: "year", wantErr: gerr.ErrUnknownPeriod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dr, err := exportRange(tt.period, tt.from, tt.to, time.UTC, now)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, dr.From.Format("2006-01-02"))
			assert.Equal(t, tt.wantTo, dr.To.Format("2006-01-02"))
		})
	}
}

func TestExportRange_PeriodTag(t *testing.T) {
	dr, err := exportRange("30days", "", "", time.UTC, time.Now())
	require.NoError(t, err)
	assert.Equal(t, entity.Period30Days, dr.Period)
}

func TestMintToken(t *testing.T) {
	c := &jwt.Config{Secret: "s3cret", TTL: time.Hour}

	token, err := mintToken(c, "ops", 0)
	require.NoError(t, err)

	sub, err := jwt.VerifyToken(jwt.New(c), token)
	require.NoError(t, err)
	assert.Equal(t, "ops", sub)

	_, err = mintToken(&jwt.Config{}, "ops", time.Hour)
	assert.Error(t, err)
}
