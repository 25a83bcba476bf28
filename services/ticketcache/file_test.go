package ticketcache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flywise/models"
	"flywise/utils"
)

func sampleTicket() *models.TicketDetails {
	return &models.TicketDetails{
		Airline:            "Emirates",
		FlightNumber:       "EK512",
		OriginAirport:      "DEL",
		DestinationAirport: "DXB",
		DepartureDate:      "2026-09-10",
		PassengerName:      "Rahul Sharma",
		TicketPriceNumeric: 16000,
		Currency:           "INR",
	}
}

func TestFileCacheRoundtrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir(), time.Hour)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, c.Store(ctx, "+91 98765 43210", sampleTicket(), nil))

	// Phone formats normalize to the same key.
	record, ok := c.Get(ctx, "919876543210")
	require.True(t, ok)
	assert.Equal(t, "EK512", record.TicketInfo.FlightNumber)
	assert.Equal(t, utils.NormalizePhone("+91 98765 43210"), record.PhoneNumber)
	assert.True(t, record.ExpiresAt.After(record.StoredAt))
}

func TestFileCacheMiss(t *testing.T) {
	c, err := NewFileCache(t.TempDir(), time.Hour)
	require.NoError(t, err)

	_, ok := c.Get(context.Background(), "1234567890")
	assert.False(t, ok)
}

func TestFileCacheExpiredRecordDeleted(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir, time.Hour)
	require.NoError(t, err)
	ctx := context.Background()

	record := models.TicketRecord{
		PhoneNumber: "1234567890",
		StoredAt:    time.Now().Add(-2 * time.Hour),
		ExpiresAt:   time.Now().Add(-time.Hour),
		TicketInfo:  sampleTicket(),
	}
	b, err := json.Marshal(record)
	require.NoError(t, err)
	path := filepath.Join(dir, "1234567890.json")
	require.NoError(t, os.WriteFile(path, b, 0o644))

	_, ok := c.Get(ctx, "1234567890")
	assert.False(t, ok)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileCacheCorruptRecordDeleted(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir, time.Hour)
	require.NoError(t, err)

	path := filepath.Join(dir, "1234567890.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, ok := c.Get(context.Background(), "1234567890")
	assert.False(t, ok)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileCacheClearIdempotent(t *testing.T) {
	c, err := NewFileCache(t.TempDir(), time.Hour)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, c.Store(ctx, "1234567890", sampleTicket(), nil))
	require.NoError(t, c.Clear(ctx, "1234567890"))
	require.NoError(t, c.Clear(ctx, "1234567890"))

	_, ok := c.Get(ctx, "1234567890")
	assert.False(t, ok)
}

func TestFileCacheCleanupExpired(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir, time.Hour)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, c.Store(ctx, "1111111111", sampleTicket(), nil))

	stale := models.TicketRecord{
		PhoneNumber: "2222222222",
		StoredAt:    time.Now().Add(-48 * time.Hour),
		ExpiresAt:   time.Now().Add(-24 * time.Hour),
		TicketInfo:  sampleTicket(),
	}
	b, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2222222222.json"), b, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "3333333333.json"), []byte("garbage"), 0o644))

	removed, err := c.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, ok := c.Get(ctx, "1111111111")
	assert.True(t, ok)
}
