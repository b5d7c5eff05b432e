package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/freight-parser/app/models"
)

func newRedisCacheService(t *testing.T) (*RedisCacheService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	svc, err := NewRedisCacheService("redis://"+mr.Addr(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })

	return svc, mr
}

func sampleResult(fingerprint string) *models.ParsedMessage {
	return &models.ParsedMessage{
		Raw:            "Tuzladan Ankaraya tır lazım",
		NormalizedText: "tuzladan ankaraya tir lazim",
		MessageType:    models.MessageTypeVehicleWanted,
		Origin: &models.ParsedLocation{
			OriginalText: "tuzladan",
			ProvinceName: "Istanbul",
			ProvinceCode: 34,
			DistrictName: "Tuzla",
			IsDistrict:   true,
			Confidence:   1.0,
		},
		Destination: &models.ParsedLocation{
			OriginalText: "ankaraya",
			ProvinceName: "Ankara",
			ProvinceCode: 6,
			Confidence:   1.0,
		},
		Confidence:       models.ConfidenceInfo{Score: 0.75, Level: models.ConfidenceHigh},
		Fingerprint:      fingerprint,
		GazetteerVersion: "2025.08",
		ParsedAt:         time.Now(),
	}
}

func TestRedisCacheService_SetGet(t *testing.T) {
	svc, _ := newRedisCacheService(t)
	ctx := context.Background()

	fp := "abc123"
	require.NoError(t, svc.Set(ctx, fp, sampleResult(fp)))

	got, found, err := svc.Get(ctx, fp)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.MessageTypeVehicleWanted, got.MessageType)
	assert.Equal(t, 34, got.Origin.ProvinceCode)
	assert.Equal(t, "Ankara", got.Destination.ProvinceName)
}

func TestRedisCacheService_GetMiss(t *testing.T) {
	svc, _ := newRedisCacheService(t)

	got, found, err := svc.Get(context.Background(), "khong-ton-tai")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestRedisCacheService_Delete(t *testing.T) {
	svc, _ := newRedisCacheService(t)
	ctx := context.Background()

	fp := "del-me"
	require.NoError(t, svc.Set(ctx, fp, sampleResult(fp)))
	require.NoError(t, svc.Delete(ctx, fp))

	_, found, err := svc.Get(ctx, fp)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCacheService_Exists(t *testing.T) {
	svc, _ := newRedisCacheService(t)
	ctx := context.Background()

	fp := "exists-check"
	exists, err := svc.Exists(ctx, fp)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, svc.Set(ctx, fp, sampleResult(fp)))

	exists, err = svc.Exists(ctx, fp)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRedisCacheService_TTL(t *testing.T) {
	svc, mr := newRedisCacheService(t)
	ctx := context.Background()

	svc.SetTTL(1 * time.Hour)

	fp := "ttl-check"
	require.NoError(t, svc.Set(ctx, fp, sampleResult(fp)))

	ttl, err := svc.GetTTL(ctx, fp)
	require.NoError(t, err)
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)

	// Hết hạn thì key biến mất
	mr.FastForward(2 * time.Hour)

	_, found, err := svc.Get(ctx, fp)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCacheService_Clear(t *testing.T) {
	svc, _ := newRedisCacheService(t)
	ctx := context.Background()

	for _, fp := range []string{"fp1", "fp2", "fp3"} {
		require.NoError(t, svc.Set(ctx, fp, sampleResult(fp)))
	}

	require.NoError(t, svc.Clear(ctx))

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalItems)
}

func TestRedisCacheService_Stats(t *testing.T) {
	svc, _ := newRedisCacheService(t)
	ctx := context.Background()

	fp := "stats-check"
	require.NoError(t, svc.Set(ctx, fp, sampleResult(fp)))

	_, _, _ = svc.Get(ctx, fp)           // hit
	_, _, _ = svc.Get(ctx, "khong-co")   // miss
	_, _, _ = svc.Get(ctx, "cung-khong") // miss

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalHits)
	assert.Equal(t, int64(2), stats.TotalMiss)
	assert.InDelta(t, 1.0/3.0, stats.HitRate, 0.001)
	assert.Equal(t, int64(1), stats.TotalItems)
}

func TestRedisCacheService_BadURL(t *testing.T) {
	_, err := NewRedisCacheService("://khong-hop-le", zap.NewNop())
	assert.Error(t, err)
}
