package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/app/requests"
	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/parser"
)

func newParseService(t *testing.T, cache ICacheService) *ParseService {
	t.Helper()
	p := parser.New(gazetteer.New(), zap.NewNop())
	return NewParseService(p, cache, nil, zap.NewNop())
}

func TestParseService_ParseMessage(t *testing.T) {
	svc := newParseService(t, nil)
	ctx := context.Background()

	result, cacheHit, err := svc.ParseMessage(ctx, "İzmirden Ankaraya tır lazım 0532 123 45 67", requests.ParseOptions{})
	require.NoError(t, err)
	assert.False(t, cacheHit)
	require.NotNil(t, result)

	assert.Equal(t, models.MessageTypeVehicleWanted, result.MessageType)
	require.NotNil(t, result.Origin)
	assert.Equal(t, "Izmir", result.Origin.ProvinceName)
	require.NotNil(t, result.Destination)
	assert.Equal(t, "Ankara", result.Destination.ProvinceName)
	assert.NotEmpty(t, result.Fingerprint)
	assert.Equal(t, gazetteer.DataVersion, result.GazetteerVersion)
}

func TestParseService_CacheHit(t *testing.T) {
	cache, err := NewMemoryCacheService(100, time.Hour)
	require.NoError(t, err)
	svc := newParseService(t, cache)
	ctx := context.Background()

	message := "Bursadan İstanbula parsiyel yük var 05321234567"

	first, cacheHit, err := svc.ParseMessage(ctx, message, requests.ParseOptions{})
	require.NoError(t, err)
	assert.False(t, cacheHit)

	second, cacheHit, err := svc.ParseMessage(ctx, message, requests.ParseOptions{})
	require.NoError(t, err)
	assert.True(t, cacheHit)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)
	assert.Equal(t, first.MessageType, second.MessageType)
}

func TestParseService_NoCacheOption(t *testing.T) {
	cache, err := NewMemoryCacheService(100, time.Hour)
	require.NoError(t, err)
	svc := newParseService(t, cache)
	ctx := context.Background()

	message := "Konyadan Adanaya kamyon lazım"
	opts := requests.ParseOptions{NoCache: true}

	_, cacheHit, err := svc.ParseMessage(ctx, message, opts)
	require.NoError(t, err)
	assert.False(t, cacheHit)

	// no_cache thì lần hai vẫn parse lại
	_, cacheHit, err = svc.ParseMessage(ctx, message, opts)
	require.NoError(t, err)
	assert.False(t, cacheHit)

	// và không có gì được ghi vào cache
	assert.Equal(t, 0, cache.Size())
}

func TestParseService_EmptyMessage(t *testing.T) {
	svc := newParseService(t, nil)

	result, cacheHit, err := svc.ParseMessage(context.Background(), "", requests.ParseOptions{})
	require.NoError(t, err)
	assert.False(t, cacheHit)
	require.NotNil(t, result)
	assert.Equal(t, models.MessageTypeUnknown, result.MessageType)
	assert.Contains(t, result.Warnings, "Empty message")
}

func TestParseService_ExtractRoutes(t *testing.T) {
	svc := newParseService(t, nil)

	routes := svc.ExtractRoutes("İstanbul - Ankara tır lazım")
	require.NotEmpty(t, routes)
	assert.Equal(t, "Istanbul", routes[0].Origin)
	assert.Equal(t, "Ankara", routes[0].Destination)
}

func TestParseService_BatchJob(t *testing.T) {
	svc := newParseService(t, nil)

	messages := []string{
		"İzmirden Ankaraya tır lazım",
		"Bursadan Konyaya yük var 05551234567",
		"frigo araç arıyorum Antalyadan Mersine",
	}

	jobID := "test-job-1"
	svc.ProcessBatchJob(jobID, messages, requests.ParseOptions{})

	status, err := svc.GetJobStatus(jobID)
	require.NoError(t, err)
	assert.Equal(t, "done", status.Status)
	assert.Equal(t, len(messages), status.Processed)
	assert.Equal(t, len(messages), status.Total)
	assert.InDelta(t, 1.0, status.Progress, 0.001)

	results, err := svc.GetJobResults(jobID)
	require.NoError(t, err)
	require.Len(t, results, len(messages))
	for i, result := range results {
		require.NotNil(t, result, "result %d", i)
		assert.Equal(t, messages[i], result.Raw)
	}
}

func TestParseService_JobNotFound(t *testing.T) {
	svc := newParseService(t, nil)

	_, err := svc.GetJobStatus("khong-ton-tai")
	assert.Error(t, err)

	_, err = svc.GetJobResults("khong-ton-tai")
	assert.Error(t, err)

	_, err = svc.GetJobResultsStream("khong-ton-tai")
	assert.Error(t, err)
}

func TestParseService_JobResultsStream(t *testing.T) {
	svc := newParseService(t, nil)

	messages := []string{"İzmirden Ankaraya tır lazım", "Bursadan Konyaya yük var"}
	jobID := "stream-job"
	svc.ProcessBatchJob(jobID, messages, requests.ParseOptions{})

	stream, err := svc.GetJobResultsStream(jobID)
	require.NoError(t, err)

	count := 0
	for result := range stream {
		require.NotNil(t, result)
		count++
	}
	assert.Equal(t, len(messages), count)
}

func TestParseService_EstimateBatchProcessingTime(t *testing.T) {
	svc := newParseService(t, nil)

	assert.Equal(t, 0, svc.EstimateBatchProcessingTime(10))
	assert.Equal(t, 50, svc.EstimateBatchProcessingTime(10000))
}

func TestParseService_GetStats(t *testing.T) {
	svc := newParseService(t, nil)

	stats := svc.GetStats()
	assert.Equal(t, "running", stats["status"])
	assert.Contains(t, stats, "uptime_seconds")
	assert.Contains(t, stats, "start_time")
}
