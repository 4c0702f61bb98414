// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-briefcase-sync/internal/logger"
	"github.com/MKhiriev/go-briefcase-sync/internal/mock"
	"github.com/MKhiriev/go-briefcase-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testBriefcaseConfig() models.BriefcaseConfig {
	return models.BriefcaseConfig{
		Specs: []models.RecordSpec{
			{RecordType: "Account", Destination: "accounts", IDField: "Id", ModTimeField: "LastModifiedDate", Fields: []string{"Name"}},
			{RecordType: "Contact", Destination: "contacts", IDField: "Id", ModTimeField: "LastModifiedDate", Fields: []string{"Email"}},
		},
	}
}

// newTestTarget — хелпер для создания briefcaseTarget с моками
func newTestTarget(
	t *testing.T,
	ctrl *gomock.Controller,
	cfg models.BriefcaseConfig,
) (
	*briefcaseTarget,
	*mock.MockRemoteAdapter,
	*mock.MockRecordCache,
	*mock.MockGate,
) {
	t.Helper()
	mockRemote := mock.NewMockRemoteAdapter(ctrl)
	mockCache := mock.NewMockRecordCache(ctrl)
	mockGate := mock.NewMockGate(ctrl)

	target, err := NewBriefcaseTarget(cfg, mockRemote, mockCache, mockGate, logger.Nop())
	require.NoError(t, err)

	return target.(*briefcaseTarget), mockRemote, mockCache, mockGate
}

func remoteRecord(recordType, id string) models.Record {
	return models.Record{
		"attributes":       map[string]any{"type": recordType},
		"Id":               id,
		"LastModifiedDate": "2026-01-15T10:00:00.000Z",
	}
}

// ── NewBriefcaseTarget ───────────────────────────────────────────────────────

func TestNewBriefcaseTarget_InvalidConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := NewBriefcaseTarget(
		models.BriefcaseConfig{},
		mock.NewMockRemoteAdapter(ctrl),
		mock.NewMockRecordCache(ctrl),
		mock.NewMockGate(ctrl),
		logger.Nop(),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNoRecordSpecs)
}

func TestNewBriefcaseTarget_ClampsSliceSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testBriefcaseConfig()
	cfg.SliceSize = 3000 // выше потолка
	target, _, _, _ := newTestTarget(t, ctrl, cfg)
	assert.Equal(t, models.MaxSliceSize, target.sliceSize)

	cfg.SliceSize = 0 // не задан — дефолт
	target, _, _, _ = newTestTarget(t, ctrl, cfg)
	assert.Equal(t, models.DefaultSliceSize, target.sliceSize)

	cfg.SliceSize = 100
	target, _, _, _ = newTestTarget(t, ctrl, cfg)
	assert.Equal(t, 100, target.sliceSize)
}

// ── StartRun ─────────────────────────────────────────────────────────────────

func TestBriefcaseTarget_StartRun_SinglePage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target, mockRemote, mockCache, mockGate := newTestTarget(t, ctrl, testBriefcaseConfig())
	ctx := context.Background()

	page := models.PrimingPage{
		PrimingRecords: map[string]map[string][]models.PrimingEntry{
			"Account": {"briefcase-1": {
				{ID: "a1", ModifiedAt: 100},
				{ID: "a2", ModifiedAt: 200},
			}},
			"Contact": {"briefcase-1": {
				{ID: "c1", ModifiedAt: 300},
			}},
		},
	}

	mockRemote.EXPECT().GetPrimingPage(ctx, "").Return(page, nil)
	mockGate.EXPECT().CheckAcceptingSyncs().Return(nil).Times(2)
	mockRemote.EXPECT().
		Query(ctx, "SELECT Name, Id, LastModifiedDate FROM Account WHERE Id IN ('a1', 'a2')").
		Return([]models.Record{remoteRecord("Account", "a1"), remoteRecord("Account", "a2")}, nil)
	mockRemote.EXPECT().
		Query(ctx, "SELECT Email, Id, LastModifiedDate FROM Contact WHERE Id IN ('c1')").
		Return([]models.Record{remoteRecord("Contact", "c1")}, nil)

	var routed []models.CachedRecord
	mockCache.EXPECT().
		SaveRecords(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records ...models.CachedRecord) error {
			routed = records
			return nil
		})

	result, state, err := target.StartRun(ctx, "run-1", 0)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Saved)
	assert.Equal(t, 0, result.Dropped)
	assert.Equal(t, 3, result.TotalSize)
	assert.True(t, result.TotalApprox)
	assert.True(t, state.Exhausted())

	// маршрутизация: каждый тип в свою destination, run id проставлен везде
	require.Len(t, routed, 3)
	assert.Equal(t, "accounts", routed[0].Destination)
	assert.Equal(t, "a1", routed[0].RecordID)
	assert.Equal(t, "accounts", routed[1].Destination)
	assert.Equal(t, "contacts", routed[2].Destination)
	assert.Equal(t, "c1", routed[2].RecordID)
	for _, r := range routed {
		assert.Equal(t, "run-1", r.SyncRunID)
		assert.Equal(t, "2026-01-15T10:00:00.000Z", r.ModStamp)
	}
}

func TestBriefcaseTarget_StartRun_WatermarkIsStrict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target, mockRemote, mockCache, mockGate := newTestTarget(t, ctrl, testBriefcaseConfig())
	ctx := context.Background()

	// watermark 150: запись с modifiedAt == 150 НЕ проходит, только строго новее
	page := models.PrimingPage{
		PrimingRecords: map[string]map[string][]models.PrimingEntry{
			"Account": {"briefcase-1": {
				{ID: "stale", ModifiedAt: 100},
				{ID: "boundary", ModifiedAt: 150},
				{ID: "fresh", ModifiedAt: 151},
			}},
		},
	}

	mockRemote.EXPECT().GetPrimingPage(ctx, "").Return(page, nil)
	mockGate.EXPECT().CheckAcceptingSyncs().Return(nil)
	mockRemote.EXPECT().
		Query(ctx, "SELECT Name, Id, LastModifiedDate FROM Account WHERE Id IN ('fresh')").
		Return([]models.Record{remoteRecord("Account", "fresh")}, nil)
	mockCache.EXPECT().SaveRecords(ctx, gomock.Any()).Return(nil)

	result, _, err := target.StartRun(ctx, "run-1", 150)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Saved)
}

func TestBriefcaseTarget_StartRun_SliceBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := models.BriefcaseConfig{
		Specs: []models.RecordSpec{
			{RecordType: "Account", Destination: "accounts", IDField: "Id", ModTimeField: "LastModifiedDate"},
		},
		SliceSize: 2,
	}
	target, mockRemote, mockCache, mockGate := newTestTarget(t, ctrl, cfg)
	ctx := context.Background()

	page := models.PrimingPage{
		PrimingRecords: map[string]map[string][]models.PrimingEntry{
			"Account": {"briefcase-1": {
				{ID: "a1", ModifiedAt: 1},
				{ID: "a2", ModifiedAt: 1},
				{ID: "a3", ModifiedAt: 1},
				{ID: "a4", ModifiedAt: 1},
				{ID: "a5", ModifiedAt: 1},
			}},
		},
	}

	mockRemote.EXPECT().GetPrimingPage(ctx, "").Return(page, nil)
	// шлюз проверяется перед КАЖДЫМ слайсом
	mockGate.EXPECT().CheckAcceptingSyncs().Return(nil).Times(3)

	// 5 ids при slice size 2 → три запроса, последний неполный
	gomock.InOrder(
		mockRemote.EXPECT().
			Query(ctx, "SELECT Id, LastModifiedDate FROM Account WHERE Id IN ('a1', 'a2')").
			Return([]models.Record{remoteRecord("Account", "a1"), remoteRecord("Account", "a2")}, nil),
		mockRemote.EXPECT().
			Query(ctx, "SELECT Id, LastModifiedDate FROM Account WHERE Id IN ('a3', 'a4')").
			Return([]models.Record{remoteRecord("Account", "a3"), remoteRecord("Account", "a4")}, nil),
		mockRemote.EXPECT().
			Query(ctx, "SELECT Id, LastModifiedDate FROM Account WHERE Id IN ('a5')").
			Return([]models.Record{remoteRecord("Account", "a5")}, nil),
	)

	mockCache.EXPECT().
		SaveRecords(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	result, _, err := target.StartRun(ctx, "run-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Saved)
	require.Len(t, result.Records, 5)
	assert.Equal(t, "a1", result.Records[0].StringField("Id"))
	assert.Equal(t, "a5", result.Records[4].StringField("Id"))
}

func TestBriefcaseTarget_StartRun_DropsUnroutableRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target, mockRemote, mockCache, mockGate := newTestTarget(t, ctrl, testBriefcaseConfig())
	ctx := context.Background()

	page := models.PrimingPage{
		PrimingRecords: map[string]map[string][]models.PrimingEntry{
			"Account": {"briefcase-1": {{ID: "a1", ModifiedAt: 1}}},
		},
	}

	// сервер вернул три записи: одна нормальная, одна чужого типа, одна без attributes
	fetched := []models.Record{
		remoteRecord("Account", "a1"),
		remoteRecord("Lead", "l1"),
		{"Id": "x1"},
	}

	mockRemote.EXPECT().GetPrimingPage(ctx, "").Return(page, nil)
	mockGate.EXPECT().CheckAcceptingSyncs().Return(nil)
	mockRemote.EXPECT().Query(ctx, gomock.Any()).Return(fetched, nil)
	mockCache.EXPECT().
		SaveRecords(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, records ...models.CachedRecord) error {
			require.Len(t, records, 1)
			assert.Equal(t, "a1", records[0].RecordID)
			return nil
		})

	result, _, err := target.StartRun(ctx, "run-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Saved)
	assert.Equal(t, 2, result.Dropped)
}

func TestBriefcaseTarget_StartRun_GateSuspended(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target, mockRemote, _, mockGate := newTestTarget(t, ctrl, testBriefcaseConfig())
	ctx := context.Background()

	page := models.PrimingPage{
		PrimingRecords: map[string]map[string][]models.PrimingEntry{
			"Account": {"briefcase-1": {{ID: "a1", ModifiedAt: 1}}},
		},
		RelayToken: "tok-next",
	}

	mockRemote.EXPECT().GetPrimingPage(ctx, "").Return(page, nil)
	mockGate.EXPECT().CheckAcceptingSyncs().Return(ErrSyncsSuspended)
	// ни Query, ни SaveRecords вызваться не должны

	_, state, err := target.StartRun(ctx, "run-1", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyncsSuspended)

	// неудавшийся вызов возвращает входное состояние без изменений
	assert.Equal(t, models.NewRunState(5), state)
}

func TestBriefcaseTarget_StartRun_FeedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target, mockRemote, _, _ := newTestTarget(t, ctrl, testBriefcaseConfig())
	ctx := context.Background()

	feedErr := errors.New("relay token expired")
	mockRemote.EXPECT().GetPrimingPage(ctx, "").Return(models.PrimingPage{}, feedErr)

	result, state, err := target.StartRun(ctx, "run-1", 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, feedErr)
	assert.Empty(t, result.Records)
	assert.Equal(t, models.NewRunState(7), state)
}

// ── ContinueRun ──────────────────────────────────────────────────────────────

func TestBriefcaseTarget_ContinueRun_Exhausted_NoNetworkCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target, _, _, _ := newTestTarget(t, ctrl, testBriefcaseConfig())

	// RelayToken пустой — фид исчерпан, никаких вызовов моков
	state := models.RunState{RelayToken: "", Watermark: 10, TotalSize: 42}

	result, next, err := target.ContinueRun(context.Background(), "run-1", state)
	require.NoError(t, err)
	assert.Empty(t, result.Records)
	assert.Equal(t, 42, result.TotalSize)
	assert.True(t, result.TotalApprox)
	assert.Equal(t, state, next)
}

func TestBriefcaseTarget_ContinueRun_PassesRelayToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target, mockRemote, mockCache, _ := newTestTarget(t, ctrl, testBriefcaseConfig())
	ctx := context.Background()

	state := models.RunState{RelayToken: "tok-1", Watermark: 0, TotalSize: 7}

	// пустая страница, но фид ещё не исчерпан
	mockRemote.EXPECT().
		GetPrimingPage(ctx, "tok-1").
		Return(models.PrimingPage{RelayToken: "tok-2"}, nil)
	mockCache.EXPECT().SaveRecords(ctx).Return(nil)

	result, next, err := target.ContinueRun(ctx, "run-1", state)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Saved)
	assert.Equal(t, "tok-2", next.RelayToken)
	assert.False(t, next.Exhausted())
	// оценка тотала установлена первой страницей и дальше не трогается
	assert.Equal(t, 7, next.TotalSize)
}

func TestBriefcaseTarget_ContinueRun_QueryError_StateUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target, mockRemote, _, mockGate := newTestTarget(t, ctrl, testBriefcaseConfig())
	ctx := context.Background()

	state := models.RunState{RelayToken: "tok-1", Watermark: 0, TotalSize: 3}

	page := models.PrimingPage{
		PrimingRecords: map[string]map[string][]models.PrimingEntry{
			"Account": {"briefcase-1": {{ID: "a1", ModifiedAt: 1}}},
		},
		RelayToken: "tok-2",
	}

	mockRemote.EXPECT().GetPrimingPage(ctx, "tok-1").Return(page, nil)
	mockGate.EXPECT().CheckAcceptingSyncs().Return(nil)
	mockRemote.EXPECT().Query(ctx, gomock.Any()).Return(nil, assert.AnError)

	_, next, err := target.ContinueRun(ctx, "run-1", state)
	require.Error(t, err)
	assert.Equal(t, state, next, "после ошибки повтор должен идти с той же точки")
}

func TestBriefcaseTarget_StartRun_SaveError_StateUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target, mockRemote, mockCache, mockGate := newTestTarget(t, ctrl, testBriefcaseConfig())
	ctx := context.Background()

	page := models.PrimingPage{
		PrimingRecords: map[string]map[string][]models.PrimingEntry{
			"Account": {"briefcase-1": {{ID: "a1", ModifiedAt: 1}}},
		},
		RelayToken: "tok-next",
	}

	mockRemote.EXPECT().GetPrimingPage(ctx, "").Return(page, nil)
	mockGate.EXPECT().CheckAcceptingSyncs().Return(nil)
	mockRemote.EXPECT().Query(ctx, gomock.Any()).Return([]models.Record{remoteRecord("Account", "a1")}, nil)
	mockCache.EXPECT().SaveRecords(ctx, gomock.Any()).Return(assert.AnError)

	_, state, err := target.StartRun(ctx, "run-1", 0)
	require.Error(t, err)
	assert.Equal(t, models.NewRunState(0), state)
}
