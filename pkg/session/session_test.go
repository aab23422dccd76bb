package session

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/equinor/radix-job-dashboard/internal/normalize"
	"github.com/equinor/radix-job-dashboard/models"
	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
	"github.com/equinor/radix-job-dashboard/pkg/backend"
	"github.com/equinor/radix-job-dashboard/pkg/backend/mock"
	"github.com/equinor/radix-job-dashboard/pkg/filterstore"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func testConfig() *models.Config {
	return &models.Config{SessionID: "test-session", RefreshInterval: time.Hour, FetchPageSize: 2}
}

func newTestSession(t *testing.T, client backend.Client, store filterstore.Store) *Session {
	if store == nil {
		store = filterstore.NewMemoryStore()
	}
	return New(context.Background(), testConfig(), client, store, WithClock(func() time.Time { return testNow }))
}

func jobRecord(id, status, startDate string) normalize.Record {
	return normalize.Record{"id": id, "jobName": "import", "username": "jdoe", "status": status, "startDate": startDate}
}

func statisticsRows() interface{} {
	return []interface{}{[]interface{}{"k", "SUCCESS", 3.0}, []interface{}{"k", "running", 1.0}}
}

func expectActionsAndStatistics(client *mock.MockClient) {
	client.EXPECT().GetActions(gomock.Any(), gomock.Any()).Return([]normalize.Record{{"id": "a1", "action": "upload"}}, nil).AnyTimes()
	client.EXPECT().GetStatistics(gomock.Any(), gomock.Any()).Return(statisticsRows(), nil).AnyTimes()
}

func jobIDs(jobs []modelsv1.Job) []string {
	ids := make([]string, 0, len(jobs))
	for _, job := range jobs {
		ids = append(ids, job.ID)
	}
	return ids
}

func Test_Refresh(t *testing.T) {
	t.Run("first load asks all time statistics and sets no success notice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock.NewMockClient(ctrl)
		client.EXPECT().GetJobs(gomock.Any(), backend.Query{Page: 0, Size: 2, Days: 7}).
			Return([]normalize.Record{jobRecord("1", "in_progress", "2024-03-10T11:58:00Z")}, nil).Times(1)
		client.EXPECT().GetActions(gomock.Any(), backend.Query{Page: 0, Size: 2, Days: 7}).
			Return([]normalize.Record{{"id": "a1"}}, nil).Times(1)
		client.EXPECT().GetStatistics(gomock.Any(), 0).Return(statisticsRows(), nil).Times(1)

		session := newTestSession(t, client, nil)
		require.NoError(t, session.Refresh(context.Background(), RefreshOptions{Notify: true}))

		snapshot := session.Snapshot()
		assert.True(t, snapshot.Loaded)
		assert.Nil(t, snapshot.Notice)
		assert.Equal(t, []string{"1"}, jobIDs(snapshot.Jobs))
		assert.Equal(t, modelsv1.JobStatusEnumInProgress, snapshot.Jobs[0].Status)
		assert.Len(t, snapshot.Actions, 1)
		assert.Equal(t, modelsv1.Statistics{Completed: 3, Running: 1, Total: 4}, snapshot.Statistics)
		assert.Equal(t, map[string]int64{"1": 120}, snapshot.Elapsed)
		require.NotNil(t, snapshot.LastRefreshed)
		assert.Equal(t, testNow, *snapshot.LastRefreshed)
		assert.False(t, snapshot.HasMoreJobs)
	})

	t.Run("later refresh asks statistics for the date range and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock.NewMockClient(ctrl)
		client.EXPECT().GetJobs(gomock.Any(), gomock.Any()).Return([]normalize.Record{jobRecord("1", "SUCCESS", "")}, nil).Times(2)
		client.EXPECT().GetActions(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
		gomock.InOrder(
			client.EXPECT().GetStatistics(gomock.Any(), 0).Return(statisticsRows(), nil),
			client.EXPECT().GetStatistics(gomock.Any(), 7).Return(statisticsRows(), nil),
		)

		session := newTestSession(t, client, nil)
		require.NoError(t, session.Refresh(context.Background(), RefreshOptions{}))
		require.NoError(t, session.Refresh(context.Background(), RefreshOptions{Notify: true}))

		notice := session.Snapshot().Notice
		require.NotNil(t, notice)
		assert.Equal(t, modelsv1.NoticeLevelSuccess, notice.Level)
		assert.Equal(t, "Data refreshed successfully", notice.Message)
	})

	t.Run("failed sources keep held lists and reset statistics", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock.NewMockClient(ctrl)
		gomock.InOrder(
			client.EXPECT().GetJobs(gomock.Any(), gomock.Any()).Return([]normalize.Record{jobRecord("1", "SUCCESS", "")}, nil),
			client.EXPECT().GetJobs(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused")),
		)
		gomock.InOrder(
			client.EXPECT().GetActions(gomock.Any(), gomock.Any()).Return([]normalize.Record{{"id": "a1"}}, nil),
			client.EXPECT().GetActions(gomock.Any(), gomock.Any()).Return([]normalize.Record{{"id": "a2"}, {"id": "a3"}}, nil),
		)
		gomock.InOrder(
			client.EXPECT().GetStatistics(gomock.Any(), gomock.Any()).Return(statisticsRows(), nil),
			client.EXPECT().GetStatistics(gomock.Any(), gomock.Any()).Return(nil, &backend.ResponseError{StatusCode: 500}),
		)

		session := newTestSession(t, client, nil)
		require.NoError(t, session.Refresh(context.Background(), RefreshOptions{}))
		err := session.Refresh(context.Background(), RefreshOptions{Notify: true})
		require.Error(t, err)
		var responseError *backend.ResponseError
		assert.True(t, errors.As(err, &responseError))

		snapshot := session.Snapshot()
		assert.Equal(t, []string{"1"}, jobIDs(snapshot.Jobs))
		assert.Len(t, snapshot.Actions, 2)
		assert.Equal(t, modelsv1.Statistics{}, snapshot.Statistics)
		require.NotNil(t, snapshot.Notice)
		assert.Equal(t, modelsv1.NoticeLevelError, snapshot.Notice.Level)
		assert.Equal(t, "Failed to load data from server", snapshot.Notice.Message)
	})

	t.Run("unparseable statistics give zero statistics", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock.NewMockClient(ctrl)
		client.EXPECT().GetJobs(gomock.Any(), gomock.Any()).Return(nil, nil)
		client.EXPECT().GetActions(gomock.Any(), gomock.Any()).Return([]normalize.Record{{"id": "a1"}}, nil)
		client.EXPECT().GetStatistics(gomock.Any(), gomock.Any()).Return(map[string]interface{}{"completed": 5.0}, nil)

		session := newTestSession(t, client, nil)
		require.NoError(t, session.Refresh(context.Background(), RefreshOptions{}))
		assert.Equal(t, modelsv1.Statistics{}, session.Snapshot().Statistics)
	})

	t.Run("all time range falls back to recent actions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock.NewMockClient(ctrl)
		store := filterstore.NewMemoryStore()
		require.NoError(t, store.Save(context.Background(), filterstore.SessionKey("test-session"), []byte(`{"dateRangeFilter":""}`)))
		client.EXPECT().GetJobs(gomock.Any(), backend.Query{Page: 0, Size: 2, Days: 0}).Return(nil, nil)
		gomock.InOrder(
			client.EXPECT().GetActions(gomock.Any(), backend.Query{Page: 0, Size: 2, Days: 0}).Return([]normalize.Record{}, nil),
			client.EXPECT().GetActions(gomock.Any(), backend.Query{Page: 0, Size: 2, Days: 30}).Return([]normalize.Record{{"id": "old"}}, nil),
		)
		client.EXPECT().GetStatistics(gomock.Any(), 0).Return(statisticsRows(), nil)

		session := newTestSession(t, client, store)
		require.NoError(t, session.Refresh(context.Background(), RefreshOptions{}))
		actions := session.Snapshot().Actions
		require.Len(t, actions, 1)
		assert.Equal(t, "old", actions[0].ID)
	})

	t.Run("search filters are sent when name, user and status are set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock.NewMockClient(ctrl)
		store := filterstore.NewMemoryStore()
		require.NoError(t, store.Save(context.Background(), filterstore.SessionKey("test-session"),
			[]byte(`{"jobNameFilter":"import","userNameFilter":"jdoe","statusFilter":"FAILED","dateRangeFilter":"month"}`)))
		expected := backend.Query{Page: 0, Size: 2, Days: 30, UserName: "jdoe", JobName: "import", FileName: "import", Status: "FAILED"}
		client.EXPECT().GetJobs(gomock.Any(), expected).Return(nil, nil)
		client.EXPECT().GetActions(gomock.Any(), expected).Return([]normalize.Record{{"id": "a1"}}, nil)
		client.EXPECT().GetStatistics(gomock.Any(), 0).Return(statisticsRows(), nil)

		session := newTestSession(t, client, store)
		require.NoError(t, session.Refresh(context.Background(), RefreshOptions{}))
	})
}

func Test_Refresh_DiscardsSupersededResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock.NewMockClient(ctrl)
	expectActionsAndStatistics(client)

	started, release := make(chan struct{}), make(chan struct{})
	var calls int32
	client.EXPECT().GetJobs(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, query backend.Query) ([]normalize.Record, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
			<-release
			return []normalize.Record{jobRecord("stale", "SUCCESS", "")}, nil
		}
		return []normalize.Record{jobRecord("fresh", "SUCCESS", "")}, nil
	}).Times(2)

	session := newTestSession(t, client, nil)
	done := make(chan error)
	go func() {
		done <- session.Refresh(context.Background(), RefreshOptions{})
	}()
	<-started
	require.NoError(t, session.Refresh(context.Background(), RefreshOptions{}))
	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, []string{"fresh"}, jobIDs(session.Snapshot().Jobs))
}

func Test_LoadMoreJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock.NewMockClient(ctrl)
	expectActionsAndStatistics(client)
	gomock.InOrder(
		client.EXPECT().GetJobs(gomock.Any(), backend.Query{Page: 0, Size: 2, Days: 7}).
			Return([]normalize.Record{jobRecord("1", "SUCCESS", ""), jobRecord("2", "SUCCESS", "")}, nil),
		client.EXPECT().GetJobs(gomock.Any(), backend.Query{Page: 1, Size: 2, Days: 7}).
			Return([]normalize.Record{jobRecord("3", "SUCCESS", ""), jobRecord("4", "SUCCESS", "")}, nil),
		client.EXPECT().GetJobs(gomock.Any(), backend.Query{Page: 2, Size: 2, Days: 7}).
			Return([]normalize.Record{jobRecord("5", "FAILED", "")}, nil),
	)

	session := newTestSession(t, client, nil)
	require.NoError(t, session.Refresh(context.Background(), RefreshOptions{}))
	assert.True(t, session.Snapshot().HasMoreJobs)

	result, err := session.LoadMoreJobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, modelsv1.LoadMoreResult{Loaded: 2, TotalJobs: 4, HasMoreJobs: true}, result)

	result, err = session.LoadMoreJobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, modelsv1.LoadMoreResult{Loaded: 1, TotalJobs: 5, HasMoreJobs: false}, result)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, jobIDs(session.Snapshot().Jobs))
	assert.Len(t, session.Snapshot().Actions, 3, "actions are appended per page")
}

func Test_LoadMoreJobs_DiscardsPageSupersededByRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock.NewMockClient(ctrl)
	expectActionsAndStatistics(client)

	started, release := make(chan struct{}), make(chan struct{})
	var firstPages, nextPages int32
	client.EXPECT().GetJobs(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, query backend.Query) ([]normalize.Record, error) {
		if query.Page == 0 {
			if atomic.AddInt32(&firstPages, 1) == 1 {
				return []normalize.Record{jobRecord("old-a", "SUCCESS", ""), jobRecord("old-b", "SUCCESS", "")}, nil
			}
			return []normalize.Record{jobRecord("new-a", "SUCCESS", ""), jobRecord("new-b", "SUCCESS", "")}, nil
		}
		assert.Equal(t, 1, query.Page)
		if atomic.AddInt32(&nextPages, 1) == 1 {
			close(started)
			<-release
		}
		return []normalize.Record{jobRecord("old-p1a", "SUCCESS", ""), jobRecord("old-p1b", "SUCCESS", "")}, nil
	}).Times(4)

	session := newTestSession(t, client, nil)
	require.NoError(t, session.Refresh(context.Background(), RefreshOptions{}))

	type loadMore struct {
		result modelsv1.LoadMoreResult
		err    error
	}
	done := make(chan loadMore)
	go func() {
		result, err := session.LoadMoreJobs(context.Background())
		done <- loadMore{result: result, err: err}
	}()
	<-started
	require.NoError(t, session.Refresh(context.Background(), RefreshOptions{}))
	close(release)
	stale := <-done

	require.NoError(t, stale.err)
	assert.Equal(t, modelsv1.LoadMoreResult{Loaded: 0, TotalJobs: 2, HasMoreJobs: true}, stale.result)
	assert.Equal(t, []string{"new-a", "new-b"}, jobIDs(session.Snapshot().Jobs))

	result, err := session.LoadMoreJobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Loaded, "the dropped page is fetched again")
	assert.Equal(t, []string{"new-a", "new-b", "old-p1a", "old-p1b"}, jobIDs(session.Snapshot().Jobs))
}

func Test_Subscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock.NewMockClient(ctrl)
	expectActionsAndStatistics(client)
	client.EXPECT().GetJobs(gomock.Any(), gomock.Any()).Return([]normalize.Record{jobRecord("1", "IN_PROGRESS", "2024-03-10T11:59:00Z")}, nil)

	session := newTestSession(t, client, nil)
	updates, unsubscribe := session.Subscribe()
	require.NoError(t, session.Refresh(context.Background(), RefreshOptions{}))
	assertSignalled(t, updates)

	session.tick()
	assertSignalled(t, updates)
	view, ok := session.JobDetails("1")
	require.True(t, ok)
	assert.Equal(t, int64(61), view.ElapsedTime)

	unsubscribe()
	_, open := <-updates
	assert.False(t, open)
}

func Test_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock.NewMockClient(ctrl)
	expectActionsAndStatistics(client)
	client.EXPECT().GetJobs(gomock.Any(), gomock.Any()).Return([]normalize.Record{jobRecord("1", "SUCCESS", "")}, nil).Times(1)

	session := newTestSession(t, client, nil)
	updates, _ := session.Subscribe()
	require.NoError(t, session.Start(context.Background()))
	require.NoError(t, session.Start(context.Background()), "starting twice is a no-op")
	assert.True(t, session.Snapshot().Loaded)

	session.Stop()
	session.Stop()
	for range updates {
	}
	late, _ := session.Subscribe()
	_, open := <-late
	assert.False(t, open, "subscribing after stop gives a closed channel")
}

func assertSignalled(t *testing.T, updates <-chan struct{}) {
	t.Helper()
	select {
	case <-updates:
	case <-time.After(time.Second):
		t.Fatal("expected an update signal")
	}
}

func Test_StartStop_TicksUntilStopped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock.NewMockClient(ctrl)
	expectActionsAndStatistics(client)
	client.EXPECT().GetJobs(gomock.Any(), gomock.Any()).
		Return([]normalize.Record{jobRecord("1", "IN_PROGRESS", "2024-03-10T11:59:00Z")}, nil).Times(1)

	session := newTestSession(t, client, nil)
	require.NoError(t, session.Start(context.Background()))
	assert.Equal(t, int64(60), session.Snapshot().Elapsed["1"])

	time.Sleep(2500 * time.Millisecond)
	running := session.Snapshot().Elapsed["1"]
	assert.Greater(t, running, int64(60), "ticks every second while started")
	assert.LessOrEqual(t, running, int64(63))

	session.Stop()
	stopped := session.Snapshot().Elapsed["1"]
	time.Sleep(2 * time.Second)
	assert.Equal(t, stopped, session.Snapshot().Elapsed["1"], "no tick after stop")
}

func Test_everySpec(t *testing.T) {
	scenarios := []struct {
		interval time.Duration
		spec     string
		used     time.Duration
	}{
		{interval: 15 * time.Second, spec: "@every 15s", used: 15 * time.Second},
		{interval: 1500 * time.Millisecond, spec: "@every 1s", used: time.Second},
		{interval: 200 * time.Millisecond, spec: "@every 1s", used: time.Second},
		{interval: 0, spec: "@every 1s", used: time.Second},
		{interval: time.Hour, spec: "@every 1h0m0s", used: time.Hour},
	}
	for _, ts := range scenarios {
		t.Run(ts.interval.String(), func(t *testing.T) {
			spec, used := everySpec(ts.interval)
			assert.Equal(t, ts.spec, spec)
			assert.Equal(t, ts.used, used)
		})
	}
}
