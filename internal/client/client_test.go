package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jankenoboe/jankenoboe/internal/config"
	"github.com/jankenoboe/jankenoboe/internal/learning"
	mock_service "github.com/jankenoboe/jankenoboe/internal/mocks/service"
	"github.com/jankenoboe/jankenoboe/internal/review"
	"github.com/jankenoboe/jankenoboe/internal/server"
	"github.com/jankenoboe/jankenoboe/internal/service"
)

var _ service.Service = (*Client)(nil)

func newTestClient(t *testing.T, svc service.Service) *Client {
	t.Helper()
	ts := httptest.NewServer(server.NewHandler(svc, config.LearningConfig{
		MaxLevel:          20,
		RelearnStartLevel: 7,
		DueLimit:          100,
		ReviewLimit:       500,
	}))
	t.Cleanup(ts.Close)

	client := NewClient(ts.URL+"/", 5*time.Second)
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func TestClient_Due(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_service.NewMockService(ctrl)
	want := []learning.DueRecord{
		{
			Record:   learning.Record{ID: "l1", SongID: "s1", Level: 3, LastLevelUpAt: 100, LevelUpPath: learning.LevelUpPath(20)},
			SongName: "Song",
			ArtistID: "a1",
			WaitDays: 1,
		},
	}
	svc.EXPECT().Due(gomock.Any(), 10, 90*time.Second).Return(want, nil)

	got, err := newTestClient(t, svc).Due(context.Background(), 10, 90*time.Second)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClient_Enroll(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_service.NewMockService(ctrl)
	req := learning.EnrollRequest{SongIDs: []string{"s1", "s2"}, RelearnSongIDs: []string{"s2"}, RelearnStartLevel: 5}
	want := &learning.EnrollResult{
		CreatedIDs:              []string{"l1"},
		SkippedSongIDs:          []string{"s2"},
		AlreadyGraduatedSongIDs: []string{},
	}
	svc.EXPECT().Enroll(gomock.Any(), req).Return(want, nil)

	got, err := newTestClient(t, svc).Enroll(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClient_Advance(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_service.NewMockService(ctrl)
	want := &learning.AdvanceResult{LeveledUpCount: 1, GraduatedCount: 1, TotalProcessed: 2}
	svc.EXPECT().Advance(gomock.Any(), []string{"l1", "l2"}).Return(want, nil)

	got, err := newTestClient(t, svc).Advance(context.Background(), []string{"l1", "l2"})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClient_BySongIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_service.NewMockService(ctrl)
	want := []learning.SongRecord{
		{
			Record:   learning.Record{ID: "l1", SongID: "s1", Level: 19, LevelUpPath: learning.LevelUpPath(20), Graduated: true},
			SongName: "Song",
			WaitDays: 574,
		},
	}
	svc.EXPECT().BySongIDs(gomock.Any(), []string{"s1", "s2"}).Return(want, nil)

	got, err := newTestClient(t, svc).BySongIDs(context.Background(), []string{"s1", "s2"})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClient_BuildReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_service.NewMockService(ctrl)
	want := &review.Report{
		Count: 1,
		Entries: []review.Entry{
			{
				LearningID: "l1",
				SongID:     "s1",
				SongName:   "Song",
				ArtistName: "Artist",
				Level:      2,
				WaitDays:   1,
				ShowNames:  []string{"Show"},
				MediaURLs:  []string{"https://example.com/a.mp3"},
			},
		},
		LevelHistogram: []review.LevelCount{{Level: 2, Count: 1}},
		LearningIDs:    []string{"l1"},
		GeneratedAt:    time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
	}
	svc.EXPECT().BuildReport(gomock.Any(), 500, time.Duration(0)).Return(want, nil)

	got, err := newTestClient(t, svc).BuildReport(context.Background(), 500, 0)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClient_ErrorKinds(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantMsg string
	}{
		{
			name:    "invalid input",
			err:     learning.NewError(learning.ErrInvalidInput, "ids cannot be empty"),
			wantIs:  learning.ErrInvalidInput,
			wantMsg: "ids cannot be empty",
		},
		{
			name:    "not found",
			err:     learning.NewError(learning.ErrNotFound, "learning record(s) not found: a, b"),
			wantIs:  learning.ErrNotFound,
			wantMsg: "learning record(s) not found: a, b",
		},
		{
			name:    "invalid state",
			err:     learning.NewError(learning.ErrInvalidState, "learning record already graduated: a"),
			wantIs:  learning.ErrInvalidState,
			wantMsg: "learning record already graduated: a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mock_service.NewMockService(ctrl)
			svc.EXPECT().Advance(gomock.Any(), []string{"a"}).Return(nil, tt.err)

			_, err := newTestClient(t, svc).Advance(context.Background(), []string{"a"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantIs)
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestClient_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_service.NewMockService(ctrl)
	svc.EXPECT().Advance(gomock.Any(), []string{"a"}).Return(nil, errors.New("database is locked"))

	_, err := newTestClient(t, svc).Advance(context.Background(), []string{"a"})
	require.Error(t, err)
	assert.EqualError(t, err, "response error 500: database is locked")
	assert.False(t, errors.Is(err, learning.ErrInvalidInput))
}

func TestClient_ServerUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	client := NewClient(url, time.Second)
	defer client.Close()

	_, err := client.Due(context.Background(), 10, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "httpClient.Get >")
}
