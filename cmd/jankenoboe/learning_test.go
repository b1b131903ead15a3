package main

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jankenoboe/jankenoboe/internal/config"
	"github.com/jankenoboe/jankenoboe/internal/learning"
	"github.com/jankenoboe/jankenoboe/internal/review"
	"github.com/jankenoboe/jankenoboe/internal/server"
	"github.com/jankenoboe/jankenoboe/internal/service"
	"github.com/jankenoboe/jankenoboe/internal/testutil"
)

const twoDays = 2 * 86400

func TestLearningCommands_Flags(t *testing.T) {
	tests := []struct {
		name  string
		flags map[string]string
	}{
		{
			name:  "learning-due",
			flags: map[string]string{"limit": "100", "offset-seconds": "0"},
		},
		{
			name:  "learning-batch",
			flags: map[string]string{"song-ids": "", "relearn-song-ids": "", "relearn-start-level": "7"},
		},
		{
			name:  "learning-song-levelup-ids",
			flags: map[string]string{"ids": ""},
		},
		{
			name:  "learning-song-review",
			flags: map[string]string{"output": "", "limit": "500", "offset-seconds": "0"},
		},
		{
			name:  "learning-by-song-ids",
			flags: map[string]string{"song-ids": ""},
		},
	}

	root := newRootCommand()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, err := root.Find([]string{tt.name})
			require.NoError(t, err)
			assert.Equal(t, tt.name, cmd.Use)
			assert.NotNil(t, cmd.RunE)
			for name, want := range tt.flags {
				flag := cmd.Flags().Lookup(name)
				require.NotNil(t, flag, name)
				assert.Equal(t, want, flag.DefValue, name)
			}
		})
	}
}

func TestLearningCommands_ConfigError(t *testing.T) {
	cfgPath := setupBrokenConfigFile(t)

	for _, args := range [][]string{
		{"learning-due"},
		{"learning-batch", "--song-ids", "s1"},
		{"learning-song-levelup-ids", "--ids", "l1"},
		{"learning-song-review", "--output", filepath.Join(t.TempDir(), "review.html")},
		{"learning-by-song-ids", "--song-ids", "s1"},
		{"migrate"},
	} {
		t.Run(args[0], func(t *testing.T) {
			_, err := executeCommand(t, append(args, "--config", cfgPath)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "load config")
		})
	}
}

func TestLearningSongReview_RequiresOutput(t *testing.T) {
	cfgPath := testutil.SetupTestConfig(t, t.TempDir())

	_, err := executeCommand(t, "learning-song-review", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "output" not set`)
}

func TestLearningCommands_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	db := testutil.OpenSQLiteDB(t, filepath.Join(tmpDir, "jankenoboe.db"))

	artistID := testutil.CreateArtist(t, db, "Artist")
	songID := testutil.CreateSong(t, db, "Song", artistID)
	showID := testutil.CreateShow(t, db, "Show")
	testutil.LinkShowSong(t, db, showID, songID, "https://example.com/op.mp4", 1)

	out, err := executeCommand(t, "learning-batch", "--config", cfgPath, "--song-ids", " "+songID+" , ,"+songID)
	require.NoError(t, err)
	var enrolled learning.EnrollResult
	require.NoError(t, json.Unmarshal([]byte(out), &enrolled))
	require.Len(t, enrolled.CreatedIDs, 1)
	assert.Empty(t, enrolled.SkippedSongIDs)
	learningID := enrolled.CreatedIDs[0]

	out, err = executeCommand(t, "learning-batch", "--config", cfgPath, "--song-ids", songID)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &enrolled))
	assert.Empty(t, enrolled.CreatedIDs)
	assert.Equal(t, []string{songID}, enrolled.SkippedSongIDs)

	// Level 0 records wait five minutes after enrollment.
	out, err = executeCommand(t, "learning-due", "--config", cfgPath)
	require.NoError(t, err)
	var due listOutput[learning.DueRecord]
	require.NoError(t, json.Unmarshal([]byte(out), &due))
	assert.Equal(t, 0, due.Count)
	assert.Empty(t, due.Results)

	out, err = executeCommand(t, "learning-due", "--config", cfgPath, "--offset-seconds", "600")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &due))
	require.Equal(t, 1, due.Count)
	assert.Equal(t, learningID, due.Results[0].ID)
	assert.Equal(t, "Song", due.Results[0].SongName)

	out, err = executeCommand(t, "learning-song-levelup-ids", "--config", cfgPath, "--ids", learningID)
	require.NoError(t, err)
	var advanced learning.AdvanceResult
	require.NoError(t, json.Unmarshal([]byte(out), &advanced))
	assert.Equal(t, learning.AdvanceResult{LeveledUpCount: 1, GraduatedCount: 0, TotalProcessed: 1}, advanced)

	out, err = executeCommand(t, "learning-by-song-ids", "--config", cfgPath, "--song-ids", songID)
	require.NoError(t, err)
	var bySong listOutput[learning.SongRecord]
	require.NoError(t, json.Unmarshal([]byte(out), &bySong))
	require.Equal(t, 1, bySong.Count)
	assert.Equal(t, 1, bySong.Results[0].Level)
	assert.Equal(t, 1, bySong.Results[0].WaitDays)
	assert.False(t, bySong.Results[0].Due)

	reportPath := filepath.Join(tmpDir, "reports", "review.json")
	out, err = executeCommand(t, "learning-song-review", "--config", cfgPath,
		"--output", reportPath, "--offset-seconds", strconv.Itoa(twoDays))
	require.NoError(t, err)
	var reviewed reviewOutput
	require.NoError(t, json.Unmarshal([]byte(out), &reviewed))
	assert.Equal(t, reviewOutput{File: reportPath, Count: 1, LearningIDs: []string{learningID}}, reviewed)

	content, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var written review.Report
	require.NoError(t, json.Unmarshal(content, &written))
	require.Len(t, written.Entries, 1)
	assert.Equal(t, "Artist", written.Entries[0].ArtistName)
	assert.Equal(t, []string{"Show"}, written.Entries[0].ShowNames)
	assert.Equal(t, []string{"https://example.com/op.mp4"}, written.Entries[0].MediaURLs)

	_, err = executeCommand(t, "learning-song-levelup-ids", "--config", cfgPath, "--ids", learningID+",missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, learning.ErrNotFound)
	assert.EqualError(t, err, "learning record(s) not found: missing")
}

func TestLearningCommands_Formats(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	db := testutil.OpenSQLiteDB(t, filepath.Join(tmpDir, "jankenoboe.db"))
	songID := testutil.CreateSong(t, db, "Song", testutil.CreateArtist(t, db, "Artist"))
	learningID := testutil.CreateLearning(t, db, songID, testutil.WithLevel(2), testutil.WithLastLevelUpAt(1))

	t.Run("yaml", func(t *testing.T) {
		out, err := executeCommand(t, "--format", "yaml", "learning-due", "--config", cfgPath)
		require.NoError(t, err)

		var due listOutput[learning.DueRecord]
		require.NoError(t, yaml.Unmarshal([]byte(out), &due))
		require.Equal(t, 1, due.Count)
		assert.Equal(t, learningID, due.Results[0].ID)
		assert.Equal(t, 2, due.Results[0].Level)
		assert.Contains(t, out, "song_name: Song\n")
	})

	t.Run("text due", func(t *testing.T) {
		out, err := executeCommand(t, "--format", "text", "learning-due", "--config", cfgPath)
		require.NoError(t, err)
		assert.Equal(t, "1 learning record(s) due\n  "+learningID+"  Song  level 2  wait 1 day(s)\n", out)
	})

	t.Run("text by song", func(t *testing.T) {
		out, err := executeCommand(t, "--format", "text", "learning-by-song-ids", "--config", cfgPath, "--song-ids", songID)
		require.NoError(t, err)
		assert.Equal(t, "1 learning record(s)\n  "+learningID+"  Song  level 2  due\n", out)
	})

	t.Run("text batch", func(t *testing.T) {
		out, err := executeCommand(t, "--format", "text", "learning-batch", "--config", cfgPath, "--song-ids", songID)
		require.NoError(t, err)
		assert.Equal(t, "skipped: "+songID+"\n", out)
	})
}

func TestLearningBatch_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)

	tests := []struct {
		name    string
		args    []string
		wantIs  error
		wantErr string
	}{
		{
			name:    "no song ids",
			args:    []string{"--song-ids", " , "},
			wantIs:  learning.ErrInvalidInput,
			wantErr: "song_ids cannot be empty",
		},
		{
			name:    "relearn level out of range",
			args:    []string{"--song-ids", "s1", "--relearn-start-level", "20"},
			wantIs:  learning.ErrInvalidInput,
			wantErr: "relearn_start_level must be between 0 and 19: 20",
		},
		{
			name:    "unknown song",
			args:    []string{"--song-ids", "missing-song"},
			wantIs:  learning.ErrNotFound,
			wantErr: "song not found: missing-song",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, append([]string{"learning-batch", "--config", cfgPath}, tt.args...)...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantIs)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestLearningCommands_RemoteServer(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	songID := testutil.CreateSong(t, db, "Song", testutil.CreateArtist(t, db, "Artist"))

	learningCfg := config.LearningConfig{MaxLevel: 20, RelearnStartLevel: 7, DueLimit: 100, ReviewLimit: 500}
	ts := httptest.NewServer(server.NewHandler(service.NewLocal(db, learningCfg), learningCfg))
	t.Cleanup(ts.Close)

	cfgPath := testutil.SetupTestConfigWithServer(t, t.TempDir(), ts.URL)

	out, err := executeCommand(t, "learning-batch", "--config", cfgPath, "--song-ids", songID)
	require.NoError(t, err)
	var enrolled learning.EnrollResult
	require.NoError(t, json.Unmarshal([]byte(out), &enrolled))
	require.Len(t, enrolled.CreatedIDs, 1)
	assert.Equal(t, 1, testutil.CountLearning(t, db, songID))

	_, err = executeCommand(t, "learning-song-levelup-ids", "--config", cfgPath, "--ids", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, learning.ErrNotFound)
}
