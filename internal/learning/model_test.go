package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_Value(t *testing.T) {
	got, err := Path{1, 1, 2, 3}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[1,1,2,3]", got)

	got, err = Path(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}

func TestPath_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     interface{}
		want    Path
		wantErr bool
	}{
		{name: "string", src: "[1,1,2]", want: Path{1, 1, 2}},
		{name: "bytes", src: []byte("[5,7]"), want: Path{5, 7}},
		{name: "null", src: nil, want: nil},
		{name: "malformed", src: "[1,", wantErr: true},
		{name: "unsupported type", src: int64(3), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Path
			err := got.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecord_WaitDays(t *testing.T) {
	path := LevelUpPath(DefaultMaxLevel)
	assert.Equal(t, 1, Record{Level: 0, LevelUpPath: path}.WaitDays())
	assert.Equal(t, 13, Record{Level: 11, LevelUpPath: path}.WaitDays())
	assert.Equal(t, 574, Record{Level: 19, LevelUpPath: path}.WaitDays())
	assert.Equal(t, 0, Record{Level: 20, LevelUpPath: path}.WaitDays())
	assert.Equal(t, 0, Record{Level: -1, LevelUpPath: path}.WaitDays())
}
