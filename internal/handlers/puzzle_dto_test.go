package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenerateParams(t *testing.T) {
	t.Parallel()

	query, err := url.ParseQuery("difficulty=60&seed=12345&unknown=x")
	require.NoError(t, err)

	params, err := ParseGenerateParams(query)
	require.NoError(t, err)
	assert.Equal(t, 60.0, params.Difficulty)
	require.NotNil(t, params.Seed)
	assert.Equal(t, int64(12345), *params.Seed)
}

func TestParseGenerateParamsRequiresDifficulty(t *testing.T) {
	t.Parallel()

	query, err := url.ParseQuery("seed=1")
	require.NoError(t, err)

	_, err = ParseGenerateParams(query)
	assert.Error(t, err)
}

func TestParseMoveDTO(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		wantErr bool
		want    MoveDTO
	}{
		{
			name:  "set",
			query: "op=set&row=3&col=4&digit=7",
			want:  MoveDTO{Op: "set", Row: 3, Col: 4, Digit: 7},
		},
		{
			name:  "clear",
			query: "op=clear&row=0&col=8",
			want:  MoveDTO{Op: "clear", Row: 0, Col: 8},
		},
		{
			name:    "set without digit",
			query:   "op=set&row=1&col=1",
			wantErr: true,
		},
		{
			name:    "unknown op",
			query:   "op=swap&row=1&col=1",
			wantErr: true,
		},
		{
			name:    "missing row",
			query:   "op=clear&col=1",
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			query, err := url.ParseQuery(test.query)
			require.NoError(t, err)

			dto, err := ParseMoveDTO(query)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, dto)
		})
	}
}
