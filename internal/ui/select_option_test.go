package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectOption(t *testing.T) {
	types := []string{"feat  : A new feature", "fix   : A bug fix", "docs  : Documentation only changes"}

	tests := []struct {
		name         string
		options      []string
		defaultIndex int
		input        string
		want         int
		wantErr      error
		wantOutput   string
	}{
		{
			name:    "pick by number",
			options: types,
			input:   "2\n",
			want:    1,
		},
		{
			name:         "empty input takes the default",
			options:      types,
			defaultIndex: 2,
			input:        "\n",
			want:         2,
			wantOutput:   "Enter a number [3]",
		},
		{
			name:       "out of range is asked again",
			options:    types,
			input:      "7\n3\n",
			want:       2,
			wantOutput: "Please enter a number between 1 and 3",
		},
		{
			name:       "text is asked again",
			options:    types,
			input:      "feat\n1\n",
			want:       0,
			wantOutput: "Please enter a number between 1 and 3",
		},
		{
			name:    "wide option names",
			options: []string{"English (en)", "中文（简体） (zh)"},
			input:   "2\n",
			want:    1,
		},
		{
			name:    "end of input",
			options: types,
			input:   "",
			want:    -1,
			wantErr: io.EOF,
		},
		{
			name:    "no options",
			options: nil,
			input:   "1\n",
			want:    -1,
			wantErr: ErrNoOptions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := &bytes.Buffer{}

			got, err := SelectOption("Select the type of change:", tt.options, tt.defaultIndex, strings.NewReader(tt.input), output)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.want, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			assert.Contains(t, output.String(), "Select the type of change:")
			for _, option := range tt.options {
				assert.Contains(t, output.String(), option)
			}
			if tt.wantOutput != "" {
				assert.Contains(t, output.String(), tt.wantOutput)
			}
		})
	}
}

func TestSelectOption_DefaultIndexOutOfRange(t *testing.T) {
	options := []string{"api", "ui"}

	for _, def := range []int{-1, 2, 10} {
		got, err := SelectOption("Scope:", options, def, strings.NewReader("\n"), &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, 0, got, "default %d should fall back to the first option", def)
	}
}
