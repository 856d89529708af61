package i18n

import (
	"io/fs"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huimingz/gitcz/pkg/lang"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		lang lang.Language
		id   string
		data map[string]any
		want string
	}{
		{name: "english", lang: lang.English, id: "commit_created", want: "Commit created"},
		{name: "chinese", lang: lang.ChineseSimplified, id: "commit_created", want: "提交已创建"},
		{name: "template data", lang: lang.English, id: "issue_invalid", data: map[string]any{"Prefix": "JIRA"}, want: "Invalid JIRA issue."},
		{name: "unsupported falls back", lang: lang.Language("fr"), id: "commit_aborted", want: "Commit aborted"},
		{name: "missing id", lang: lang.English, id: "no_such_message", want: "no_such_message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := New(tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.T(tt.id, tt.data))
		})
	}
}

func TestLocalesDefineSameMessages(t *testing.T) {
	read := func(name string) map[string]any {
		data, err := fs.ReadFile(locales, "locales/"+name)
		require.NoError(t, err)
		var messages map[string]any
		_, err = toml.Decode(string(data), &messages)
		require.NoError(t, err)
		return messages
	}

	en := read("active.en.toml")
	zh := read("active.zh.toml")
	require.NotEmpty(t, en)
	for id := range en {
		assert.Contains(t, zh, id)
	}
	assert.Len(t, zh, len(en))
}
