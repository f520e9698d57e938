package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"DatasetScope/internal/domain/model"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "text", want: FormatText},
		{in: "JSON", want: FormatJSON},
		{in: " yaml ", want: FormatYAML},
		{in: "", want: FormatText},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerator_Text(t *testing.T) {
	generator := NewGenerator(FormatText)
	var buf strings.Builder

	require.NoError(t, generator.WriteHeader(&buf, "/data/csv_files/test"))
	require.NoError(t, generator.WriteFiles(&buf, model.Listing{
		Dir:   "/data/csv_files/test",
		Files: []string{"/data/csv_files/test/a.csv", "/data/csv_files/test/b.csv"},
	}))

	want := "TEST_DIR: /data/csv_files/test\n" +
		"/data/csv_files/test/a.csv\n" +
		"/data/csv_files/test/b.csv\n"
	assert.Equal(t, want, buf.String())
}

func TestGenerator_TextEmpty(t *testing.T) {
	generator := NewGenerator("")
	var buf strings.Builder

	require.NoError(t, generator.WriteHeader(&buf, "/data/csv_files/test"))
	require.NoError(t, generator.WriteFiles(&buf, model.Listing{Dir: "/data/csv_files/test"}))

	assert.Equal(t, "TEST_DIR: /data/csv_files/test\n", buf.String())
}

func TestGenerator_JSON(t *testing.T) {
	generator := NewGenerator(FormatJSON)
	var buf strings.Builder

	require.NoError(t, generator.WriteHeader(&buf, "/d"))
	assert.Empty(t, buf.String(), "JSON形式ではヘッダ行を出力しない")

	require.NoError(t, generator.WriteFiles(&buf, model.Listing{Dir: "/d"}))

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &got))
	assert.Equal(t, "/d", got["dir"])
	assert.Equal(t, []any{}, got["files"])
}

func TestGenerator_YAML(t *testing.T) {
	generator := NewGenerator(FormatYAML)
	var buf strings.Builder

	require.NoError(t, generator.WriteFiles(&buf, model.Listing{
		Dir:   "/d",
		Files: []string{"/d/a.csv"},
	}))

	var got model.Listing
	require.NoError(t, yaml.Unmarshal([]byte(buf.String()), &got))
	assert.Equal(t, model.Listing{Dir: "/d", Files: []string{"/d/a.csv"}}, got)
}
