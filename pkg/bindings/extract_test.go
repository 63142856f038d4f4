package bindings

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/joymap/pkg/errors"
	"github.com/arthur-debert/joymap/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDescription(t *testing.T) {
	tests := []struct {
		name string
		desc string
		opts Options
		want []Pair
	}{
		{
			name: "single pair",
			desc: "B1|Fire Cannon",
			want: []Pair{{"B1", "Fire Cannon"}},
		},
		{
			name: "several pairs",
			desc: "B1|Fire|B2|Flaps|B3|Gear",
			want: []Pair{{"B1", "Fire"}, {"B2", "Flaps"}, {"B3", "Gear"}},
		},
		{
			name: "trailing token maps to empty",
			desc: "B1|Fire|B1_S",
			want: []Pair{{"B1", "Fire"}, {"B1_S", ""}},
		},
		{
			name: "explicit empty value",
			desc: "B1|Fire Cannon|B1_S|",
			want: []Pair{{"B1", "Fire Cannon"}, {"B1_S", ""}},
		},
		{
			name: "lone token",
			desc: "B7",
			want: []Pair{{"B7", ""}},
		},
		{
			name: "empty description",
			desc: "",
			want: nil,
		},
		{
			name: "whitespace description",
			desc: "  \t ",
			want: nil,
		},
		{
			name: "values are verbatim",
			desc: " B1 | Fire ",
			want: []Pair{{" B1 ", " Fire "}},
		},
		{
			name: "empty segments are kept",
			desc: "B1||B2|x",
			want: []Pair{{"B1", ""}, {"B2", "x"}},
		},
		{
			name: "trim strips segments",
			desc: "  B1 | Fire | B2  ",
			opts: Options{Trim: true},
			want: []Pair{{"B1", "Fire"}, {"B2", ""}},
		},
		{
			name: "trim drops empty tokens",
			desc: "B1|Fire| |orphan",
			opts: Options{Trim: true},
			want: []Pair{{"B1", "Fire"}},
		},
		{
			name: "custom delimiter",
			desc: "B1;Fire;B2;Flaps|Up",
			opts: Options{Delimiter: ";"},
			want: []Pair{{"B1", "Fire"}, {"B2", "Flaps|Up"}},
		},
		{
			name: "multi character delimiter",
			desc: "B1::Fire::B2",
			opts: Options{Delimiter: "::"},
			want: []Pair{{"B1", "Fire"}, {"B2", ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDescription(tt.desc, tt.opts)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract(t *testing.T) {
	t.Run("well formed pairs give one entry each", func(t *testing.T) {
		profile := testutil.NewProfile("T.16000M").
			Button("1", "B1|Fire|B2|Flaps").
			Axis("1", "AX1|Roll").
			String()

		m, err := LoadBytes([]byte(profile), DefaultOptions())
		require.NoError(t, err)

		assert.Equal(t, TokenMapping{"B1": "Fire", "B2": "Flaps", "AX1": "Roll"}, m)
	})

	t.Run("odd segment count blanks the last token", func(t *testing.T) {
		profile := testutil.NewProfile("T.16000M").
			Button("1", "B1|Fire Cannon|B1_S|").
			Button("2", "B2|Gear|B2_S").
			String()

		m, err := LoadBytes([]byte(profile), DefaultOptions())
		require.NoError(t, err)

		assert.Equal(t, "Fire Cannon", m["B1"])
		assert.Equal(t, "", m["B1_S"])
		assert.Equal(t, "Gear", m["B2"])
		v, ok := m["B2_S"]
		assert.True(t, ok)
		assert.Equal(t, "", v)
	})

	t.Run("missing and empty descriptions contribute nothing", func(t *testing.T) {
		profile := testutil.NewProfile("T.16000M").
			Button("1", "").
			Bare("button", "2").
			Bare("hat", "1").
			String()

		m, err := LoadBytes([]byte(profile), DefaultOptions())
		require.NoError(t, err)
		assert.Empty(t, m)
	})

	t.Run("later definitions win", func(t *testing.T) {
		profile := testutil.NewProfile("T.16000M").
			Button("1", "B1|First").
			Button("2", "B1|Second").
			String()

		m, err := LoadBytes([]byte(profile), DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, TokenMapping{"B1": "Second"}, m)
	})

	t.Run("any element may carry a description", func(t *testing.T) {
		doc := testutil.ParseDocument(t, `<profile description="ROOT|Top">
  <devices><device name="x" description="DEV|Stick"/></devices>
</profile>`)

		m := Extract(doc, DefaultOptions())
		assert.Equal(t, TokenMapping{"ROOT": "Top", "DEV": "Stick"}, m)
	})

	t.Run("custom attribute", func(t *testing.T) {
		doc := testutil.ParseDocument(t, `<profile><button id="1" label="B1|Fire" description="B9|Ignored"/></profile>`)

		m := Extract(doc, Options{Attribute: "label"})
		assert.Equal(t, TokenMapping{"B1": "Fire"}, m)
	})

	t.Run("escaped characters are decoded", func(t *testing.T) {
		doc := testutil.ParseDocument(t, `<profile><button description="B1|Fire &amp; Forget|B2|&lt;Gear&gt;"/></profile>`)

		m := Extract(doc, DefaultOptions())
		assert.Equal(t, "Fire & Forget", m["B1"])
		assert.Equal(t, "<Gear>", m["B2"])
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads profile from disk", func(t *testing.T) {
		path := testutil.CreateFile(t, dir, "hotas.xml",
			testutil.NewProfile("T.16000M").Button("1", "B1|Fire").String())

		m, err := Load(path, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, TokenMapping{"B1": "Fire"}, m)
	})

	t.Run("malformed profile is a parse error", func(t *testing.T) {
		path := testutil.CreateFile(t, dir, "broken.xml", `<profile><button description="B1|Fire"></profile`)

		m, err := Load(path, DefaultOptions())
		require.Error(t, err)
		assert.Nil(t, m)
		assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
		assert.Equal(t, "bindings", errors.GetErrorDetails(err)["input"])
	})

	t.Run("second root element is a parse error", func(t *testing.T) {
		profile := testutil.NewProfile("T.16000M").Button("1", "B1|Fire").String()

		m, err := LoadBytes([]byte(profile+`<profile/>`), DefaultOptions())
		require.Error(t, err)
		assert.Nil(t, m)
		assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
		assert.Equal(t, "bindings", errors.GetErrorDetails(err)["input"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.xml"), DefaultOptions())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	})
}
