package lexicon

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kakavo-dev/vibrato-sudachidict/internal/converter/record"
	"github.com/kakavo-dev/vibrato-sudachidict/internal/converter/stats"
)

func convert(t *testing.T, input string, opts ...Option) (string, stats.Stats) {
	t.Helper()

	var (
		out bytes.Buffer
		st  stats.Stats
	)
	require.NoError(t, Convert(strings.NewReader(input), &out, &st, opts...))
	return out.String(), st
}

func TestConvert_VerbRow(t *testing.T) {
	t.Parallel()

	out, st := convert(t, "語,1,2,3,原形,動詞,普通,*,*,五段-ワア行,終止形-一般,ヨミ,余剰\n")

	assert.Equal(t, "語,1,2,3,動詞,自立,*,*,五段・ワ行ウ音便,基本形,原形,ヨミ,ヨミ\n", out)
	assert.Equal(t, stats.Stats{Written: 1, NormalizedPOSRows: 1}, st)
}

func TestConvert_NegativeConnIDsAndMissingReading(t *testing.T) {
	t.Parallel()

	input := "捨てる,-1,0,1,捨てる,動詞,一般,*,*,下一段-タ行,終止形-一般,ステル\n" +
		"採用,0,0,1,採用,名詞,普通名詞,サ変可能,*,*,*\n"

	out, st := convert(t, input)

	assert.Equal(t, "採用,0,0,1,名詞,一般,*,*,*,*,採用,*,*\n", out)
	assert.Equal(t, 1, st.SkippedNegativeConnIDs)
	assert.Equal(t, 1, st.Written)
	assert.Equal(t, 1, st.NormalizedPOSRows)
	assert.Zero(t, st.FallbackCTypeRows)
	assert.Zero(t, st.FallbackCFormRows)
}

func TestConvert_NegativeIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		left  string
		right string
	}{
		{"left negative", "-1", "5"},
		{"right negative", "5", "-3"},
		{"both negative", "-1", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			row := strings.Join([]string{"語", tt.left, tt.right, "0", "語", "名詞", "*", "*", "*", "*", "*"}, ",") + "\n"
			out, st := convert(t, row+row)

			assert.Empty(t, out)
			assert.Equal(t, stats.Stats{SkippedNegativeConnIDs: 2}, st)
		})
	}
}

func TestConvert_Fallbacks(t *testing.T) {
	t.Parallel()

	input := "来る,5,5,100,来る,動詞,非自立可能,*,*,カ行変格,連用形-一般,キ\n" +
		"だろ,6,6,100,だ,助動詞,*,*,*,助動詞-ダ,意志推量形,ダロ\n" +
		"けり,7,7,100,けり,助動詞,*,*,*,文語助動詞-ケリ,語幹-一般,ケリ\n"

	out, st := convert(t, input)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "来る,5,5,100,動詞,自立,*,*,*,連用形,来る,キ,キ", lines[0])
	assert.Equal(t, "だろ,6,6,100,助動詞,*,*,*,*,未然ウ接続,だ,ダロ,ダロ", lines[1])
	assert.Equal(t, "けり,7,7,100,助動詞,*,*,*,*,*,けり,ケリ,ケリ", lines[2])

	assert.Equal(t, 3, st.Written)
	assert.Equal(t, 3, st.FallbackCTypeRows)
	assert.Equal(t, 1, st.FallbackCFormRows)
	assert.Equal(t, 1, st.NormalizedPOSRows)
}

func TestConvert_UnchangedPOSNotCounted(t *testing.T) {
	t.Parallel()

	_, st := convert(t, "は,1,1,1,は,助詞,格助詞,一般,*,*,*,ハ\n")
	assert.Zero(t, st.NormalizedPOSRows)
	assert.Equal(t, 1, st.Written)
}

func TestConvert_BlankFieldsBecomeStar(t *testing.T) {
	t.Parallel()

	out, _ := convert(t, "記号,1,2,3,  ,補助記号,句点,*,*, , ,  \n")
	assert.Equal(t, "記号,1,2,3,記号,一般,*,*,*,*,*,*,*\n", out)
}

func TestConvert_BlankLinesSkipped(t *testing.T) {
	t.Parallel()

	out, st := convert(t, "\n\nは,1,1,1,は,助詞,格助詞,一般,*,*,*,ハ\n\n")
	assert.Equal(t, "は,1,1,1,助詞,格助詞,一般,*,*,*,は,ハ,ハ\n", out)
	assert.Equal(t, 1, st.Written)
}

func TestConvert_NumericNouns(t *testing.T) {
	t.Parallel()

	input := "三,1,1,1,三,名詞,数詞,*,*,*,*,サン\n"

	out, _ := convert(t, input)
	assert.Equal(t, "三,1,1,1,名詞,一般,*,*,*,*,三,サン,サン\n", out)

	out, st := convert(t, input, WithNumericNouns(true))
	assert.Equal(t, "三,1,1,1,名詞,数,*,*,*,*,三,サン,サン\n", out)
	assert.Equal(t, 1, st.NormalizedPOSRows)
}

func TestConvert_MalformedRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "too few columns",
			input:   "ok,1,1,1,ok,名詞,*,*,*,*,*\nshort,1,1\n",
			wantErr: "invalid lex row at line 2: expected >=11 columns, got 3",
		},
		{
			name:    "bad left id",
			input:   "x,a,1,1,x,名詞,*,*,*,*,*\n",
			wantErr: "failed to parse left_id='a' at line 1",
		},
		{
			name:    "bad right id",
			input:   "x,1,,1,x,名詞,*,*,*,*,*\n",
			wantErr: "failed to parse right_id='' at line 1",
		},
		{
			name:    "bad cost on negative row",
			input:   "x,-1,1,z,x,名詞,*,*,*,*,*\n",
			wantErr: "failed to parse cost='z' at line 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			err := Convert(strings.NewReader(tt.input), &out, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, record.ErrMalformedRow)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestConvert_AccumulatesAcrossCalls(t *testing.T) {
	t.Parallel()

	var (
		out bytes.Buffer
		st  stats.Stats
	)
	row := "は,1,1,1,は,助詞,格助詞,一般,*,*,*,ハ\n"
	require.NoError(t, Convert(strings.NewReader(row), &out, &st))
	require.NoError(t, Convert(strings.NewReader(row+"x,-1,0,0,x,名詞,*,*,*,*,*\n"), &out, &st))

	assert.Equal(t, 2, st.Written)
	assert.Equal(t, 1, st.SkippedNegativeConnIDs)
	assert.Equal(t, 2, strings.Count(out.String(), "\n"))
}

func TestConvert_LeadingSpaceSurfaceIsQuoted(t *testing.T) {
	t.Parallel()

	// csv.Writer quotes fields that begin with a space rune, U+3000 included.
	// Readers of the output see the same field value either way.
	out, st := convert(t, "　,1,1,1,　,空白,*,*,*,*,*,*\n")

	assert.Equal(t, "\"　\",1,1,1,記号,一般,*,*,*,*,*,*,*\n", out)
	assert.Equal(t, 1, st.Written)

	var back bytes.Buffer
	require.NoError(t, Convert(strings.NewReader(out), &back, nil))
	assert.True(t, strings.HasPrefix(back.String(), "\"　\",1,1,1,"), "quoted surface must round-trip")
}
