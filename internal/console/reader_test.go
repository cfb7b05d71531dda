package console

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(src LineSource) (*Prompter, *bytes.Buffer, *[]string) {
	var out bytes.Buffer
	var rejected []string
	p := NewPrompter(src, &out, PlainStyles(&out))
	p.OnParseError = func(kind string) { rejected = append(rejected, kind) }
	return p, &out, &rejected
}

func TestReadInt(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected int
		rejects  int
	}{
		{"Plain", []string{"8"}, 8, 0},
		{"Surrounding whitespace", []string{"  3\t"}, 3, 0},
		{"Explicit sign", []string{"+5"}, 5, 0},
		{"Negative", []string{"-1"}, -1, 0},
		{"Text then number", []string{"abc", "2"}, 2, 1},
		{"Float rejected", []string{"1.5", "1"}, 1, 1},
		{"Empty rejected", []string{"", " ", "0"}, 0, 2},
		{"Beyond 32 bits rejected", []string{"2147483648", "2147483647"}, math.MaxInt32, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out, rejected := newTestPrompter(newScript(tt.lines...))

			got, err := p.ReadInt("Choose an option: ")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Len(t, *rejected, tt.rejects)
			assert.Equal(t, tt.rejects, strings.Count(out.String(), invalidIntMessage))
			assert.Equal(t, tt.rejects+1, strings.Count(out.String(), "Choose an option: "))
		})
	}
}

func TestReadFloat(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected float64
		rejects  int
	}{
		{"Integer", []string{"12"}, 12, 0},
		{"Decimal", []string{"12.5"}, 12.5, 0},
		{"Negative", []string{" -3 "}, -3, 0},
		{"Exponent", []string{"1e3"}, 1000, 0},
		{"Leading dot", []string{".5"}, 0.5, 0},
		{"Infinity", []string{"Inf"}, math.Inf(1), 0},
		{"Overflow saturates", []string{"1e400"}, math.Inf(1), 0},
		{"Text then number", []string{"abc", "x1", "7"}, 7, 2},
		{"Trailing garbage", []string{"3.0.1", "3"}, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out, rejected := newTestPrompter(newScript(tt.lines...))

			got, err := p.ReadFloat("Enter first number: ")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Len(t, *rejected, tt.rejects)
			assert.Equal(t, tt.rejects, strings.Count(out.String(), invalidFloatMessage))
			for _, kind := range *rejected {
				assert.Equal(t, "float", kind)
			}
		})
	}
}

func TestReadFloat_NaN(t *testing.T) {
	p, _, _ := newTestPrompter(newScript("NaN"))
	got, err := p.ReadFloat("Enter base: ")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestReaders_EndOfInput(t *testing.T) {
	p, _, _ := newTestPrompter(newScript("abc"))
	_, err := p.ReadInt("Choose an option: ")
	assert.ErrorIs(t, err, ErrEndOfInput)

	p, _, _ = newTestPrompter(newScript())
	_, err = p.ReadFloat("Enter base: ")
	assert.ErrorIs(t, err, ErrEndOfInput)
}

func TestReaders_SourceError(t *testing.T) {
	boom := errors.New("terminal gone")
	p, _, _ := newTestPrompter(&failingSource{scriptSource: newScript(), err: boom})

	_, err := p.ReadFloat("Enter base: ")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, ErrEndOfInput))
}
