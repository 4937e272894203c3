package generate

import (
	"errors"
	"math"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashcracky/xkcdpwgen/pkg/random"
	"github.com/hashcracky/xkcdpwgen/pkg/structs"
)

var xkcd = []string{"correct", "horse", "battery", "staple"}

// scripted replays a fixed sequence of draws and records the bounds asked.
type scripted struct {
	t      *testing.T
	values []int
	bounds []int
}

func (s *scripted) IntN(bound int) int {
	s.t.Helper()
	require.NotEmpty(s.t, s.values, "script exhausted (bounds so far %v)", s.bounds)

	v := s.values[0]
	s.values = s.values[1:]
	s.bounds = append(s.bounds, bound)

	require.Less(s.t, v, bound, "scripted value out of range")

	return v
}

func script(t *testing.T, values ...int) *scripted {
	return &scripted{t: t, values: values}
}

func TestGenerateNoInsertions(t *testing.T) {
	src := script(t, 0, 1, 2, 3)

	got, err := Generate(structs.Config{Words: 4}, xkcd, src)
	require.NoError(t, err)
	assert.Equal(t, "correcthorsebatterystaple", got)
	assert.Equal(t, []int{4, 4, 4, 4}, src.bounds)
	assert.Empty(t, src.values)
}

func TestGenerateScripted(t *testing.T) {
	tests := []struct {
		name   string
		cfg    structs.Config
		values []int
		want   string
		bounds []int
	}{
		{
			name:   "capitalize first word",
			cfg:    structs.Config{Words: 2, Caps: 1},
			values: []int{0, 0, 1},
			want:   "Correcthorse",
			bounds: []int{4, 2, 4},
		},
		{
			name:   "caps roll fails then last word takes it",
			cfg:    structs.Config{Words: 2, Caps: 1},
			values: []int{0, 1, 1, 0},
			want:   "correctHorse",
			bounds: []int{4, 2, 4, 1},
		},
		{
			name:   "numbers spread across words",
			cfg:    structs.Config{Words: 2, Numbers: 2},
			values: []int{2, 1, 7, 1, 3, 0, 4},
			want:   "battery7staple4",
			bounds: []int{4, 2, 10, 2, 4, 1, 10},
		},
		{
			name:   "symbols loop on one word",
			cfg:    structs.Config{Words: 1, Symbols: 2},
			values: []int{0, 0, 1, 0, 11},
			want:   "correct!;",
			bounds: []int{4, 1, 12, 1, 12},
		},
		{
			name:   "caps then digits then symbols",
			cfg:    structs.Config{Words: 1, Caps: 1, Numbers: 1, Symbols: 1},
			values: []int{1, 0, 0, 5, 0, 2},
			want:   "Horse5@",
			bounds: []int{4, 1, 1, 10, 1, 12},
		},
		{
			name:   "excess caps dropped",
			cfg:    structs.Config{Words: 2, Caps: 5},
			values: []int{0, 1, 1, 0},
			want:   "CorrectHorse",
			bounds: []int{4, 2, 4, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := script(t, tt.values...)

			got, err := Generate(tt.cfg, xkcd, src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.bounds, src.bounds)
			assert.Empty(t, src.values)
		})
	}
}

func TestGenerateEmptyWordList(t *testing.T) {
	_, err := Generate(structs.Config{Words: 1}, nil, script(t))
	require.ErrorIs(t, err, ErrEmptyWordList)

	got, err := Generate(structs.Config{Words: 0, Caps: 2}, nil, script(t))
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestGenerateNonPositiveWords(t *testing.T) {
	for _, n := range []int{0, -1, -10} {
		src := script(t)

		got, err := Generate(structs.Config{Words: n, Caps: 3, Numbers: 3, Symbols: 3}, xkcd, src)
		require.NoError(t, err)
		assert.Equal(t, "", got)
		assert.Empty(t, src.bounds)
	}
}

func TestSegmentsCounts(t *testing.T) {
	configs := []structs.Config{
		{Words: 1},
		{Words: 4},
		{Words: 4, Caps: 2},
		{Words: 3, Caps: 7},
		{Words: 5, Numbers: 3},
		{Words: 2, Numbers: 9, Symbols: 9},
		{Words: 6, Caps: 6, Numbers: 1, Symbols: 4},
		{Words: 10, Caps: 3, Numbers: 2, Symbols: 2},
	}

	for _, cfg := range configs {
		for seed := uint64(0); seed < 50; seed++ {
			segments, err := Segments(cfg, xkcd, random.NewSeeded(seed))
			require.NoError(t, err)
			require.Len(t, segments, cfg.Words)

			var caps, digits, symbols int
			for _, seg := range segments {
				if unicode.IsUpper(rune(seg[0])) {
					caps++
				}

				base := strings.ToLower(strings.TrimRight(seg, "0123456789"+random.Symbols))
				assert.Contains(t, xkcd, base)

				for _, r := range seg {
					switch {
					case unicode.IsDigit(r):
						digits++
					case strings.ContainsRune(random.Symbols, r):
						symbols++
					}
				}
			}

			assert.Equal(t, min(cfg.Caps, cfg.Words), caps, "cfg %+v seed %d", cfg, seed)
			assert.Equal(t, cfg.Numbers, digits, "cfg %+v seed %d", cfg, seed)
			assert.Equal(t, cfg.Symbols, symbols, "cfg %+v seed %d", cfg, seed)
		}
	}
}

func TestGenerateMatchesSegments(t *testing.T) {
	cfg := structs.Config{Words: 5, Caps: 2, Numbers: 2, Symbols: 1}

	segments, err := Segments(cfg, xkcd, random.NewSeeded(99))
	require.NoError(t, err)

	got, err := Generate(cfg, xkcd, random.NewSeeded(99))
	require.NoError(t, err)
	assert.Equal(t, strings.Join(segments, ""), got)
}

func TestGenerateRepeatable(t *testing.T) {
	cfg := structs.Config{Words: 4, Caps: 1, Numbers: 1, Symbols: 1}
	src := random.NewSeeded(5)

	// The config budget is not consumed between calls.
	for i := 0; i < 20; i++ {
		got, err := Generate(cfg, xkcd, src)
		require.NoError(t, err)

		var digits int
		for _, r := range got {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		assert.Equal(t, 1, digits)
	}

	assert.Equal(t, structs.Config{Words: 4, Caps: 1, Numbers: 1, Symbols: 1}, cfg)
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"horse":   "Horse",
		"Horse":   "Horse",
		"hORSE":   "HORSE",
		"éclair":  "Éclair",
		"x":       "X",
		"o'clock": "O'clock",
	}

	for in, want := range tests {
		assert.Equal(t, want, capitalize(in), "capitalize(%q)", in)
	}
}

var errStop = errors.New("stop drawing")

// limited draws zeros until its allowance runs out, then panics with errStop.
type limited struct {
	left int
}

func (l *limited) IntN(int) int {
	if l.left == 0 {
		panic(errStop)
	}
	l.left--

	return 0
}

func TestSegmentsHugeWordCount(t *testing.T) {
	src := &limited{left: 10}

	assert.PanicsWithValue(t, errStop, func() {
		_, _ = Segments(structs.Config{Words: math.MaxInt}, xkcd, src)
	})
	assert.Equal(t, 0, src.left)
}
