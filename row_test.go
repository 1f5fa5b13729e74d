package progrow

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(options ...StyleOption) *Style {
	return NewStyle(append([]StyleOption{WithColor(false)}, options...)...)
}

func TestRowPercent(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		current, maximum float64
		expected         float64
	}{
		{25, 50, 0.5},
		{2, 3, 0.6666666666666666},
		{23, 100, 0.23},
		{15, 10, 1.5},
		{-1, 4, -0.25},
	}

	for _, tc := range testCases {
		pc, err := NewRow("foo", tc.current, tc.maximum).Percent()
		require.NoError(t, err)
		assert.Equal(t, tc.expected, pc)
	}
}

func TestRowPercentInvalidRange(t *testing.T) {
	t.Parallel()

	_, err := NewRow("foo", 1, 0).Percent()
	require.ErrorIs(t, err, ErrInvalidRange)
	assert.Contains(t, err.Error(), `"foo"`)
}

func TestRowRender(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		row      Row
		layout   *Layout
		style    *Style
		expected string
	}{
		{
			"bar only",
			NewRow("foo", 1, 9), nil, plain(WithWidth(40)),
			"foo ████",
		},
		{
			"fraction",
			NewRow("foo", 1, 9), nil, plain(WithWidth(40), WithFraction(true)),
			"foo ███▍                           1 / 9",
		},
		{
			"percent",
			NewRow("foo", 1, 9), nil, plain(WithWidth(40), WithPercent(true)),
			"foo ███▌                             11%",
		},
		{
			"fraction and percent",
			NewRow("foo", 1, 9), &Layout{}, plain(WithWidth(40), WithFraction(true), WithPercent(true)),
			"foo ██▋                      1 / 9 • 11%",
		},
		{
			"apple harvest",
			NewRow("apple harvest", 23, 100), nil, plain(WithWidth(40)),
			"apple harvest █████▉",
		},
		{
			"custom suffix",
			NewRow("apple harvest", 23, 100), nil,
			plain(WithWidth(60), WithNameSuffix(" progress: "), WithFraction(true), WithPercent(true)),
			"apple harvest progress: ████▊                 23 / 100 • 23%",
		},
		{
			"smoke",
			NewRow("foo", 3, 10), nil, plain(WithWidth(30), WithFraction(true), WithPercent(true)),
			"foo ███▉          3 / 10 • 30%",
		},
		{
			"over one hundred percent",
			NewRow("over", 15, 10), nil, plain(WithWidth(20), WithPercent(true)),
			"over ██████████ 150%",
		},
		{
			"fractional values",
			NewRow("frac", 1.5, 4), nil, plain(WithWidth(30), WithFraction(true)),
			"frac ██████▍           1.5 / 4",
		},
		{
			"no room for the bar",
			NewRow("a very long name indeed", 1, 2), nil,
			plain(WithWidth(20), WithFraction(true), WithPercent(true)),
			"a very long name indeed  1 / 2 • 50%",
		},
		{
			"hand-built layout",
			NewRow("foo", 1, 9),
			&Layout{NameLength: 8, LeftFractionLength: 3, RightFractionLength: 3, PercentLength: 6},
			plain(WithWidth(40), WithFraction(true), WithPercent(true)),
			"foo     █▊                 1 /   9 • 11%",
		},
		{
			"terminal width",
			NewRow("foo", 1, 2), nil, plain(WithTermWidth(func() int { return 14 })),
			"foo █████▏",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			line, err := tc.row.Render(tc.layout, tc.style)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, line)
		})
	}
}

func TestRowRenderColor(t *testing.T) {
	t.Parallel()

	style := NewStyle(WithWidth(40), WithFraction(true), WithPercent(true))
	line, err := NewRow("foo", 1, 9).Render(nil, style)
	require.NoError(t, err)

	expected := "\x1b[33mfoo\x1b[0m " +
		"\x1b[32m██▋" + strings.Repeat(" ", 21) + "\x1b[0m" +
		" \x1b[94m1\x1b[0m / \x1b[94m9\x1b[0m" +
		" • \x1b[36m11%\x1b[0m"
	assert.Equal(t, expected, line)

	unstyled, err := NewRow("foo", 1, 9).Render(nil, plain(WithWidth(40), WithFraction(true), WithPercent(true)))
	require.NoError(t, err)
	assert.Equal(t, unstyled, ansi.Strip(line))
}

func TestRowRenderTrimsTrailingSpace(t *testing.T) {
	t.Parallel()

	line, err := NewRow("foo", 0, 10).Render(nil, plain(WithWidth(40)))
	require.NoError(t, err)
	assert.Equal(t, "foo", line)

	line, err = NewRow("foo", 0, 10).Render(nil, plain(WithWidth(20), WithPercent(true)))
	require.NoError(t, err)
	assert.Equal(t, "foo"+strings.Repeat(" ", 15)+"0%", line)
}

func TestRowRenderInvalidRange(t *testing.T) {
	t.Parallel()

	_, err := NewRow("foo", 1, 0).Render(nil, plain(WithWidth(40)))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestRowRenderLogs(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := NewRow("over", 15, 10).Render(nil, plain(WithWidth(20), WithLogger(logger)))
	require.NoError(t, err)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "over", hook.LastEntry().Data["row"])

	hook.Reset()
	_, err = NewRow("a very long name indeed", 1, 2).Render(nil, plain(WithWidth(10), WithLogger(logger)))
	require.NoError(t, err)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
	assert.Equal(t, 10, hook.LastEntry().Data["width"])
}

func TestRenderName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		color    bool
		suffix   string
		length   int
		expected Segment
	}{
		{"foo", false, "", 0, Segment{"foo", 3}},
		{"foo", false, "doo", 4, Segment{"food", 4}},
		{"foo", false, "", 2, Segment{"fo", 2}},
		{"foo", false, "", 5, Segment{"foo  ", 5}},
		{"foo", false, " ", 0, Segment{"foo ", 4}},
		{"foo", false, "bar", 3, Segment{"foo", 3}},
		{"héllo", false, "!", 4, Segment{"héll", 4}},
		{"foo", true, "", 0, Segment{"\x1b[33mfoo\x1b[0m", 3}},
		{"foo", true, "bar", 4, Segment{"\x1b[33mfoo\x1b[0mb", 4}},
		{"foo", true, "", 2, Segment{"\x1b[33mfo\x1b[0m", 2}},
		{"foo", true, "", 5, Segment{"\x1b[33mfoo\x1b[0m  ", 5}},
	}

	for _, tc := range testCases {
		actual := NewRow(tc.name, 0, 1).RenderName(tc.color, tc.suffix, tc.length)
		assert.Equal(t, tc.expected, actual, "%q + %q in %d", tc.name, tc.suffix, tc.length)
	}
}

func TestRenderFractionParts(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		value    float64
		length   int
		expected Segment
	}{
		{0, 0, Segment{"0", 1}},
		{1, 0, Segment{"1", 1}},
		{1.2, 0, Segment{"1.2", 3}},
		{-3.4, 0, Segment{"-3.4", 4}},
		{1234, 0, Segment{"1,234", 5}},
		{1234567.5, 0, Segment{"1,234,567.5", 11}},
		{7, 3, Segment{"  7", 3}},
		{1234, 3, Segment{"1,234", 5}},
	}

	for _, tc := range testCases {
		left := NewRow("foo", tc.value, tc.value+1).RenderLeftFraction(false, tc.length)
		assert.Equal(t, tc.expected, left)

		right := NewRow("foo", tc.value-1, tc.value).RenderRightFraction(false, tc.length)
		assert.Equal(t, tc.expected, right)
	}
}

func TestRenderFraction(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		color       bool
		prefix, sep string
		left, right int
		expected    Segment
	}{
		{false, "", "", 0, 0, Segment{"01", 2}},
		{false, "=", "/", 0, 0, Segment{"=0/1", 4}},
		{true, "=", "/", 0, 0, Segment{"=\x1b[94m0\x1b[0m/\x1b[94m1\x1b[0m", 4}},
		{false, "=", "/", 3, 2, Segment{"=  0/ 1", 7}},
		{true, "=", "/", 3, 2, Segment{"=\x1b[94m  0\x1b[0m/\x1b[94m 1\x1b[0m", 7}},
	}

	for _, tc := range testCases {
		actual := NewRow("foo", 0, 1).RenderFraction(tc.color, tc.prefix, tc.sep, tc.left, tc.right)
		assert.Equal(t, tc.expected, actual)
	}
}

func TestRenderPercent(t *testing.T) {
	t.Parallel()

	expected := []string{"0%", "9%", "18%", "27%", "36%", "45%", "54%", "63%", "72%", "81%", "90%", "100%"}
	for current, want := range expected {
		pc, err := NewRow("foo", float64(current), 11).RenderPercent(false, "", 0)
		require.NoError(t, err)
		assert.Equal(t, Segment{want, len(want)}, pc)
	}
}

func TestRenderPercentLength(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		current  float64
		color    bool
		prefix   string
		length   int
		expected Segment
	}{
		{1, false, " • ", 0, Segment{" • 11%", 6}},
		{1, false, " • ", 7, Segment{" •  11%", 7}},
		{1, false, " • ", 5, Segment{" • 1%", 5}},
		{1, false, " • ", 2, Segment{" • ", 3}},
		{9, false, " ", 5, Segment{" 100%", 5}},
		{-1, false, "", 0, Segment{"-12%", 4}},
		{0, false, "", 4, Segment{"  0%", 4}},
		{1, true, " ", 5, Segment{" \x1b[36m 11%\x1b[0m", 5}},
	}

	for _, tc := range testCases {
		pc, err := NewRow("foo", tc.current, 9).RenderPercent(tc.color, tc.prefix, tc.length)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, pc)
	}
}

func TestRenderPercentInvalidRange(t *testing.T) {
	t.Parallel()

	_, err := NewRow("foo", 0, 0).RenderPercent(false, "", 0)
	assert.ErrorIs(t, err, ErrInvalidRange)
}
