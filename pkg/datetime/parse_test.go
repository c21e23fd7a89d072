package datetime

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/mailru/datetime/pkg/tz"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		layout string
		want   DateTime
	}{
		{
			name:   "date and time",
			input:  "2012-04-21 11:00:00",
			layout: "%Y-%m-%d %H:%M:%S",
			want:   Date(2012, 4, 21).HMS(11, 0, 0).MustBuild(),
		},
		{
			name:   "date only",
			input:  "2012-04-21",
			layout: "%Y-%m-%d",
			want:   Date(2012, 4, 21).MustBuild(),
		},
		{
			name:   "two-digit year past pivot",
			input:  "21.04.12",
			layout: "%d.%m.%y",
			want:   Date(2012, 4, 21).MustBuild(),
		},
		{
			name:   "two-digit year before pivot",
			input:  "21.04.71",
			layout: "%d.%m.%y",
			want:   Date(1971, 4, 21).MustBuild(),
		},
		{
			name:   "fractional seconds",
			input:  "2024-07-04T15:30:45.123456",
			layout: "%Y-%m-%dT%H:%M:%S%.6f",
			want:   Date(2024, 7, 4).HMS(15, 30, 45).Nanos(123_456_000).MustBuild(),
		},
		{
			name:   "short fraction zero extends",
			input:  "2024-07-04T15:30:45.5",
			layout: "%Y-%m-%dT%H:%M:%S%.9f",
			want:   Date(2024, 7, 4).HMS(15, 30, 45).Nanos(500_000_000).MustBuild(),
		},
		{
			name:   "nine-digit fraction",
			input:  "2024-07-04T15:30:45.123456789",
			layout: "%Y-%m-%dT%H:%M:%S%.9f",
			want:   Date(2024, 7, 4).HMS(15, 30, 45).Nanos(123_456_789).MustBuild(),
		},
		{
			name:   "bare nine-digit fraction",
			input:  "2024-07-04T15:30:45123456789",
			layout: "%Y-%m-%dT%H:%M:%S%9f",
			want:   Date(2024, 7, 4).HMS(15, 30, 45).Nanos(123_456_789).MustBuild(),
		},
		{
			name:   "escaped percent",
			input:  "100% 2012-04-21",
			layout: "100%% %Y-%m-%d",
			want:   Date(2012, 4, 21).MustBuild(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, tt.layout)
			require.NoError(t, err)
			require.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseOffset(t *testing.T) {
	utc := Date(2012, 4, 21).HMS(11, 0, 0).MustBuild()

	tests := []struct {
		input      string
		wantUnix   int64
		wantOffset int32
	}{
		{input: "2012-04-21T11:00:00Z", wantUnix: utc.Unix(), wantOffset: 0},
		{input: "2012-04-21T11:00:00+0300", wantUnix: utc.Unix() - 3*3_600, wantOffset: 3 * 3_600},
		{input: "2012-04-21T11:00:00-0400", wantUnix: utc.Unix() + 4*3_600, wantOffset: -4 * 3_600},
		{input: "2012-04-21T11:00:00+0530", wantUnix: utc.Unix() - (5*3_600 + 30*60), wantOffset: 5*3_600 + 30*60},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input, "%Y-%m-%dT%H:%M:%S%z")
			require.NoError(t, err)
			require.Equal(t, tt.wantUnix, got.Unix())

			// wall clock is preserved under the parsed offset
			require.Equal(t, 11, got.Hour())
			require.Equal(t, tz.FixedOffset(tt.wantOffset), got.Timezone())
		})
	}
}

func TestParseAny(t *testing.T) {
	// both free-form shapes of the same instant land on the same point
	a, err := ParseAny("2012-04-21T11:00:00Z")
	require.NoError(t, err)

	b, err := ParseAny("2012-04-21 11:00:00")
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.Equal(t, int64(1335006000), a.Unix())

	tests := []struct {
		input string
		want  DateTime
	}{
		{input: "2024-07-04 15:30:45", want: Date(2024, 7, 4).HMS(15, 30, 45).MustBuild()},
		{input: "2024-07-04 15:30:45.123456", want: Date(2024, 7, 4).HMS(15, 30, 45).Nanos(123_456_000).MustBuild()},
		{input: "2024-07-04 15:30:45.123456789", want: Date(2024, 7, 4).HMS(15, 30, 45).Nanos(123_456_789).MustBuild()},
		{input: "2024-07-04T15:30:45", want: Date(2024, 7, 4).HMS(15, 30, 45).MustBuild()},
		{input: "2024-07-04T15:30:45.123456789", want: Date(2024, 7, 4).HMS(15, 30, 45).Nanos(123_456_789).MustBuild()},
		{input: "2024-07-04 15:30:45Z", want: Date(2024, 7, 4).HMS(15, 30, 45).MustBuild()},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAny(tt.input)
			require.NoError(t, err)
			require.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseAnyNoMatch(t *testing.T) {
	for _, input := range []string{"", "not a date", "21/04/2012", "2012-04-21T11:00"} {
		_, err := ParseAny(input)
		require.ErrorIs(t, err, ErrNoMatchingLayout, "input %q", input)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		layout string
	}{
		{name: "literal mismatch", input: "2012/04/21", layout: "%Y-%m-%d"},
		{name: "trailing input", input: "2012-04-21 extra", layout: "%Y-%m-%d"},
		{name: "truncated input", input: "2012-04", layout: "%Y-%m-%d"},
		{name: "missing fraction", input: "11:00:00.", layout: "%H:%M:%S%.3f"},
		{name: "bad offset", input: "2012-04-21T11:00:00+03", layout: "%Y-%m-%dT%H:%M:%S%z"},
		{name: "unknown directive", input: "2012", layout: "%q"},
		{name: "modifier on non-f", input: "2012", layout: "%.3Y"},
		{name: "width on non-f", input: "2012", layout: "%9Y"},
		{name: "layout ends in dot", input: "2012-04-21T11:00:00.", layout: "%."},
		{name: "layout ends in width", input: "2012", layout: "%3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, tt.layout)
			require.ErrorIs(t, err, ErrParse)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			require.Equal(t, tt.layout, perr.Layout)
		})
	}
}

func TestParseRangeValidation(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{input: "2012-13-21 11:00:00", want: ErrMonthRange},
		{input: "2023-02-29 11:00:00", want: ErrDayRange},
		{input: "2012-04-21 24:00:00", want: ErrHourRange},
		{input: "2012-04-21 11:60:00", want: ErrMinRange},
		{input: "2012-04-21 11:00:61", want: ErrSecRange},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input, "%Y-%m-%d %H:%M:%S")
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseRaw(t *testing.T) {
	raw, err := ParseRaw("2012-04-21 11:30", "%Y-%m-%d %H:%M")
	require.NoError(t, err)

	year, month, day := 2012, 4, 21
	hour, minute := 11, 30
	want := RawDateTime{Year: &year, Month: &month, Day: &day, Hour: &hour, Minute: &minute}

	if diff := cmp.Diff(want, raw); diff != "" {
		t.Errorf("raw fields mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleRequiresDate(t *testing.T) {
	raw, err := ParseRaw("11:00:00", "%H:%M:%S")
	require.NoError(t, err)

	_, err = raw.Assemble()
	require.ErrorIs(t, err, ErrParse)
}

func TestFormatParseRoundTrip(t *testing.T) {
	const layout = "%Y-%m-%dT%H:%M:%S%.9f"

	instants := []DateTime{
		Date(2012, 4, 21).HMS(11, 0, 0).MustBuild(),
		Date(2024, 2, 29).HMS(23, 59, 59).Nanos(999_999_999).MustBuild(),
		Date(1969, 12, 31).HMS(23, 59, 59).Nanos(1).MustBuild(),
		Date(2000, 3, 1).HMS(0, 0, 0).Nanos(123_456_789).MustBuild(),
	}

	for _, d := range instants {
		text, err := d.Format(layout)
		require.NoError(t, err)

		back, err := Parse(text, layout)
		require.NoError(t, err)
		require.True(t, back.Equal(d), "round trip through %q", text)
	}
}
