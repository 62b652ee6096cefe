package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"12:30", 750, false},
		{"23:59", 1439, false},
		{"24:00", 1440, false},
		{"9:00", 0, true},
		{"09:60", 0, true},
		{"25:00", 0, true},
		{"24:01", 0, true},
		{"ab:cd", 0, true},
		{"09-00", 0, true},
		{"", 0, true},
		{"09:00:00", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "16:30", FormatClock(990))
	assert.Equal(t, "23:59", FormatClock(1439))
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want Interval
	}{
		{"overlap", Interval{540, 1020}, Interval{600, 1080}, Interval{600, 1020}},
		{"contained", Interval{540, 1020}, Interval{600, 660}, Interval{600, 660}},
		{"identical", Interval{540, 1020}, Interval{540, 1020}, Interval{540, 1020}},
		{"disjoint", Interval{540, 600}, Interval{660, 720}, Interval{}},
		{"touching is empty", Interval{540, 600}, Interval{600, 660}, Interval{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Intersect(tt.a, tt.b))
			assert.Equal(t, tt.want, Intersect(tt.b, tt.a))
		})
	}
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Interval{540, 600}.Overlaps(Interval{570, 630}))
	assert.False(t, Interval{540, 600}.Overlaps(Interval{600, 660}))
	assert.False(t, Interval{540, 600}.Overlaps(Interval{660, 720}))
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		in   []Interval
		want []Interval
	}{
		{"empty", nil, nil},
		{"single", []Interval{{540, 600}}, []Interval{{540, 600}}},
		{"overlapping", []Interval{{540, 620}, {600, 700}}, []Interval{{540, 700}}},
		{"touching", []Interval{{540, 600}, {600, 700}}, []Interval{{540, 700}}},
		{"disjoint keeps order", []Interval{{700, 760}, {540, 600}}, []Interval{{540, 600}, {700, 760}}},
		{"drops empty", []Interval{{600, 600}, {540, 560}}, []Interval{{540, 560}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.in))
		})
	}
}

func TestSubtract(t *testing.T) {
	base := Interval{540, 1020} // 09:00-17:00

	tests := []struct {
		name     string
		removals []Interval
		want     []Interval
	}{
		{"no removals is identity", nil, []Interval{base}},
		{"middle removal splits", []Interval{{720, 780}}, []Interval{{540, 720}, {780, 1020}}},
		{"non-overlapping is no-op", []Interval{{60, 120}}, []Interval{base}},
		{"leading edge", []Interval{{480, 600}}, []Interval{{600, 1020}}},
		{"trailing edge", []Interval{{960, 1100}}, []Interval{{540, 960}}},
		{"full cover empties", []Interval{{0, 1440}}, nil},
		{"two holes", []Interval{{600, 660}, {780, 840}}, []Interval{{540, 600}, {660, 780}, {840, 1020}}},
		{"overlapping removals merge first", []Interval{{600, 700}, {660, 760}}, []Interval{{540, 600}, {760, 1020}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Subtract(base, tt.removals))
		})
	}
}

func TestSubtractAll(t *testing.T) {
	bases := []Interval{{540, 720}, {780, 1020}}
	removals := []Interval{{600, 840}}
	want := []Interval{{540, 600}, {840, 1020}}
	assert.Equal(t, want, SubtractAll(bases, removals))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, Interval{0, 1440}, Interval{-30, 1500}.Clamp())
	assert.Equal(t, Interval{540, 600}, Interval{540, 600}.Clamp())
}
