package breakout

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"
)

var testLimits = Limits{MaxRows: 16, MaxCols: 6, MaxStrength: 6}

func TestParseMapLine(t *testing.T) {
	tests := []struct {
		line string
		want []int
	}{
		{"2,3,4", []int{2, 3, 4}},
		{"2 3 4", []int{2, 3, 4}},
		{"2, 3, 4", []int{2, 3, 4}},
		{"  2\t3   4", []int{2, 3, 4}},
		{"2,3,4,9", []int{2, 3, 4, 9}},
		{"-1,+2,3", []int{-1, 2, 3}},
		{"2,,3", []int{2}},
		{"2,3x4", []int{2, 3}},
		{"x,1,2", nil},
		{"", nil},
		{"99999999999,1,1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := ParseMapLine(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseMapLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseMapSeparatorsEquivalent(t *testing.T) {
	a, err := ParseMap(strings.NewReader("2,3,4\n"), testLimits)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseMap(strings.NewReader("2 3 4\n"), testLimits)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Placements) != 1 || len(b.Placements) != 1 {
		t.Fatalf("placements: %v / %v", a.Placements, b.Placements)
	}
	pa, pb := a.Placements[0], b.Placements[0]
	if pa != pb || pa.Row != 2 || pa.Col != 3 || pa.Strength != 4 {
		t.Errorf("got %+v and %+v, want row 2 col 3 strength 4", pa, pb)
	}
}

func TestParseMapSkipsInvalidLines(t *testing.T) {
	src := strings.Join([]string{
		"0,0,1",
		"20,3,4", // row out of range
		"16,0,1", // one past the last row
		"0,6,1",  // one past the last column
		"-1,0,1",
		"0,0,0", // strength too low
		"0,0,7", // strength too high
		"1,2",   // too few values
		"",      // blank lines are ignored silently
		"garbage",
		"15,5,6",
	}, "\n")

	md, err := ParseMap(strings.NewReader(src), testLimits)
	if err != nil {
		t.Fatalf("ParseMap() failed: %v", err)
	}
	if len(md.Placements) != 2 {
		t.Fatalf("got %d placements, want 2: %+v", len(md.Placements), md.Placements)
	}
	if last := md.Placements[1]; last.Row != 15 || last.Col != 5 || last.Strength != 6 || last.Line != 11 {
		t.Errorf("last placement = %+v", last)
	}
	if len(md.Skipped) != 8 {
		t.Errorf("got %d skipped lines, want 8: %+v", len(md.Skipped), md.Skipped)
	}
	if md.Skipped[0].Line != 2 {
		t.Errorf("first skipped line = %d, want 2", md.Skipped[0].Line)
	}
}

func TestParseMapSkipsOverlongLine(t *testing.T) {
	src := "1,1,1\n" + strings.Repeat("x", 70000) + "\n2,2,2"

	md, err := ParseMap(strings.NewReader(src), testLimits)
	if err != nil {
		t.Fatalf("ParseMap() failed: %v", err)
	}
	if len(md.Placements) != 2 || md.Placements[1].Line != 3 {
		t.Errorf("placements = %+v, want lines 1 and 3", md.Placements)
	}
	if len(md.Skipped) != 1 || md.Skipped[0].Line != 2 {
		t.Fatalf("skipped = %+v, want line 2", md.Skipped)
	}
	if n := len(md.Skipped[0].Text); n > 100 {
		t.Errorf("skipped text kept %d bytes", n)
	}
}

func TestParseMapCRLF(t *testing.T) {
	md, err := ParseMap(strings.NewReader("0,0,1\r\n1,1,2\r\n"), testLimits)
	if err != nil {
		t.Fatalf("ParseMap() failed: %v", err)
	}
	if len(md.Placements) != 2 || len(md.Skipped) != 0 {
		t.Errorf("placements = %+v, skipped = %+v", md.Placements, md.Skipped)
	}
}

func testLoader(files map[string]string) Loader {
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}
	return Loader{FS: fsys, Pattern: "level%d.map", Limits: testLimits}
}

func TestLoaderLoad(t *testing.T) {
	l := testLoader(map[string]string{
		"level1.map": "0,0,1\n",
		"level2.map": "1,1,2\n3,3,3\n",
	})

	md, level, err := l.Load(2)
	if err != nil {
		t.Fatalf("Load(2) failed: %v", err)
	}
	if level != 2 || md.Name != "level2.map" || len(md.Placements) != 2 {
		t.Errorf("Load(2) = %+v, level %d", md, level)
	}
}

func TestLoaderWrapsToFirstLevel(t *testing.T) {
	l := testLoader(map[string]string{
		"level1.map": "0,0,1\n",
		"level2.map": "1,1,2\n",
	})

	md, level, err := l.Load(3)
	if err != nil {
		t.Fatalf("Load(3) failed: %v", err)
	}
	if level != 1 || md.Name != "level1.map" {
		t.Errorf("Load(3) loaded %s as level %d, want level1.map as 1", md.Name, level)
	}
}

func TestLoaderNoMaps(t *testing.T) {
	l := testLoader(map[string]string{"other.txt": "x"})

	for _, level := range []int{1, 4} {
		_, _, err := l.Load(level)
		if !errors.Is(err, ErrNoMaps) {
			t.Errorf("Load(%d) error = %v, want ErrNoMaps", level, err)
		}
	}
}

func TestLoaderLevels(t *testing.T) {
	l := testLoader(map[string]string{
		"level1.map": "",
		"level2.map": "",
		"level4.map": "",
	})
	if got := l.Levels(); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("Levels() = %v, want [1 2]", got)
	}
}

func TestBuiltinMapsParse(t *testing.T) {
	l := Loader{FS: BuiltinMaps(), Pattern: "level%d.map", Limits: testLimits}
	levels := l.Levels()
	if len(levels) < 3 {
		t.Fatalf("built-in levels = %v, want at least 3", levels)
	}
	for _, n := range levels {
		md, _, err := l.Load(n)
		if err != nil {
			t.Fatalf("Load(%d) failed: %v", n, err)
		}
		if len(md.Skipped) != 0 {
			t.Errorf("%s has skipped lines: %+v", md.Name, md.Skipped)
		}
		if len(md.Placements) == 0 {
			t.Errorf("%s places no bricks", md.Name)
		}
	}
}
