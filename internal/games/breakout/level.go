package breakout

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout/internal/config"
)

// ErrNoMaps is returned when not even the first level map exists.
var ErrNoMaps = errors.New("breakout: no level maps found")

//go:embed maps/*.map
var builtinMaps embed.FS

// BuiltinMaps returns the maps compiled into the binary.
func BuiltinMaps() fs.FS {
	sub, err := fs.Sub(builtinMaps, "maps")
	if err != nil {
		panic(err) // the directory is part of the embed pattern
	}
	return sub
}

// Limits bounds what a map line may place.
type Limits struct {
	MaxRows     int
	MaxCols     int
	MaxStrength int
}

// Placement is one brick read from a map.
type Placement struct {
	Row, Col, Strength int
	Line               int // 1-based source line
}

// SkippedLine is a map line that placed nothing.
type SkippedLine struct {
	Line   int
	Text   string
	Reason string
}

// MapData is the parsed content of one map file.
type MapData struct {
	Name       string
	Placements []Placement
	Skipped    []SkippedLine
}

// ParseMapLine extracts the leading integers of a map line.
//
// Each number may be preceded by whitespace and followed by exactly one
// ',' or ' ' that is consumed with it. Extraction stops at the first
// character that does not start a number, so "2,3,4" and "2 3 4" read the
// same while "2,,3" yields only 2.
func ParseMapLine(line string) []int {
	var vals []int
	i := 0
	for {
		for i < len(line) && isSpace(line[i]) {
			i++
		}
		start := i
		if i < len(line) && (line[i] == '+' || line[i] == '-') {
			i++
		}
		digits := i
		for i < len(line) && line[i] >= '0' && line[i] <= '9' {
			i++
		}
		if i == digits {
			return vals
		}
		n, ok := atoi(line[start:i])
		if !ok {
			return vals
		}
		vals = append(vals, n)
		if i < len(line) && (line[i] == ',' || line[i] == ' ') {
			i++
		}
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// atoi parses a signed decimal that fits a 32-bit int.
func atoi(s string) (int, bool) {
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	var n int64
	for _, c := range []byte(s) {
		n = n*10 + int64(c-'0')
		if n > math.MaxInt32+1 {
			return 0, false
		}
	}
	if neg {
		n = -n
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, false
	}
	return int(n), true
}

// ParseMap reads a map file. Lines with fewer than three integers or with a
// row, column or strength outside lim are skipped, never rejected.
// Integers after the third are ignored.
func ParseMap(r io.Reader, lim Limits) (MapData, error) {
	var md MapData
	br := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		text, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return md, fmt.Errorf("breakout: cannot read map: %w", err)
		}
		if text == "" && errors.Is(err, io.EOF) {
			return md, nil
		}
		text = strings.TrimSuffix(text, "\n")
		md.add(lim, lineNo, text)
		if errors.Is(err, io.EOF) {
			return md, nil
		}
	}
}

// add applies one map line. Lines of any length are accepted.
func (md *MapData) add(lim Limits, lineNo int, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	vals := ParseMapLine(text)
	if len(vals) < 3 {
		md.Skipped = append(md.Skipped, SkippedLine{Line: lineNo, Text: excerpt(text), Reason: "fewer than 3 integers"})
		return
	}
	p := Placement{Row: vals[0], Col: vals[1], Strength: vals[2], Line: lineNo}
	if reason := lim.check(p); reason != "" {
		md.Skipped = append(md.Skipped, SkippedLine{Line: lineNo, Text: excerpt(text), Reason: reason})
		return
	}
	md.Placements = append(md.Placements, p)
}

// excerpt keeps skipped-line reports readable.
func excerpt(text string) string {
	const maxText = 80
	if len(text) <= maxText {
		return text
	}
	return text[:maxText] + "..."
}

func (lim Limits) check(p Placement) string {
	switch {
	case p.Row < 0 || p.Row >= lim.MaxRows:
		return fmt.Sprintf("row %d outside 0..%d", p.Row, lim.MaxRows-1)
	case p.Col < 0 || p.Col >= lim.MaxCols:
		return fmt.Sprintf("column %d outside 0..%d", p.Col, lim.MaxCols-1)
	case p.Strength < 1 || p.Strength > lim.MaxStrength:
		return fmt.Sprintf("strength %d outside 1..%d", p.Strength, lim.MaxStrength)
	}
	return ""
}

// Loader resolves level numbers to map files in FS.
type Loader struct {
	FS      fs.FS
	Pattern string // fmt pattern with one %d, e.g. "level%d.map"
	Limits  Limits
	Logger  *log.Logger
}

// NewLoader builds the loader a game with cfg uses. A nil fsys selects
// BuiltinMaps.
func NewLoader(cfg config.BreakoutConfig, fsys fs.FS, logger *log.Logger) Loader {
	if fsys == nil {
		fsys = BuiltinMaps()
	}
	return Loader{
		FS:      fsys,
		Pattern: cfg.Maps.Pattern,
		Limits:  Limits{MaxRows: cfg.Bricks.MaxRows, MaxCols: cfg.Bricks.MaxCols, MaxStrength: len(cfg.Bricks.Visuals)},
		Logger:  logger,
	}
}

// Name returns the file name of a level.
func (l Loader) Name(level int) string {
	return fmt.Sprintf(l.Pattern, level)
}

// Load parses the map of the given level. A missing map falls back to
// level 1; the returned int is the level actually loaded.
func (l Loader) Load(level int) (MapData, int, error) {
	md, err := l.open(level)
	if errors.Is(err, fs.ErrNotExist) && level != 1 {
		l.logger().Info("no map for level, starting over", "level", level, "file", l.Name(level))
		level = 1
		md, err = l.open(level)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return MapData{}, 0, fmt.Errorf("%w: %s", ErrNoMaps, l.Name(level))
	}
	if err != nil {
		return MapData{}, 0, err
	}
	for _, s := range md.Skipped {
		l.logger().Debug("skipped map line", "file", md.Name, "line", s.Line, "reason", s.Reason)
	}
	return md, level, nil
}

// Levels returns the consecutive level numbers present, starting at 1.
func (l Loader) Levels() []int {
	var levels []int
	for n := 1; ; n++ {
		if _, err := fs.Stat(l.FS, l.Name(n)); err != nil {
			return levels
		}
		levels = append(levels, n)
	}
}

func (l Loader) open(level int) (MapData, error) {
	name := l.Name(level)
	f, err := l.FS.Open(name)
	if err != nil {
		return MapData{}, err
	}
	defer f.Close()

	md, err := ParseMap(f, l.Limits)
	if err != nil {
		return MapData{}, fmt.Errorf("breakout: cannot load %s: %w", name, err)
	}
	md.Name = name
	return md, nil
}

func (l Loader) logger() *log.Logger {
	if l.Logger == nil {
		return log.New(io.Discard)
	}
	return l.Logger
}
