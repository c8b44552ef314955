package hexgrid

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	errs "github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/grid"
)

func TestFromWallsBoundaryOnly(t *testing.T) {
	g := FromWalls(grid.MustTopology(5, 7), nil)

	want := "988888C\n" +
		"1000004\n" +
		"1000004\n" +
		"1000004\n" +
		"3222226\n"
	if got := g.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestFromWallsAllClosed(t *testing.T) {
	topo := grid.MustTopology(5, 7)
	g := FromWalls(topo, topo.AllWalls())

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.At(r, c) != 0xF {
				t.Fatalf("At(%d,%d) = %X, want F", r, c, g.At(r, c))
			}
		}
	}
}

func TestFromWallsSingleWalls(t *testing.T) {
	topo := grid.MustTopology(5, 7)

	// Horizontal wall between (2,2) and (2,3).
	g := FromWalls(topo, []grid.Wall{topo.CanonicalWall(topo.Cell(2, 3), topo.Cell(2, 2))})
	if !g.Has(2, 2, East) || !g.Has(2, 3, West) {
		t.Errorf("horizontal wall: (2,2)=%X (2,3)=%X", g.At(2, 2), g.At(2, 3))
	}
	if g.Has(2, 2, South) || g.Has(2, 3, North) {
		t.Error("horizontal wall set a vertical bit")
	}

	// Vertical wall between (1,4) and (2,4).
	g = FromWalls(topo, []grid.Wall{{A: topo.Cell(1, 4), B: topo.Cell(2, 4)}})
	if !g.Has(1, 4, South) || !g.Has(2, 4, North) {
		t.Errorf("vertical wall: (1,4)=%X (2,4)=%X", g.At(1, 4), g.At(2, 4))
	}
	if g.Has(1, 4, East) || g.Has(2, 4, West) {
		t.Error("vertical wall set a horizontal bit")
	}
}

func TestBitLayout(t *testing.T) {
	if North != 8 || East != 4 || South != 2 || West != 1 {
		t.Errorf("bits N=%d E=%d S=%d W=%d, want 8 4 2 1", North, East, South, West)
	}
}

func TestParseRoundTrip(t *testing.T) {
	topo := grid.MustTopology(6, 9)
	walls := topo.AllWalls()
	g := FromWalls(topo, walls[:len(walls)/2])

	var buf bytes.Buffer
	if _, err := g.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	parsed, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !parsed.Equal(g) {
		t.Errorf("parsed grid differs:\n%s\nvs\n%s", parsed, g)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		rows     int
		cols     int
		wantCode errs.Code
	}{
		{"simple", "9C\n36\n", 2, 2, ""},
		{"lowercase", "9c\n36\n", 2, 2, ""},
		{"crlf and padding", " 9C\t\r\n36\r\n", 2, 2, ""},
		{"stops at blank line", "9C\n36\n\nZZ\n", 2, 2, ""},
		{"no trailing newline", "9C\n36", 2, 2, ""},
		{"empty", "", 0, 0, ""},
		{"invalid digit", "9G\n36\n", 0, 0, errs.ErrCodeInvalidFormat},
		{"ragged rows", "9C8\n36\n", 0, 0, errs.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse(strings.NewReader(tt.input))
			if tt.wantCode != "" {
				if !errs.Is(err, tt.wantCode) {
					t.Fatalf("Parse error = %v, want code %v", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			if g.Rows() != tt.rows || g.Cols() != tt.cols {
				t.Errorf("shape = %dx%d, want %dx%d", g.Rows(), g.Cols(), tt.rows, tt.cols)
			}
		})
	}
}

func TestUnmarshalText(t *testing.T) {
	var g Grid
	if err := g.UnmarshalText([]byte("9C\n36\n")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if g.At(1, 1) != 6 {
		t.Errorf("At(1,1) = %X, want 6", g.At(1, 1))
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteToWrapsIOErrors(t *testing.T) {
	g := FromWalls(grid.MustTopology(5, 7), nil)
	_, err := g.WriteTo(failingWriter{})
	if !errs.Is(err, errs.ErrCodeIO) {
		t.Errorf("WriteTo error = %v, want IO_ERROR", err)
	}
}

func TestOpenWalls(t *testing.T) {
	topo := grid.MustTopology(5, 7)
	if got, want := FromWalls(topo, nil).OpenWalls(), topo.WallCount(); got != want {
		t.Errorf("boundary only: OpenWalls() = %d, want %d", got, want)
	}
	if got := FromWalls(topo, topo.AllWalls()).OpenWalls(); got != 0 {
		t.Errorf("all closed: OpenWalls() = %d, want 0", got)
	}
	closed := topo.AllWalls()[2:]
	if got := FromWalls(topo, closed).OpenWalls(); got != 2 {
		t.Errorf("two open: OpenWalls() = %d, want 2", got)
	}
}
