package lee

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
)

// obstacleToken is what an Obstacle label renders as, before styling.
const obstacleToken = " XX"

// Style decorates rendered cells. Both funcs receive the fixed-width
// cell text and return what is written to the board.
type Style struct {
	Obstacle func(string) string
	Path     func(string) string
}

// PlainStyle leaves every cell undecorated.
func PlainStyle() Style {
	id := func(s string) string { return s }
	return Style{Obstacle: id, Path: id}
}

// ANSIStyle paints obstacles blue and path cells red. Colors are dropped
// when the output terminal does not support them.
func ANSIStyle() Style {
	return Style{
		Obstacle: func(s string) string { return color.Blue.Sprint(s) },
		Path:     func(s string) string { return color.Red.Sprint(s) },
	}
}

// FormatCell renders one board label as a 3-wide cell.
// Obstacle labels always render as " XX", whether or not onPath is set.
func FormatCell(label int, onPath bool, st Style) string {
	if label == Obstacle {
		return st.Obstacle(obstacleToken)
	}
	s := fmt.Sprintf("%3d", label)
	if onPath {
		return st.Path(s)
	}
	return s
}

// Render draws the labels left by the last search, one board row per
// line, highlighting cells on path. A nil or empty path highlights nothing.
// Complexity: O(W×H).
func (gs *GridSearch) Render(path Path, st Style) string {
	if st.Obstacle == nil || st.Path == nil {
		st = PlainStyle()
	}
	onPath := path.set()
	var sb strings.Builder
	sb.Grow(gs.height * (gs.width*len(obstacleToken) + 1))
	for y := 0; y < gs.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < gs.width; x++ {
			c := Cell{X: x, Y: y}
			_, hl := onPath[c]
			sb.WriteString(FormatCell(gs.labels[gs.index(c)], hl, st))
		}
	}
	return sb.String()
}

// String renders the board without highlighting.
func (gs *GridSearch) String() string {
	return gs.Render(nil, PlainStyle())
}
