package converter

// MapColumnX maps an osu x coordinate onto the Vectra x axis.
//
// The playfield is divided into keys equal columns; the input x picks a
// column (clamped into range, out-of-playfield coordinates are tolerated)
// and the result is the pixel center of that column in the same 0..512
// range. Vectra's 4-key maps use 64/192/320/448, which are exactly the
// column centers at keys=4.
func MapColumnX(x, keys int) int {
	return MapColumnXWidth(x, keys, PlayfieldWidth)
}

// MapColumnXWidth is MapColumnX with an explicit playfield width
func MapColumnXWidth(x, keys, width int) int {
	colWidth := float64(width) / float64(keys)
	return int(float64(columnIndex(x, keys, colWidth))*colWidth + colWidth/2)
}

// ColumnIndex returns the clamped column a source x coordinate falls into
func ColumnIndex(x, keys int) int {
	return columnIndex(x, keys, float64(PlayfieldWidth)/float64(keys))
}

func columnIndex(x, keys int, colWidth float64) int {
	col := int(float64(x) / colWidth)
	if col < 0 {
		col = 0
	}
	if col >= keys {
		col = keys - 1
	}
	return col
}
