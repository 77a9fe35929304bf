package cellscape

import (
	"bytes"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// labelSource is the face source for extent labels and tooltips. Parsed
// once at package init from the embedded Go Regular font.
var labelSource *text.GoTextFaceSource

func init() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("cellscape: parse embedded font: " + err.Error())
	}
	labelSource = src
}

// labelFace returns a face at the given pixel size.
func labelFace(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: labelSource, Size: size}
}
