package display

import (
	"fmt"
	"io"

	"github.com/backmassage/masklint/internal/term"
)

const banner = `                    _    _ _       _
 _ __ ___   __ _ ___| | _| (_)_ __ | |_
| '_ ` + "`" + ` _ \ / _` + "`" + ` / __| |/ / | | '_ \| __|
| | | | | | (_| \__ \   <| | | | | | |_
|_| |_| |_|\__,_|___/_|\_\_|_|_| |_|\__|
`

// PrintBanner writes the ASCII art banner to w, in magenta when colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, term.Magenta(banner))
}
