package term

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

func ClearCurrentLine() {
	fmt.Print("\033[2K\r")
}

func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
