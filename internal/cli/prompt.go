package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// promptLine asks for one line of input. On a real terminal it uses a
// readline-style prompt; otherwise it reads plainly from the app's stdin so
// answers can be piped in. Returns false when input is exhausted or aborted.
func (app *App) promptLine(o *IO, prompt string) (string, bool) {
	if app.Stdin == os.Stdin && liner.TerminalSupported() {
		l := liner.NewLiner()
		defer l.Close()

		l.SetCtrlCAborts(true)

		line, err := l.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return "", false
			}

			return "", false
		}

		return strings.TrimSpace(line), true
	}

	o.Printf("%s", prompt)

	if app.stdinReader == nil {
		app.stdinReader = bufio.NewReader(app.Stdin)
	}

	line, err := app.stdinReader.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}

	return strings.TrimSpace(line), true
}
