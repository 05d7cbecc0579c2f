package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	apperrors "github.com/agbru/repbench/internal/errors"
)

// PromptText is the operator prompt for the payload. It is written without a
// trailing newline and re-issued after each rejected input.
const PromptText = "Enter the string to repeat: "

// PayloadReader prompts the operator for the string the workers will repeat.
type PayloadReader struct {
	in  io.Reader
	out io.Writer
}

// NewPayloadReader creates a reader bound to the process standard streams.
func NewPayloadReader() *PayloadReader {
	return &PayloadReader{in: os.Stdin, out: os.Stdout}
}

// SetInput sets a custom input reader (useful for testing).
func (r *PayloadReader) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *PayloadReader) SetOutput(out io.Writer) {
	r.out = out
}

// ReadPayload loops until the operator supplies a non-blank line, which is
// returned with surrounding whitespace trimmed. Blank or whitespace-only
// input is rejected with a message and the prompt is issued again.
//
// End of input is not a failure: ReadPayload announces it and returns io.EOF
// so the caller can shut down cleanly with a zero exit code. Any other read
// failure is returned as an InputError.
//
// Returns:
//   - string: The trimmed payload.
//   - error: io.EOF on end of input, an InputError on read failure.
func (r *PayloadReader) ReadPayload() (string, error) {
	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprint(r.out, PromptText)

		line, err := reader.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if err != nil {
			if errors.Is(err, io.EOF) {
				// A final line without a newline is still input.
				if trimmed != "" {
					return trimmed, nil
				}
				if line != "" {
					fmt.Fprintln(r.out, "Input cannot be empty. Please try again.")
				}
				fmt.Fprintln(r.out, "\nEOF detected. Exiting.")
				return "", io.EOF
			}
			return "", apperrors.InputError{Cause: err}
		}
		if trimmed == "" {
			fmt.Fprintln(r.out, "Input cannot be empty. Please try again.")
			continue
		}
		return trimmed, nil
	}
}
