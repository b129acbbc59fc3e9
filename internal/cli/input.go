package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/yigit/enrollment/internal/pkg/apperrors"
)

// InputReader reads prompts answers from a line-oriented stream. Lines and
// whitespace-separated integer tokens may be mixed: NextLine returns the rest
// of the current line, NextInt skips any whitespace including line breaks.
type InputReader struct {
	r      *bufio.Reader
	closer io.Closer
}

// NewInputReader wraps r. If r is an io.Closer, Close releases it.
func NewInputReader(r io.Reader) *InputReader {
	in := &InputReader{r: bufio.NewReader(r)}
	if c, ok := r.(io.Closer); ok {
		in.closer = c
	}
	return in
}

// NextLine returns the remainder of the current line without its terminator.
func (in *InputReader) NextLine() (string, error) {
	line, err := in.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", fmt.Errorf("%w: no line found: %v", apperrors.ErrInvalidInput, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// NextInt reads the next token and parses it as a base-10 integer.
func (in *InputReader) NextInt() (int, error) {
	tok, err := in.nextToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", apperrors.ErrInvalidInput, tok)
	}
	return n, nil
}

func (in *InputReader) nextToken() (string, error) {
	var sb strings.Builder
	for {
		r, _, err := in.r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", fmt.Errorf("%w: no token found: %v", apperrors.ErrInvalidInput, err)
		}
		if unicode.IsSpace(r) {
			if sb.Len() == 0 {
				continue
			}
			// Leave the delimiter so a following NextLine sees the rest of this line.
			_ = in.r.UnreadRune()
			return sb.String(), nil
		}
		sb.WriteRune(r)
	}
}

// Close releases the underlying reader if it is closable.
func (in *InputReader) Close() error {
	if in.closer == nil {
		return nil
	}
	return in.closer.Close()
}
