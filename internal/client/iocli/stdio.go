package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type Stdio struct {
	in  *bufio.Reader
	out io.Writer
	fd  int // дескриптор ввода, -1 если это не файл
}

func NewStdio() IO {
	return NewStdioWith(os.Stdin, os.Stdout)
}

// NewStdioWith creates IO over arbitrary streams.
func NewStdioWith(in io.Reader, out io.Writer) *Stdio {
	fd := -1
	if f, ok := in.(*os.File); ok {
		fd = int(f.Fd())
	}
	return &Stdio{in: bufio.NewReader(in), out: out, fd: fd}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && !(err == io.EOF && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) ReadAll(prompt string) (string, error) {
	if s.IsInteractive() {
		s.Printf("%s", prompt)
	}
	data, err := io.ReadAll(s.in)
	if err != nil {
		return "", err
	}
	// Убираем только завершающий перевод строки, отступы внутри сохраняются
	return strings.TrimRight(string(data), "\r\n"), nil
}

func (s *Stdio) IsInteractive() bool {
	return s.fd >= 0 && term.IsTerminal(s.fd)
}
