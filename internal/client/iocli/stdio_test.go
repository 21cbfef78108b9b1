package iocli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	stdio := New(strings.NewReader(""), &out)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")
	_, err := stdio.Write([]byte("!"))

	require.NoError(t, err)
	assert.Equal(t, "hello world\ntest 1 abc!", out.String())
}

func TestReadInput(t *testing.T) {
	var out bytes.Buffer
	stdio := New(strings.NewReader("  user input \nsecond\n"), &out)

	first, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	second, err := stdio.ReadInput("Again: ")
	require.NoError(t, err)

	assert.Equal(t, "user input", first)
	assert.Equal(t, "second", second)
	assert.Equal(t, "Prompt: Again: ", out.String())
}

// Последняя строка без перевода строки тоже читается
func TestReadInput_NoTrailingNewline(t *testing.T) {
	stdio := New(strings.NewReader("last"), &bytes.Buffer{})

	got, err := stdio.ReadInput("> ")

	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = stdio.ReadInput("> ")
	assert.Error(t, err)
}

// Без терминала пароль читается как обычная строка
func TestReadPassword_FromPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	go func() {
		_, _ = w.Write([]byte("s3cret\n"))
		_ = w.Close()
	}()
	defer func() { _ = r.Close() }()

	var out bytes.Buffer
	stdio := New(r, &out)

	got, err := stdio.ReadPassword("Token: ")

	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.Equal(t, "Token: ", out.String())
}
