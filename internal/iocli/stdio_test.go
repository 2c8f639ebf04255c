package iocli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	assert.NotNil(t, NewStdio())
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioFrom(strings.NewReader(""), &out)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")
	_, err := stdio.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc!", out.String())
	assert.False(t, stdio.IsTerminal())
}

// Несколько строк читаются одним буфером, ничего не теряется
func TestReadInput(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioFrom(strings.NewReader("  first \nsecond\nlast"), &out)

	first, err := stdio.ReadInput("a: ")
	require.NoError(t, err)
	assert.Equal(t, "first", first)

	second, err := stdio.ReadInput("b: ")
	require.NoError(t, err)
	assert.Equal(t, "second", second)

	last, err := stdio.ReadInput("c: ")
	require.NoError(t, err)
	assert.Equal(t, "last", last)

	_, err = stdio.ReadInput("d: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "a: b: c: d: ", out.String())
}

// Без терминала пароль читается как обычная строка
func TestReadPassword_NotTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	go func() {
		_, _ = w.Write([]byte("secret phrase\n"))
		_ = w.Close()
	}()

	var out bytes.Buffer
	stdio := NewStdioFrom(r, &out)

	pass, err := stdio.ReadPassword("Passphrase: ")
	require.NoError(t, err)
	assert.Equal(t, "secret phrase", pass)
	assert.Equal(t, "Passphrase: ", out.String())
}
