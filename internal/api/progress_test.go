package api

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressReader_MonotonicAndClamped(t *testing.T) {
	data := bytes.Repeat([]byte("x"), 1000)
	var percents []int
	pr := &progressReader{
		r:     bytes.NewReader(data),
		total: 1000,
		fn:    func(p int) { percents = append(percents, p) },
	}

	buf := make([]byte, 64)
	for {
		_, err := pr.Read(buf)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}

	require.NotEmpty(t, percents)
	for i := 1; i < len(percents); i++ {
		assert.Greater(t, percents[i], percents[i-1], "duplicates are suppressed")
	}
	assert.Equal(t, 100, percents[len(percents)-1])
	for _, p := range percents {
		assert.GreaterOrEqual(t, p, 0)
		assert.LessOrEqual(t, p, 100)
	}
}

func TestProgressReader_NilCallback(t *testing.T) {
	pr := &progressReader{r: bytes.NewReader([]byte("abc")), total: 3}
	_, err := io.Copy(io.Discard, pr)
	assert.NoError(t, err)
}

func TestProgressReader_ZeroTotal(t *testing.T) {
	called := false
	pr := &progressReader{
		r:  bytes.NewReader([]byte("abc")),
		fn: func(int) { called = true },
	}
	_, err := io.Copy(io.Discard, pr)
	assert.NoError(t, err)
	assert.False(t, called, "no total means no percent to report")
}
