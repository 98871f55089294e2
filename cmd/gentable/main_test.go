package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_MatchesCommittedTable(t *testing.T) {
	want, err := os.ReadFile("../../duallfo/wavetable/pulse8.go")
	require.NoError(t, err)

	got, err := generate("wavetable", 8)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "pulse8.go is stale; run go generate ./...")
}

func TestGenerate_Shape(t *testing.T) {
	src, err := generate("wavetable", 20)
	require.NoError(t, err)

	text := string(src)
	assert.Contains(t, text, "var pulse20 = Table{")
	assert.Equal(t, 20, strings.Count(text, "0xFF"))
	assert.Equal(t, 256-20, strings.Count(text, "0x00,"))
}

func TestGenerate_InvalidHigh(t *testing.T) {
	_, err := generate("wavetable", -1)
	assert.Error(t, err)
	_, err = generate("wavetable", 257)
	assert.Error(t, err)
}

func TestGenerate_RowOffsets(t *testing.T) {
	src, err := generate("wavetable", 8)
	require.NoError(t, err)

	text := string(src)
	for _, want := range []string{"// 0x00\n", "// 0x10\n", "// 0xd0\n", "// 0xf0\n"} {
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, "// 0x00f0")
}
