package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/btreeset/btree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell(t *testing.T, input string) (*shell, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	t.Cleanup(gotestingadapter.QuickConfig(t, "btreeset"))
	tree, err := btree.NewOrdered[string](2)
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return newShell(strings.NewReader(input), out, tree), out
}

func TestShellSession(t *testing.T) {
	sh, out := newTestShell(t, strings.Join([]string{
		"INS pear apple fig kiwi plum",
		"ins fig",
		"GET kiwi",
		"HAS melon",
		"DEL apple melon",
		"LEN",
		"CHECK",
		"EXIT",
		"INS never",
	}, "\n"))
	require.NoError(t, sh.loop())
	text := out.String()
	assert.Contains(t, text, "inserted plum")
	assert.Contains(t, text, "key already exists: fig")
	assert.Contains(t, text, "found kiwi")
	assert.Contains(t, text, "false")
	assert.Contains(t, text, "removed apple")
	assert.Contains(t, text, "key not found: melon")
	assert.Contains(t, text, "4 keys, height 2")
	assert.Contains(t, text, "tree is valid")
	assert.False(t, sh.tree.Contains("never"), "input after EXIT was processed")
}

func TestShellUnknownCommandAndUsage(t *testing.T) {
	sh, out := newTestShell(t, "FROB x\nGET\nHAS a b\n")
	require.NoError(t, sh.loop())
	assert.Contains(t, out.String(), `unknown command "frob"`)
	assert.Contains(t, out.String(), "usage: GET <key>")
	assert.Contains(t, out.String(), "usage: HAS <key>")
}

func TestShellDot(t *testing.T) {
	sh, out := newTestShell(t, "INS a\nDOT\n")
	require.NoError(t, sh.loop())
	assert.Contains(t, out.String(), "strict digraph {")
	assert.Contains(t, out.String(), `[label="a"`)
}

func TestFillCountsDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btreeset")
	defer teardown()
	//
	tree, err := btree.NewOrdered[string](3)
	require.NoError(t, err)
	i := 0
	gen := func() string {
		i++
		return fmt.Sprintf("w%03d", i%40)
	}
	inserted, dups, err := fill(tree, 100, gen)
	require.NoError(t, err)
	assert.Len(t, inserted, 40)
	assert.Equal(t, 60, dups)
	assert.Equal(t, 40, tree.Len())
	assert.NoError(t, tree.Check())
}
