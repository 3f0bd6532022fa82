package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"txtcleaner/internal/config"
	"txtcleaner/internal/customdict"
	"txtcleaner/internal/lexicon"
	"txtcleaner/internal/numwords"
	"txtcleaner/internal/pipeline"
)

const testTable = "the 1000\ndogs 20\nran 10\nanswer 15\n"

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// run executes the root command and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	orig, origLoaded := activeCfg, configLoaded
	t.Cleanup(func() { activeCfg, configLoaded = orig, origLoaded })

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--log-level=error"))
	err := root.Execute()
	return out.String(), err
}

func TestNewRootCmd_HasExpectedSubcommands(t *testing.T) {
	root := NewRootCmd()

	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"clean", "serve", "words", "num"} {
		assert.Contains(t, names, want)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("paths-frequency-path"))
}

func TestSetupLogger_DoesNotPanic(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "not-a-level"} {
		assert.NotPanics(t, func() { setupLogger(level) })
	}
}

func TestRequireConfig(t *testing.T) {
	orig, origLoaded := activeCfg, configLoaded
	t.Cleanup(func() { activeCfg, configLoaded = orig, origLoaded })

	activeCfg, configLoaded = config.DefaultConfig(), false
	_, err := requireConfig()
	assert.Error(t, err)

	configLoaded = true
	got, err := requireConfig()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), got)
}

func TestNum(t *testing.T) {
	out, err := run(t, "", "num", "1000")
	require.NoError(t, err)
	assert.Equal(t, "one thousand\n", out)

	_, err = run(t, "", "num", "12a")
	assert.ErrorIs(t, err, numwords.ErrInvalidInput)
}

func TestClean_stdin(t *testing.T) {
	table := writeTemp(t, "freq.txt", testTable)

	out, err := run(t, "teh 3 dogs ran.<br>", "clean", "--paths-frequency-path", table)
	require.NoError(t, err)
	assert.Equal(t, "The three dogs ran.\n", out)
}

func TestClean_emptyAlphabetFallsBackToDefault(t *testing.T) {
	table := writeTemp(t, "freq.txt", testTable)

	out, err := run(t, "teh dogs", "clean", "--paths-frequency-path", table, "--pipeline-alphabet=")
	require.NoError(t, err)
	assert.Equal(t, "The dogs\n", out)
}

func TestClean_fileToFileAsJSON(t *testing.T) {
	corpus := writeTemp(t, "corpus.txt", "The dogs ran. The dogs ran again.")
	input := writeTemp(t, "in.txt", "teh dgos")
	output := filepath.Join(t.TempDir(), "out.json")

	out, err := run(t, "", "clean", input, "--paths-corpus-path", corpus, "--json", "-o", output)
	require.NoError(t, err)
	assert.Empty(t, out)

	b, err := os.ReadFile(output)
	require.NoError(t, err)
	var res pipeline.Result
	require.NoError(t, json.Unmarshal(b, &res))
	assert.Equal(t, "The dogs", res.Text)
	assert.Equal(t, 2, res.Stats.Corrected)
}

func TestClean_missingTable(t *testing.T) {
	_, err := run(t, "text", "clean", "--paths-frequency-path", filepath.Join(t.TempDir(), "none.txt"))
	assert.ErrorContains(t, err, "load frequencies")
}

func TestClean_emptyTable(t *testing.T) {
	table := writeTemp(t, "freq.txt", "\n\n")
	_, err := run(t, "text", "clean", "--paths-frequency-path", table)
	assert.ErrorIs(t, err, lexicon.ErrEmptyTable)
}

func TestWords_addListRemove(t *testing.T) {
	mr := miniredis.RunT(t)
	redisFlag := "--redis-addr=" + mr.Addr()

	_, err := run(t, "", "words", "add", "Grok", "kubectl", redisFlag)
	require.NoError(t, err)

	out, err := run(t, "", "words", "list", redisFlag)
	require.NoError(t, err)
	assert.Equal(t, "grok\nkubectl\n", out)

	_, err = run(t, "", "words", "remove", "grok", redisFlag)
	require.NoError(t, err)
	members, err := mr.Members(customdict.DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"kubectl"}, members)
}

func TestClean_usesCustomWordsWhenRedisEnabled(t *testing.T) {
	mr := miniredis.RunT(t)
	_, err := mr.SAdd(customdict.DefaultKey, "teh")
	require.NoError(t, err)
	table := writeTemp(t, "freq.txt", testTable)

	out, err := run(t, "teh dogs", "clean", "--paths-frequency-path", table)
	require.NoError(t, err)
	assert.Equal(t, "The dogs\n", out)

	out, err = run(t, "teh dogs", "clean", "--paths-frequency-path", table,
		"--redis-enabled", "--redis-addr="+mr.Addr())
	require.NoError(t, err)
	assert.Equal(t, "Teh dogs\n", out)
}
