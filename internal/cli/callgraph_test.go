package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sealevel-tools/anchorscan/internal/mir"
	"github.com/sealevel-tools/anchorscan/internal/testutil"
)

func TestCallgraphCommand_Text(t *testing.T) {
	p := &mir.Program{
		Crate: "reward_pool",
		Items: []*mir.Item{
			testutil.FnItem(1, "reward_pool::entry", 2),
			testutil.FnItem(2, "reward_pool::distribute", 3),
			testutil.FnItem(3, "reward_pool::transfer"),
		},
	}
	p.Init()
	path := writeSnapshot(t, p)

	var buf bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"callgraph", path})

	require.NoError(t, root.Execute())

	out := buf.String()
	assert.Contains(t, out, "crate: reward_pool")
	assert.Contains(t, out, "3 reachable instance(s):")
	assert.Contains(t, out, "reward_pool::entry")
	assert.Contains(t, out, "reward_pool::distribute")
	assert.Contains(t, out, "reward_pool::transfer")
}

func TestCallgraphCommand_JSONSorted(t *testing.T) {
	p := &mir.Program{
		Crate: "reward_pool",
		Items: []*mir.Item{
			testutil.FnItem(1, "b_second", 2),
			testutil.FnItem(2, "a_first"),
		},
	}
	p.Init()
	path := writeSnapshot(t, p)

	var buf bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"callgraph", "--format", "json", path})

	require.NoError(t, root.Execute())

	var out callgraphOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, []string{"a_first", "b_second"}, out.Instances)
}

func TestCallgraphCommand_MissingSnapshot(t *testing.T) {
	var buf bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"callgraph", "/nonexistent/snapshot.json"})

	err := root.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
