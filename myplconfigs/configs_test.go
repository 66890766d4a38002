package myplconfigs

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/mypl/cmds"
	"github.com/reusee/mypl/modes"
)

func newTestScope(t *testing.T, files map[string]string) dscope.Scope {
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() ConfigDirs {
			return ConfigDirs{dir}
		},
	)
}

func TestDefaults(t *testing.T) {
	scope := newTestScope(t, nil)
	if prompt := dscope.Get[Prompt](scope); prompt != "> " {
		t.Fatalf("got %q", prompt)
	}
	if echo := dscope.Get[Echo](scope); !echo {
		t.Fatal()
	}
}

func TestCueConfig(t *testing.T) {
	scope := newTestScope(t, map[string]string{
		"mypl.cue": `
prompt: "cue> "
echo: false
history_file: "/tmp/cue_history"
`,
	})
	if prompt := dscope.Get[Prompt](scope); prompt != "cue> " {
		t.Fatalf("got %q", prompt)
	}
	if echo := dscope.Get[Echo](scope); echo {
		t.Fatal()
	}
	if history := dscope.Get[HistoryFile](scope); history != "/tmp/cue_history" {
		t.Fatalf("got %q", history)
	}
}

func TestScriptFork(t *testing.T) {
	scope := newTestScope(t, map[string]string{
		"mypl.cue": `
prompt: "cue> "
history_file: "/tmp/cue_history"
`,
		"init.mypl": `
var prompt = "script";
prompt += "> ";
const echo = false;
`,
	})
	scope, err := ScriptFork(t.Context(), scope)
	if err != nil {
		t.Fatal(err)
	}
	if prompt := dscope.Get[Prompt](scope); prompt != "script> " {
		t.Fatalf("got %q", prompt)
	}
	if echo := dscope.Get[Echo](scope); echo {
		t.Fatal()
	}
	if history := dscope.Get[HistoryFile](scope); history != "/tmp/cue_history" {
		t.Fatalf("got %q", history)
	}
}

func TestScriptError(t *testing.T) {
	scope := newTestScope(t, map[string]string{
		"init.mypl": `const echo = 1;`,
	})
	if _, err := ScriptFork(t.Context(), scope); err == nil {
		t.Fatal("should error")
	}

	scope = newTestScope(t, map[string]string{
		"init.mypl": `const prompt = ;`,
	})
	if _, err := ScriptFork(t.Context(), scope); err == nil {
		t.Fatal("should error")
	}
}

func TestFlagPrecedence(t *testing.T) {
	cmds.GlobalExecutor.MustExecute([]string{"-prompt", "flag> "})
	defer cmds.GlobalExecutor.MustExecute([]string{"-prompt."})

	scope := newTestScope(t, map[string]string{
		"mypl.cue":  `prompt: "cue> "`,
		"init.mypl": `const prompt = "script> ";`,
	})
	if prompt := dscope.Get[Prompt](scope); prompt != "flag> " {
		t.Fatalf("got %q", prompt)
	}
	scope, err := ScriptFork(t.Context(), scope)
	if err != nil {
		t.Fatal(err)
	}
	if prompt := dscope.Get[Prompt](scope); prompt != "flag> " {
		t.Fatalf("got %q", prompt)
	}
}

func TestListedInitScripts(t *testing.T) {
	scriptPath := filepath.Join(t.TempDir(), "extra.mypl")
	if err := os.WriteFile(scriptPath, []byte(`const prompt = "extra> ";`), 0644); err != nil {
		t.Fatal(err)
	}
	scope := newTestScope(t, map[string]string{
		"mypl.cue":  fmt.Sprintf("init_scripts: [%q]\n", scriptPath),
		"init.mypl": `const prompt = "dir> "; const echo = false;`,
	})
	scope, err := ScriptFork(t.Context(), scope)
	if err != nil {
		t.Fatal(err)
	}
	// listed scripts run after the ones in config dirs
	if prompt := dscope.Get[Prompt](scope); prompt != "extra> " {
		t.Fatalf("got %q", prompt)
	}
	if echo := dscope.Get[Echo](scope); echo {
		t.Fatal()
	}
}

func TestEchoFlag(t *testing.T) {
	if err := cmds.GlobalExecutor.Execute([]string{"-echo", "maybe"}); err == nil {
		t.Fatal("expected error")
	}

	cmds.GlobalExecutor.MustExecute([]string{"-echo", "off"})
	defer cmds.GlobalExecutor.MustExecute([]string{"-echo."})

	scope := newTestScope(t, map[string]string{
		"mypl.cue":  `echo: true`,
		"init.mypl": `const echo = true;`,
	})
	if echo := dscope.Get[Echo](scope); echo {
		t.Fatal()
	}
	scope, err := ScriptFork(t.Context(), scope)
	if err != nil {
		t.Fatal(err)
	}
	if echo := dscope.Get[Echo](scope); echo {
		t.Fatal()
	}
}

func TestEmptyHistoryFile(t *testing.T) {
	scope := newTestScope(t, map[string]string{
		"mypl.cue": `history_file: ""`,
	})
	if history := dscope.Get[HistoryFile](scope); history != "" {
		t.Fatalf("got %q", history)
	}
}

func TestBadInitScriptsConfig(t *testing.T) {
	scope := newTestScope(t, map[string]string{
		"mypl.cue": `init_scripts: "not a list"`,
	})
	if _, err := ScriptFork(t.Context(), scope); err == nil {
		t.Fatal("expected error")
	}
}
