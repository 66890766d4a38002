package configs

import (
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/mypl/interp"
	"github.com/reusee/mypl/parse"
)

type testInt int

var _ Configurable = testInt(0)

func (testInt) ConfigExpr() string {
	return "test_int"
}

type testName string

var _ Configurable = testName("")

func (testName) ConfigExpr() string {
	return "test_name"
}

func runScript(t *testing.T, source string) *interp.Env {
	stmts, err := parse.Source(source)
	if err != nil {
		t.Fatal(err)
	}
	env := interp.NewEnv()
	if err := interp.New(env, nil).InterpretAll(stmts); err != nil {
		t.Fatal(err)
	}
	return env
}

func TestScriptFork(t *testing.T) {
	scope := dscope.New(
		dscope.Provide(testInt(1)),
		dscope.Provide(testName("foo")),
	)

	env := runScript(t, `
	var test_int = 40;
	test_int += 2;
	const unrelated = true;
	`)

	scope, err := ScriptFork(scope, env)
	if err != nil {
		t.Fatal(err)
	}

	if i := dscope.Get[testInt](scope); i != 42 {
		t.Fatalf("got %v", i)
	}
	if name := dscope.Get[testName](scope); name != "foo" {
		t.Fatalf("got %v", name)
	}
}

func TestScriptForkTypeError(t *testing.T) {
	scope := dscope.New(
		dscope.Provide(testInt(1)),
	)
	env := runScript(t, `const test_int = "42";`)
	_, err := ScriptFork(scope, env)
	if err == nil {
		t.Fatal("should error")
	}
	if !strings.Contains(err.Error(), "config test_int") {
		t.Fatalf("got %v", err)
	}
}
