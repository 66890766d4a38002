package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestVar(t *testing.T) {
	a := Var[int]("TestVarInt", "an int")
	b := Var[string]("TestVarString", "a string")
	GlobalExecutor.MustExecute([]string{
		"TestVarInt", "42",
		"TestVarString", "bar",
	})
	if *a != 42 {
		t.Fatalf("got %v", *a)
	}
	if *b != "bar" {
		t.Fatalf("got %v", *b)
	}

	GlobalExecutor.MustExecute([]string{"TestVarInt."})
	if *a != 0 {
		t.Fatalf("got %v", *a)
	}

	if err := GlobalExecutor.Execute([]string{"TestVarInt", "x"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch", "a switch")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if !*foo {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo {
		t.Fatal()
	}
}

func TestTypedVar(t *testing.T) {
	type Foo string
	v := Var[Foo]("TestTypedVar", "typed")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "bar",
	})
	if *v != "bar" {
		t.Fatal()
	}
}

func TestHelperUsage(t *testing.T) {
	Var[bool]("TestHelperUsage", "described flag")
	buf := new(bytes.Buffer)
	GlobalExecutor.WriteUsage(buf)
	if !strings.Contains(buf.String(), "described flag") {
		t.Fatalf("got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "reset TestHelperUsage") {
		t.Fatalf("got %s", buf.String())
	}
}
