package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.Define("-n", Func(func(int) {}).Desc("N").Alias("--n"))

	buf := new(bytes.Buffer)
	executor.WriteUsage(buf)
	usage := buf.String()

	for _, expected := range []string{
		"foo\tFOO",
		"  bar\tBAR",
		"  baz\tBAZ",
		"    qux\tQUX",
		"-n (--n) <int>\tN",
		"-h (help, -help, --help)\tprint this usage",
	} {
		if !strings.Contains(usage, expected+"\n") {
			t.Fatalf("got %s", usage)
		}
	}
	if strings.Count(usage, "--n") != 1 {
		t.Fatalf("got %s", usage)
	}
}
