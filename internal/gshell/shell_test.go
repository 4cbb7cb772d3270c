package gshell_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gordian-engine/gtree/gcontainer"
	"github.com/gordian-engine/gtree/gkary"
	"github.com/gordian-engine/gtree/internal/gshell"
	"github.com/gordian-engine/gtree/internal/gtest"
	"github.com/stretchr/testify/require"
)

func newShell(t *testing.T, degree int, input string) (*gshell.Shell, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	s := gshell.New(gtest.NewLogger(t), strings.NewReader(input), &out, gshell.Config{
		Degree:  degree,
		Name:    "test-shell",
		NoColor: true,
	})
	return s, &out
}

func TestShell_Exec(t *testing.T) {
	t.Parallel()

	s, out := newShell(t, 2, "")
	require.Equal(t, "test-shell", s.Name())

	require.NoError(t, s.Exec("PUSH 1 2 3 4 5"))
	require.Equal(t, "START->1->2->3->4->5->END\n", out.String())

	out.Reset()
	require.NoError(t, s.Exec("dfs"))
	require.Equal(t, "START->1->2->4->5->3->END\n", out.String())

	out.Reset()
	require.NoError(t, s.Exec("size"))
	require.NoError(t, s.Exec("height"))
	require.NoError(t, s.Exec("find 4"))
	require.NoError(t, s.Exec("find 40"))
	require.NoError(t, s.Exec("count 3"))
	require.Equal(t, "5\n2\ntrue\nfalse\n1\n", out.String())

	out.Reset()
	require.NoError(t, s.Exec("pop"))
	require.Equal(t, "5\n", out.String())

	out.Reset()
	require.NoError(t, s.Exec("  BFS  "))
	require.Equal(t, "START->1->2->3->4->END\n", out.String())

	out.Reset()
	require.NoError(t, s.Exec("check"))
	require.Equal(t, "ok\n", out.String())

	// Blank lines do nothing.
	out.Reset()
	require.NoError(t, s.Exec("   "))
	require.Zero(t, out.Len())
}

func TestShell_Exec_errors(t *testing.T) {
	t.Parallel()

	s, _ := newShell(t, 3, "")

	err := s.Exec("POP")
	require.ErrorIs(t, err, gkary.ErrUnderflow)
	require.ErrorIs(t, err, gcontainer.ErrUnderflow)

	require.ErrorContains(t, s.Exec("PUSH"), "usage")
	require.ErrorContains(t, s.Exec("PUSH 1 two"), "invalid value")
	require.ErrorContains(t, s.Exec("FIND"), "usage")
	require.ErrorContains(t, s.Exec("COUNT x"), "invalid value")
	require.ErrorContains(t, s.Exec("BFS now"), "usage")
	require.ErrorContains(t, s.Exec("RESTORE"), "nothing saved")
	require.ErrorContains(t, s.Exec("frobnicate"), "unknown command")

	// A rejected PUSH inserts nothing.
	require.True(t, s.Tree().Empty())
}

func TestShell_saveRestore(t *testing.T) {
	t.Parallel()

	s, out := newShell(t, 2, "")
	require.NoError(t, s.Exec("push 1 2 3"))
	require.NoError(t, s.Exec("save"))
	require.NoError(t, s.Exec("push 4 5"))
	require.NoError(t, s.Exec("pop"))
	require.NoError(t, s.Exec("pop"))
	require.NoError(t, s.Exec("pop"))
	require.Equal(t, 2, s.Tree().Size())

	require.NoError(t, s.Exec("restore"))
	require.Equal(t, "START->1->2->3->END", s.Tree().String())

	// The snapshot is unaffected by edits after a restore.
	require.NoError(t, s.Exec("clear"))
	require.NoError(t, s.Exec("restore"))
	require.Equal(t, "START->1->2->3->END", s.Tree().String())

	require.Contains(t, out.String(), "saved 3 nodes")
	require.Contains(t, out.String(), "restored 3 nodes")
}

func TestShell_show(t *testing.T) {
	t.Parallel()

	s, out := newShell(t, 2, "")
	require.NoError(t, s.Exec("show"))
	require.Equal(t, "(empty)\n", out.String())

	out.Reset()
	require.NoError(t, s.Exec("push 1 2 3 4"))
	out.Reset()
	require.NoError(t, s.Exec("show"))

	drawn := out.String()
	require.True(t, strings.HasPrefix(drawn, "1\n"), drawn)
	for _, v := range []string{"2", "3", "4"} {
		require.Contains(t, drawn, "── "+v)
	}
}

func TestShell_Run(t *testing.T) {
	t.Parallel()

	t.Run("until exit", func(t *testing.T) {
		t.Parallel()

		s, out := newShell(t, 2, "push 1 2 3\npop\nbogus\nexit\npush 9\n")
		require.NoError(t, s.Run(context.Background()))

		require.Contains(t, out.String(), "Available Commands")
		require.Contains(t, out.String(), "START->1->2->3->END")
		require.Contains(t, out.String(), `error: unknown command "bogus"`)

		// Input after EXIT is not processed.
		require.Equal(t, "START->1->2->END", s.Tree().String())
	})

	t.Run("until end of input", func(t *testing.T) {
		t.Parallel()

		s, _ := newShell(t, 3, "push 1 2 3 4\n")
		require.NoError(t, s.Run(context.Background()))
		require.Equal(t, 4, s.Tree().Size())
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		s, _ := newShell(t, 3, "push 1\n")
		require.ErrorIs(t, s.Run(ctx), context.Canceled)
		require.True(t, s.Tree().Empty())
	})

	t.Run("cancelled while waiting for input", func(t *testing.T) {
		t.Parallel()

		pr, pw := io.Pipe()
		defer pw.Close()

		var out bytes.Buffer
		s := gshell.New(gtest.NewLogger(t), pr, &out, gshell.Config{
			Degree:  2,
			Name:    "blocked",
			NoColor: true,
		})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		errCh := make(chan error, 1)
		go func() {
			errCh <- s.Run(ctx)
		}()

		// Nothing is ever written to the pipe, so the read stays blocked.
		cancel()

		select {
		case err := <-errCh:
			require.ErrorIs(t, err, context.Canceled)
		case <-time.After(2 * time.Second):
			t.Fatal("Run did not return after context cancellation")
		}
	})

	t.Run("long input line", func(t *testing.T) {
		t.Parallel()

		// Well over bufio's default 64 KiB token limit.
		const n = 10_000
		line := "push" + strings.Repeat(" 1234567", n) + "\nsize\n"

		s, out := newShell(t, 3, line)
		require.NoError(t, s.Run(context.Background()))
		require.Equal(t, n, s.Tree().Size())
		require.Contains(t, out.String(), "> 10000\n")
	})
}

func TestShape(t *testing.T) {
	t.Parallel()

	tree := gkary.New[string](3)
	tree.InsertMany("a", "b", "c", "d", "e")

	drawn := gshell.Shape(tree)
	lines := strings.Split(strings.TrimSpace(drawn), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "a", lines[0])

	// Children are listed in order, with b's child nested under it.
	require.Contains(t, lines[1], "b")
	require.Contains(t, lines[2], "e")
	require.Contains(t, lines[3], "c")
	require.Contains(t, lines[4], "d")
}
