package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// executeCommand executes a cobra command with empty input and returns its output.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	return executeCommandWithInput(root, "", args...)
}

// executeCommandWithInput feeds input to the command's stdin. A non-zero
// exit is turned into a panic and recovered so tests survive it.
func executeCommandWithInput(root *cobra.Command, input string, args ...string) (out string, err error) {
	resetFlags(root)
	oldExit := exit
	exit = func(code int) {
		if code != 0 {
			panic(fmt.Sprintf("exit-%d", code))
		}
	}
	defer func() { exit = oldExit }()

	b := new(bytes.Buffer)
	defer func() {
		if r := recover(); r != nil {
			if s, ok := r.(string); ok && strings.HasPrefix(s, "exit-") {
				out = b.String()
				err = fmt.Errorf("%s", s)
				return
			}
			panic(r)
		}
	}()

	root.SetArgs(args)
	root.SetOut(b)
	root.SetErr(b)
	root.SetIn(bytes.NewBufferString(input))
	err = root.Execute()
	return b.String(), err
}

// resetFlags resets all flags to their default values.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
