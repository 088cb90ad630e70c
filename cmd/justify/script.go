package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScriptCmd(flags *rootFlags) *cobra.Command {
	var eval string

	cmd := &cobra.Command{
		Use:   "script (<file.lua> | -e <code>) [files...]",
		Short: "run a Lua plugin script, once per file",
		Long: `Run a Lua plugin script. With files, each file becomes the active buffer
in turn and the script runs against it; the result is printed, or saved
with --write. Without files the script runs once with no buffer.

With --eval the chunk is given inline instead of as a file, and the value
it returns, if any, is printed.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if eval == "" && len(args) == 0 {
				return fmt.Errorf("requires a script file or --eval")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			defer a.Close()

			run := func() error {
				if eval == "" {
					return a.RunScript(args[0])
				}
				out, err := a.EvalScript(eval)
				if err != nil {
					return err
				}
				if out != "" {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
				}
				return err
			}

			paths := args
			if eval == "" {
				paths = args[1:]
			}
			if len(paths) == 0 {
				return run()
			}
			for _, path := range paths {
				doc, err := a.OpenFile(path)
				if err != nil {
					return err
				}
				if err := run(); err != nil {
					return err
				}
				if err := emit(cmd.OutOrStdout(), doc, flags.write); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&eval, "eval", "e", "", "Lua chunk to run instead of a script file")
	return cmd
}
