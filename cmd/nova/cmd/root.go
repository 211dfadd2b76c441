package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "nova <file.nova> [output.c]",
	Short: "nova compiles nova source to portable C",
	Long: `nova is the front end and C-emitting back end for the nova language: a
small, statically-typed imperative language that targets portable C.

Given one .nova file, nova compiles it, builds the result with a host C
compiler, runs the binary, and forwards its exit status. Given a second
argument, nova writes the generated C there instead and exits 0.

  nova program.nova              compile, build, and run
  nova program.nova out.c        compile and write C to out.c

The build/run/lex/parse subcommands below give the same behaviour (plus
token/AST dumps) through an explicit name, for scripting and debugging.`,
	Version:       Version,
	Args:          cobra.MaximumNArgs(2),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runDefault,
}

// Execute runs the root command and returns any error reported by it. main
// maps a non-nil error to exit status 1; an explicit exit code forwarded
// from a run subcommand (see run.go) bypasses this return entirely.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// runDefault dispatches on positional argument count to satisfy spec.md
// §6.1's bare invocation forms directly at the root, without requiring a
// subcommand name.
func runDefault(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return cmd.Help()
	case 1:
		return runAndExit(args[0])
	default:
		return buildToFile(args[0], args[1])
	}
}
