package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/novalang/nova/internal/compiler"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file.nova>",
	Short: "Compile, build, and run a nova file",
	Long: `Compile a nova source file, write the generated C to a host-chosen
temporary file, invoke a locally available C compiler (cc, falling back to
gcc), run the resulting binary, and forward its exit status. Both temporary
files are removed afterward.

This is the explicit-subcommand form of spec.md §6.1's one-argument
invocation (nova <file.nova>).

Examples:
  nova run program.nova`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runAndExit(args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// cCompiler returns the first of "cc"/"gcc" reachable on PATH, per spec.md
// §6.4's "well-known name" contract.
func cCompiler() (string, error) {
	for _, name := range []string{"cc", "gcc"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no C compiler found on PATH (looked for cc, gcc)")
}

// runAndExit compiles input, builds it with the host C toolchain, executes
// it, and terminates the process with the executed program's own exit
// status. It only returns an error for failures before that point (driver,
// compile, or toolchain errors, all of which exit 1 via main); once the
// child program has actually run, runAndExit calls os.Exit directly so its
// exact status is forwarded, which a normal RunE return value cannot do.
func runAndExit(input string) error {
	src, err := loadNovaFile(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}

	result := compiler.Compile(src)
	if !result.OK() {
		printDiagnostics(result.Sink)
		return fmt.Errorf("compilation failed with %d error(s)", len(result.Sink.Diagnostics()))
	}

	cc, err := cCompiler()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}

	cFile, err := os.CreateTemp("", "nova-*.c")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: cannot create temporary C file:", err)
		return err
	}
	defer os.Remove(cFile.Name())

	if _, err := cFile.WriteString(result.C); err != nil {
		cFile.Close()
		fmt.Fprintln(os.Stderr, "Error: cannot write temporary C file:", err)
		return err
	}
	if err := cFile.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: cannot write temporary C file:", err)
		return err
	}

	exeFile, err := os.CreateTemp("", "nova-*.exe")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: cannot create temporary executable:", err)
		return err
	}
	exePath := exeFile.Name()
	exeFile.Close()
	os.Remove(exePath) // cc refuses to overwrite in place on some platforms; let it create fresh
	defer os.Remove(exePath)

	build := exec.Command(cc, cFile.Name(), "-o", exePath)
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: C compiler failed")
		return fmt.Errorf("C compiler failed: %w", err)
	}

	run := exec.Command(exePath)
	run.Stdin = os.Stdin
	run.Stdout = os.Stdout
	run.Stderr = os.Stderr

	runErr := run.Run()
	os.Remove(exePath)
	os.Remove(cFile.Name())

	exitCode := 0
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			fmt.Fprintln(os.Stderr, "Error: failed to execute compiled program:", runErr)
			exitCode = 1
		}
	}

	os.Exit(exitCode)
	return nil // unreachable
}
