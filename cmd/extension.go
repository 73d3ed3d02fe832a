package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
)

// RunExtension attempts to find and execute an external psplit-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// The resolved global flags are passed as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "psplit-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		slog.Debug("external command not found in PATH", "command", externalCmdName, "error", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	cmd.Env = append(os.Environ(),
		EnvFile+"="+GroupFile(),
		EnvStore+"="+StoreKind(),
		EnvDB+"="+DBPath(),
		EnvGroup+"="+GroupKey(),
		"PSPLIT_VERBOSE="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1 // Indicate that an attempt was made, but it failed
	}

	return true, 0
}
