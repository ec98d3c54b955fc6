package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive journaling session",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Run session commands from a file (- reads stdin)",
	Long: `run executes one session command per line, exactly as typed in the shell.
Blank lines and lines starting with # are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func runShell(cmd *cobra.Command, args []string) error {
	sh := &shell{session: newSession(), cfg: cfg, out: cmd.OutOrStdout()}
	fmt.Fprintln(sh.out, `Legacy Echo: type "help" for commands, "quit" to leave.`)
	fmt.Fprintln(sh.out, "Entries are kept only until you quit; export first.")
	sh.loop(cmd.InOrStdin(), true)
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		in = f
	}
	sh := &shell{session: newSession(), cfg: cfg, out: cmd.OutOrStdout()}
	if failed := sh.loop(in, false); failed > 0 {
		return fmt.Errorf("script finished with %d failed command(s)", failed)
	}
	return nil
}

// loop executes lines from in until EOF or quit and returns how many failed.
// Failures are reported as notices and do not stop the session.
func (sh *shell) loop(in io.Reader, interactive bool) int {
	failed := 0
	sc := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(sh.out, "> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words, err := splitLine(line)
		if err != nil {
			fmt.Fprintf(sh.out, "Error: %v\n", err)
			failed++
			continue
		}
		if len(words) == 0 {
			continue
		}
		if words[0] == "quit" || words[0] == "exit" {
			break
		}
		if err := sh.exec(words); err != nil {
			fmt.Fprintf(sh.out, "Error: %v\n", err)
			failed++
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(sh.out, "Error: reading input: %v\n", err)
		failed++
	}
	return failed
}
