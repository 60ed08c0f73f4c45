package main

import (
	"os"
	"path/filepath"
	"strings"

	"nestdnd/internal/cli"
)

func isScriptPath(s string) bool {
	switch strings.ToLower(filepath.Ext(strings.TrimSpace(s))) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// rewriteScriptArgs lets `nestdnd drag.yaml` stand in for `nestdnd replay drag.yaml`.
//
// Cobra treats the first positional token as a subcommand, so argv is rewritten
// before parsing. Persistent flags may come first, so look for the first
// positional rather than argv[1].
func rewriteScriptArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--config":    true,
		"--items":     true,
		"--sub-items": true,
		"--glyphs":    true,
		"--format":    true,
		"--log-file":  true,
		"--log-level": true,
	}

	insert := func(i int) []string {
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:i]...)
		out = append(out, "replay")
		out = append(out, argv[i:]...)
		return out
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// Everything after "--" is positional, so the subcommand goes in front.
			if i+1 < len(argv) && isScriptPath(argv[i+1]) {
				return insert(i)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		if isScriptPath(a) {
			return insert(i)
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteScriptArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
