// Command enumerfix rewrites enumer-generated files to build their errors
// with cockroachdb/errors, matching the rest of the codebase.
package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

const outputPerms = 0o644

// ErrUsage indicates the tool was invoked without a target file.
var ErrUsage = errors.New("usage: enumerfix <file>")

var importBlockRE = regexp.MustCompile(`import \(\n([\s\S]*?)\n\)`)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}

	target := args[0]

	src, err := os.ReadFile(target) // #nosec G304 -- target comes from the generate directive
	if err != nil {
		return errors.Wrap(err, "reading file")
	}

	if err := os.WriteFile(target, rewrite(src), outputPerms); err != nil {
		return errors.Wrap(err, "writing file")
	}

	return nil
}

// rewrite swaps fmt.Errorf for errors.Newf and adjusts the imports. The fmt
// import stays when the file still uses it for formatting.
func rewrite(src []byte) []byte {
	out := strings.ReplaceAll(string(src), "fmt.Errorf", "errors.Newf")

	if usesFmt(out) {
		out = appendErrorsImport(out)
	} else {
		out = swapFmtImport(out)
	}

	return []byte(out)
}

func usesFmt(src string) bool {
	for _, ident := range []string{
		"fmt.Sprintf",
		"fmt.Stringer",
		"fmt.Fprintf",
		"fmt.Printf",
	} {
		if strings.Contains(src, ident) {
			return true
		}
	}

	return false
}

// appendErrorsImport adds the errors import to the import block, leaving
// everything else as enumer emitted it.
func appendErrorsImport(src string) string {
	match := importBlockRE.FindStringSubmatch(src)
	if match == nil || strings.Contains(match[1], `"github.com/cockroachdb/errors"`) {
		return src
	}

	block := match[1] + "\n\t\"github.com/cockroachdb/errors\""

	return importBlockRE.ReplaceAllString(src, "import (\n"+block+"\n)")
}

// swapFmtImport replaces the fmt import with errors when fmt is no longer
// referenced.
func swapFmtImport(src string) string {
	const (
		oldImport = `"fmt"`
		newImport = `"github.com/cockroachdb/errors"`
	)

	if single := "import " + oldImport; strings.Contains(src, single) {
		return strings.Replace(src, single, "import "+newImport, 1)
	}

	return strings.Replace(src, "\t"+oldImport, "\t"+newImport, 1)
}
