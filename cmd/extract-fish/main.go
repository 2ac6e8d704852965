// extract-fish pulls fish art out of the legacy Perl asciiquarium script
// and writes it as an art pack or a Go source file.
//
// Usage:
//
//	extract-fish [-format txt|go] [-pkg name] input output
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lixenwraith/asciiquarium/content"
)

func main() {
	formatFlag := flag.String("format", "txt", "Output format: txt (art pack) or go (source file)")
	pkgFlag := flag.String("pkg", "asset", "Package name for -format go")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: extract-fish [-format txt|go] [-pkg name] input output")
		os.Exit(2)
	}
	input, output := flag.Arg(0), flag.Arg(1)

	n, err := extractFile(input, output, *formatFlag, *pkgFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "extract-fish: %v\n", err)
		os.Exit(1)
	}
	if n == 0 {
		fmt.Fprintln(os.Stderr, "No fish art blocks found. Check the input file path and format.")
	}
	fmt.Printf("Extracted %d fish art blocks into: %s\n", n, output)
}

// extractFile converts input into output and returns the number of blocks
func extractFile(input, output, format, pkg string) (int, error) {
	script, err := os.ReadFile(input)
	if err != nil {
		return 0, fmt.Errorf("reading script: %w", err)
	}
	arts := ExtractAll(string(script))

	var data []byte
	switch format {
	case "txt":
		var buf bytes.Buffer
		if err := content.Write(&buf, arts); err != nil {
			return 0, err
		}
		data = buf.Bytes()
	case "go":
		if data, err = GenerateGo(pkg, arts); err != nil {
			return 0, err
		}
	default:
		return 0, fmt.Errorf("unknown format %q", format)
	}

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return 0, fmt.Errorf("writing output: %w", err)
	}
	return len(arts), nil
}
