package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
)

// Fish image arrays live in these subs of the legacy script
var fishSubs = []string{"add_new_fish", "add_old_fish"}

const arrayMarker = "my @fish_image"

// quote block delimiters: q{...}, and q#...#
var quoteStyles = []struct {
	open, close string
}{
	{"q{", "},"},
	{"q#", "#,"},
}

// ExtractAll collects art from every fish sub, in sub order
func ExtractAll(script string) []string {
	var arts []string
	for _, sub := range fishSubs {
		arts = append(arts, ExtractSub(script, sub)...)
	}
	return arts
}

// ExtractSub returns the art blocks of one sub's @fish_image array
// The array alternates art and colour mask; only even entries are art
func ExtractSub(script, sub string) []string {
	start := strings.Index(script, "sub "+sub)
	if start < 0 {
		return nil
	}
	rel := strings.Index(script[start:], arrayMarker)
	if rel < 0 {
		return nil
	}
	body := script[start+rel:]
	paren := strings.IndexByte(body, '(')
	if paren < 0 {
		return nil
	}

	blocks := scanBlocks(body[paren+1:])

	arts := make([]string, 0, (len(blocks)+1)/2)
	for i := 0; i < len(blocks); i += 2 {
		arts = append(arts, strings.TrimRight(blocks[i], "\n"))
	}
	return arts
}

// scanBlocks reads quoted blocks line by line until the closing ");"
func scanBlocks(src string) []string {
	var (
		blocks  []string
		current []string
		closer  string
		inBlock bool
	)
	finish := func() {
		blocks = append(blocks, strings.Join(current, "\n"))
		current = current[:0]
		inBlock = false
	}

	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimLeft(line, " \t")

		if inBlock {
			if strings.HasSuffix(trimmed, closer) {
				finish()
			} else {
				current = append(current, line)
			}
			continue
		}

		if strings.Contains(trimmed, ");") {
			break
		}
		for _, q := range quoteStyles {
			rest, ok := strings.CutPrefix(trimmed, q.open)
			if !ok {
				continue
			}
			inBlock = true
			closer = q.close
			if before, _, found := strings.Cut(rest, q.close); found {
				if before != "" {
					current = append(current, before)
				}
				finish()
			} else if rest != "" {
				current = append(current, rest)
			}
			break
		}
	}
	return blocks
}

// GenerateGo renders arts as a gofmt'ed Go file with one constant per block
// and a function returning them as an asset table
func GenerateGo(pkg string, arts []string) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("// Code generated by extract-fish. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("import \"github.com/lixenwraith/asciiquarium/asset\"\n\n")

	if len(arts) > 0 {
		b.WriteString("const (\n")
		for i, art := range arts {
			fmt.Fprintf(&b, "%s = %s\n", constName(i), strconv.Quote(art))
		}
		b.WriteString(")\n\n")
	}

	b.WriteString("// GeneratedFish returns the extracted art in source order\n")
	b.WriteString("func GeneratedFish() asset.Table {\n")
	b.WriteString("return asset.FromTexts(\n")
	for i := range arts {
		fmt.Fprintf(&b, "%s,\n", constName(i))
	}
	b.WriteString(")\n}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

func constName(i int) string {
	return fmt.Sprintf("Fish%04d", i+1)
}
