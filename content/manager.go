// Package content discovers and loads art packs: plain text files holding
// glyph blocks separated by a line of three dashes.
package content

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lixenwraith/asciiquarium/asset"
)

const (
	PackExt       = ".txt"
	Separator     = "---"
	CommentPrefix = "#" // only in the first column; art lines may contain '#'
	MaxArtWidth   = 80
	MaxArtHeight  = 24
)

var (
	// ErrNoArt is returned when discovery and parsing yield no usable block
	ErrNoArt = errors.New("no art found")
	// ErrOversized marks a block exceeding MaxArtWidth or MaxArtHeight
	ErrOversized = errors.New("art block too large")
)

// Manager handles discovery and loading of art pack files
type Manager struct {
	dir   string
	files []string
}

// NewManager creates a manager for the given directory
func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// Discover scans the directory for pack files, sorted by name
// A missing directory is not an error, hidden files are skipped
func (m *Manager) Discover() error {
	m.files = m.files[:0]

	if _, err := os.Stat(m.dir); os.IsNotExist(err) {
		slog.Info("art directory does not exist", "dir", m.dir)
		return nil
	}

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return fmt.Errorf("failed to read art directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			slog.Debug("skipping hidden file", "file", name)
			continue
		}
		if filepath.Ext(name) == PackExt {
			m.files = append(m.files, filepath.Join(m.dir, name))
		}
	}
	sort.Strings(m.files)

	slog.Info("discovered art packs", "dir", m.dir, "count", len(m.files))
	return nil
}

// Files returns the discovered pack paths
func (m *Manager) Files() []string {
	return m.files
}

// Load parses every discovered pack into one table in file order
// Unreadable files and oversized blocks are logged and skipped
func (m *Manager) Load() (asset.Table, error) {
	var tables []asset.Table
	for _, path := range m.files {
		t, err := LoadFile(path)
		if err != nil {
			slog.Warn("skipping art pack", "file", path, "error", err)
			continue
		}
		tables = append(tables, t)
	}

	table := asset.Concat(tables...)
	if len(table) == 0 {
		return nil, fmt.Errorf("%s: %w", m.dir, ErrNoArt)
	}
	return table, nil
}

// LoadFile parses a single pack file
func LoadFile(path string) (asset.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	texts, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	table := make(asset.Table, 0, len(texts))
	for i, text := range texts {
		art := asset.New(text)
		if err := checkSize(art); err != nil {
			slog.Warn("skipping art block", "file", path, "block", i, "error", err)
			continue
		}
		table = append(table, art)
	}
	return table, nil
}

func checkSize(a asset.Art) error {
	if a.Width > MaxArtWidth || a.Height > MaxArtHeight {
		return fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrOversized, a.Width, a.Height, MaxArtWidth, MaxArtHeight)
	}
	return nil
}

// Parse splits a pack into block texts
// Comment lines are dropped, blank lines around a block are trimmed, empty blocks vanish
func Parse(r io.Reader) ([]string, error) {
	var (
		texts []string
		block []string
	)
	flush := func() {
		if text := trimBlock(block); text != "" {
			texts = append(texts, text)
		}
		block = block[:0]
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		switch {
		case strings.HasPrefix(line, CommentPrefix):
			continue
		case line == Separator:
			flush()
		default:
			block = append(block, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return texts, nil
}

func trimBlock(lines []string) string {
	start, end := 0, len(lines)
	for start < end && lines[start] == "" {
		start++
	}
	for end > start && lines[end-1] == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

// Write encodes texts as a pack readable by Parse
func Write(w io.Writer, texts []string) error {
	bw := bufio.NewWriter(w)
	for i, text := range texts {
		if i > 0 {
			if _, err := bw.WriteString(Separator + "\n"); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(text + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
