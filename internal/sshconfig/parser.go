package sshconfig

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hostpick/hostpick/internal/logging"
)

// Parser reads OpenSSH-style configuration and assembles host blocks.
// The zero value is usable; each ParseFile call is independent and owns
// its own state, so a single Parser may be reused across files.
type Parser struct {
	// Strict turns unrecognized directives into hard errors instead of
	// dropping them.
	Strict bool

	// ConfigDir is the directory relative Include paths resolve
	// against. Empty means ~/.ssh.
	ConfigDir string
}

// NewParser returns a parser with default settings.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile parses the file at path, resolves its Include directives
// recursively, and merges global entries into every host block with
// fill-if-absent semantics. Tilde prefixes in path are expanded before
// opening.
func (p *Parser) ParseFile(path string) (HostList, error) {
	path = ExpandTilde(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	visited := map[string]struct{}{canonicalPath(path): {}}
	global, hosts, err := p.parse(f, path, visited)
	if err != nil {
		return nil, err
	}

	if !global.IsEmpty() {
		for _, h := range hosts {
			h.fillAbsent(global)
		}
	}

	logging.Debug("parsed ssh config", "path", path, "hosts", len(hosts))
	return hosts, nil
}

// Parse parses a single stream without Include-relative context beyond
// the configured directory. Source names the stream in errors.
func (p *Parser) Parse(r io.Reader, source string) (HostList, error) {
	global, hosts, err := p.parse(r, source, map[string]struct{}{})
	if err != nil {
		return nil, err
	}
	if !global.IsEmpty() {
		for _, h := range hosts {
			h.fillAbsent(global)
		}
	}
	return hosts, nil
}

// parse is the recursive descent over one stream. It returns the stream's
// global block (directives preceding any Host line) and its host blocks
// in declaration order. visited carries the canonical paths of every file
// currently open in the include chain.
func (p *Parser) parse(r io.Reader, source string, visited map[string]struct{}) (*Host, HostList, error) {
	global := NewHost()
	var hosts HostList
	inBlock := false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = stripInlineComment(line)
		if line == "" {
			continue
		}

		entry, ok := classifyLine(line)
		if !ok {
			return nil, nil, &UnparseableLineError{File: source, Line: lineNo, Text: line}
		}

		switch entry.Keyword {
		case KeywordUnknown:
			if p.Strict {
				return nil, nil, &UnknownEntryError{File: source, Line: lineNo, Key: entry.RawKey}
			}

		case KeywordHost:
			hosts = append(hosts, NewHost(SplitPatterns(entry.Value)...))
			inBlock = true

		case KeywordInclude:
			if err := p.include(entry.Value, source, lineNo, inBlock, global, &hosts, visited); err != nil {
				return nil, nil, err
			}

		default:
			if inBlock {
				hosts[len(hosts)-1].Set(entry.Keyword, entry.Value)
			} else {
				global.Set(entry.Keyword, entry.Value)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", source, err)
	}

	return global, hosts, nil
}

// include resolves one Include directive. The pattern is tilde-expanded,
// resolved against the ssh config directory when relative, and expanded
// as a glob; every match is parsed recursively. The merge rule depends on
// the parser mode at the point of inclusion: inside a Host block the
// included file may only contribute scalar settings (fill-if-absent into
// the open block); at top level its globals overwrite ours and its host
// blocks are appended in file order.
func (p *Parser) include(pattern, source string, lineNo int, inBlock bool, global *Host, hosts *HostList, visited map[string]struct{}) error {
	incErr := func(err error) error {
		return &InvalidIncludeError{File: source, Line: lineNo, Pattern: pattern, Err: err}
	}

	path := ExpandTilde(pattern)
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.configDir(), path)
	}

	matches, err := filepath.Glob(path)
	if err != nil {
		return incErr(err)
	}
	logging.Debug("resolving include", "pattern", pattern, "matches", len(matches))

	for _, match := range matches {
		canon := canonicalPath(match)
		if _, open := visited[canon]; open {
			return incErr(fmt.Errorf("%w: %s", ErrIncludeCycle, match))
		}
		visited[canon] = struct{}{}

		f, err := os.Open(match)
		if err != nil {
			delete(visited, canon)
			return incErr(err)
		}
		incGlobal, incHosts, err := p.parse(f, match, visited)
		f.Close()
		delete(visited, canon)
		if err != nil {
			return err
		}

		if inBlock {
			if len(incHosts) > 0 {
				return incErr(ErrHostsInsideHostBlock)
			}
			current := (*hosts)[len(*hosts)-1]
			current.fillAbsent(incGlobal)
		} else {
			if !incGlobal.IsEmpty() {
				global.overwriteFrom(incGlobal)
			}
			*hosts = append(*hosts, incHosts...)
		}
	}

	return nil
}

func (p *Parser) configDir() string {
	if p.ConfigDir != "" {
		return p.ConfigDir
	}
	return ExpandTilde("~/.ssh")
}

// ExpandTilde replaces a leading "~" with the user's home directory. The
// path is returned unchanged when the home directory cannot be resolved.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// canonicalPath resolves symlinks and relative segments so that the same
// file reached through different spellings maps to one cycle-set key.
func canonicalPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// stripInlineComment removes trailing "#..." comment text outside double
// quotes and trims the remainder.
func stripInlineComment(line string) string {
	inQuotes := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case '#':
			if !inQuotes {
				return strings.TrimSpace(line[:i])
			}
		}
	}
	return line
}
