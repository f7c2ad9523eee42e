package sshconfig

import "maps"

// Host is one parsed "Host <patterns...>" section, or the implicit global
// section when patterns is empty. The entries map never contains the Host
// or Include keywords; those are structural and consumed by the parser.
type Host struct {
	patterns []string
	entries  map[Keyword]string
}

// NewHost creates an empty host block for the given patterns.
func NewHost(patterns ...string) *Host {
	return &Host{
		patterns: patterns,
		entries:  make(map[Keyword]string),
	}
}

// Patterns returns the block's pattern list in declaration order. The
// first pattern is the canonical name; the rest are aliases.
func (h *Host) Patterns() []string {
	return h.patterns
}

// Get returns the value stored for a keyword.
func (h *Host) Get(k Keyword) (string, bool) {
	v, ok := h.entries[k]
	return v, ok
}

// Set stores a value, replacing any previous value for the same keyword
// (two lines with the same key in one block: the later one wins).
func (h *Host) Set(k Keyword, value string) {
	h.entries[k] = value
}

// IsEmpty reports whether the block has no entries.
func (h *Host) IsEmpty() bool {
	return len(h.entries) == 0
}

// fillAbsent copies entries from src that the receiver does not already
// have. Existing keys always win; this is the shared merge rule for
// include-into-block, global-into-host and pattern-into-literal.
func (h *Host) fillAbsent(src *Host) {
	for k, v := range src.entries {
		if _, ok := h.entries[k]; !ok {
			h.entries[k] = v
		}
	}
}

// overwriteFrom copies all entries from src, replacing existing values.
func (h *Host) overwriteFrom(src *Host) {
	maps.Copy(h.entries, src.entries)
}

func (h *Host) clone() *Host {
	return &Host{
		patterns: append([]string(nil), h.patterns...),
		entries:  maps.Clone(h.entries),
	}
}

// patternMatchers compiles the block's wildcard patterns. Literal
// patterns are excluded; a block whose patterns are all literal yields an
// empty slice and is matched by string equality instead.
func (h *Host) patternMatchers() []patternMatcher {
	var matchers []patternMatcher
	for _, p := range h.patterns {
		if isWildcardPattern(p) {
			matchers = append(matchers, compilePattern(p))
		}
	}
	return matchers
}

// HostList is an ordered list of host blocks with the resolution pipeline
// hanging off it. Every step returns a fresh list and leaves its receiver
// untouched.
type HostList []*Host

// Spread expands every multi-pattern block into one block per pattern,
// each carrying an independent copy of the entries. Relative order is
// preserved, so subsequent steps only ever see single-pattern blocks.
func (l HostList) Spread() HostList {
	out := make(HostList, 0, len(l))
	for _, h := range l {
		if len(h.patterns) == 0 {
			out = append(out, h.clone())
			continue
		}
		for _, p := range h.patterns {
			c := h.clone()
			c.patterns = []string{p}
			out = append(out, c)
		}
	}
	return out
}

// ApplyPatterns applies every wildcard block's entries onto every literal
// block it matches, then drops the wildcard blocks. Literal values always
// win over pattern-derived ones, and a negated pattern applies to the
// hosts it does NOT name. Expects a spread list.
func (l HostList) ApplyPatterns() HostList {
	out := make(HostList, 0, len(l))
	matchers := make([][]patternMatcher, len(l))
	for i, h := range l {
		matchers[i] = h.patternMatchers()
		if len(matchers[i]) == 0 {
			out = append(out, h.clone())
		}
	}

	for i, h := range l {
		if len(matchers[i]) == 0 {
			continue
		}
		for _, target := range out {
			if len(target.patterns) == 0 {
				continue
			}
			for _, m := range matchers[i] {
				if m.re.MatchString(target.patterns[0]) == m.negated {
					continue
				}
				target.fillAbsent(h)
				break
			}
		}
	}

	return out
}

// DefaultHostnames sets each block's Hostname to its own pattern when no
// explicit Hostname was configured.
func (l HostList) DefaultHostnames() HostList {
	out := make(HostList, 0, len(l))
	for _, h := range l {
		c := h.clone()
		if _, ok := c.entries[KeywordHostname]; !ok && len(c.patterns) > 0 {
			c.entries[KeywordHostname] = c.patterns[0]
		}
		out = append(out, c)
	}
	return out
}

// MergeSameHosts folds blocks with exactly equal entries into one block:
// the earliest block absorbs the later blocks' patterns in order. The
// operation is idempotent.
func (l HostList) MergeSameHosts() HostList {
	out := make(HostList, 0, len(l))
	consumed := make([]bool, len(l))
	for i, h := range l {
		if consumed[i] {
			continue
		}
		merged := h.clone()
		for j := i + 1; j < len(l); j++ {
			if consumed[j] || !maps.Equal(merged.entries, l[j].entries) {
				continue
			}
			merged.patterns = append(merged.patterns, l[j].patterns...)
			consumed[j] = true
		}
		out = append(out, merged)
	}
	return out
}

// Resolve runs the full post-parse pipeline in its fixed order.
func (l HostList) Resolve() HostList {
	return l.Spread().ApplyPatterns().DefaultHostnames().MergeSameHosts()
}
