// Package hosts projects resolved ssh config blocks into the flat,
// display-ready records consumed by the picker and launcher.
package hosts

import (
	"sort"
	"strings"

	"github.com/hostpick/hostpick/internal/sshconfig"
)

// Host is one display-ready row: a logical host with its effective
// connection parameters. Read-only once produced.
type Host struct {
	Name         string
	Aliases      string
	User         string
	Destination  string
	Port         string
	ProxyCommand string
}

// ParseConfig parses and fully resolves the ssh config file at path,
// returning one record per distinct host configuration. Tilde prefixes in
// path are expanded before opening.
func ParseConfig(path string, strict bool) ([]Host, error) {
	parser := sshconfig.NewParser()
	parser.Strict = strict

	blocks, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}

	return Project(blocks.Resolve()), nil
}

// Project maps resolved blocks onto external host records. The first
// pattern becomes the name, the remaining patterns the aliases, and the
// destination falls back to the name when no Hostname was configured.
func Project(blocks sshconfig.HostList) []Host {
	hosts := make([]Host, 0, len(blocks))
	for _, b := range blocks {
		patterns := b.Patterns()
		if len(patterns) == 0 {
			continue
		}

		h := Host{Name: patterns[0]}
		h.Aliases = strings.Join(patterns[1:], ", ")
		h.User, _ = b.Get(sshconfig.KeywordUser)
		h.Port, _ = b.Get(sshconfig.KeywordPort)
		h.ProxyCommand, _ = b.Get(sshconfig.KeywordProxyCommand)
		if dest, ok := b.Get(sshconfig.KeywordHostname); ok {
			h.Destination = dest
		} else {
			h.Destination = h.Name
		}

		hosts = append(hosts, h)
	}
	return hosts
}

// SortByName orders hosts by name, case-insensitively and stably. Display
// order only; resolution is unaffected.
func SortByName(hosts []Host) {
	sort.SliceStable(hosts, func(i, j int) bool {
		return strings.ToLower(hosts[i].Name) < strings.ToLower(hosts[j].Name)
	})
}

// FindByName returns the host whose name or alias equals name.
func FindByName(hosts []Host, name string) (Host, bool) {
	for _, h := range hosts {
		if h.Name == name {
			return h, true
		}
		for _, alias := range strings.Split(h.Aliases, ", ") {
			if alias != "" && alias == name {
				return h, true
			}
		}
	}
	return Host{}, false
}
