// Package config loads hostpick's own options file.
//
// Options live in ~/.config/hostpick/config.toml and supply defaults for
// the command-line flags; flags always win. Example:
//
//	config_paths = ["/etc/ssh/ssh_config", "~/.ssh/config"]
//	template = 'ssh "{{.Name}}"'
//	sort = true
//	show_proxy_command = false
//
// A missing options file is not an error — the built-in defaults apply.
// Note these are hostpick's settings, not the ssh configuration itself;
// parsing of ssh config files lives in internal/sshconfig.
package config
