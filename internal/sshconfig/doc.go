// Package sshconfig resolves OpenSSH-style configuration files into flat
// host blocks with effective settings.
//
// # Parsing
//
// Parser reads a config file line by line, classifying each directive
// against the ssh_config(5) keyword set. "Host" lines open blocks,
// "Include" directives pull in other files (glob-expanded, recursively,
// with cycle detection), and every other recognized directive is stored
// as an opaque string setting:
//
//	hosts, err := sshconfig.NewParser().ParseFile("~/.ssh/config")
//
// Directives preceding the first Host line form the implicit global
// block; after parsing its entries are merged into every host block with
// fill-if-absent semantics, so explicit host settings always win.
//
// Unrecognized directives are dropped silently unless Strict is set, in
// which case parsing fails with an UnknownEntryError.
//
// # Resolution
//
// The post-parse pipeline runs in a fixed order:
//
//	resolved := hosts.Spread().ApplyPatterns().DefaultHostnames().MergeSameHosts()
//
// or equivalently hosts.Resolve(). Spread splits multi-pattern blocks,
// ApplyPatterns folds wildcard blocks (*, ?, leading ! negation) into the
// literal hosts they match and then discards them, DefaultHostnames makes
// a host its own destination when none is configured, and MergeSameHosts
// collapses hosts whose settings are exactly equal into a single block
// with the names joined as aliases.
//
// # Errors
//
// Failures surface as typed errors: UnparseableLineError,
// UnknownEntryError, InvalidIncludeError (with ErrIncludeCycle and
// ErrHostsInsideHostBlock causes), or wrapped I/O errors. A failure in an
// included file aborts the whole parse.
package sshconfig
