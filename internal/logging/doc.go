// Package logging provides logging utilities for hostpick.
//
// Two categories of output:
//   - Debug logging: structured logs via slog, enabled with --verbose and
//     switched to JSON with --json. Used on engine boundaries (files
//     opened, includes resolved, host counts).
//   - User output: formatted status lines for end users
//     (UserInfo/UserSuccess to stdout, UserWarning/UserError to stderr).
package logging
