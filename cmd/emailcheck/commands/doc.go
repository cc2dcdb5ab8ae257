// Package commands defines the emailcheck CLI.
//
// Commands
//
//   - check    Validate addresses given as arguments or read from stdin
//   - grammar  Print the compiled address patterns
//
// # Configuration
//
// Settings are read from EMAILCHECK_* environment variables and an optional
// .env file (see Settings); flags override them. The message language is
// taken from --lang, EMAILCHECK_LANG or the POSIX locale variables, in that
// order, and matched against the embedded translations.
//
// # Exit status
//
// check exits with 1 when at least one address is invalid and with 2 on
// usage or configuration errors.
package commands
