/*
Package aliasfile stores the alias database in a YAML or JSON file.

A missing file can be treated as an empty store (the default for the CLI) so
that the first add creates it. Writes go through a temporary file in the same
directory and a rename, so readers never observe a half-written store.
*/
package aliasfile
