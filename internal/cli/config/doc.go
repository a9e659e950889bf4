// Package config persists and resolves planka-cli connection settings.
//
// The persisted state is a two-field JSON file, conceptually
// ~/.config/planka/config.json, holding the server URL and the bearer
// token obtained at login. The file is owner-only (0600) and writes
// are atomic (temp file + rename).
//
// Per-invocation resolution layers three sources, later wins:
//
//  1. The persisted file
//  2. PLANKA_URL / PLANKA_TOKEN environment variables
//  3. Explicit command-line flags
//
// Environment overrides never write back to the file.
package config
