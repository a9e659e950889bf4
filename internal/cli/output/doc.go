// Package output provides output formatting for planka-cli.
//
// Commands render either an explicit Table or a decoded JSON payload
// through a Formatter selected by the global --output flag:
//
//   - table: tabwriter-aligned columns; single resources become a
//     FIELD/VALUE listing with keys sorted for stable output
//   - json: indented JSON
//   - yaml: YAML via gopkg.in/yaml.v3
package output
