// Package planka maps logical Planka actions onto HTTP requests.
//
// Each exported method is one fixed action: one HTTP method, one path
// template with resource IDs interpolated, and a body holding only
// the fields the caller supplied. Responses arrive wrapped in the
// server's envelope; singular actions return the `item` field, plural
// actions the `items` field, and a few GETs return the raw body
// because it carries a sibling `included` map (board retrieval most
// importantly).
//
// Payloads are opaque: the client performs no validation of resource
// shapes and treats IDs and tokens as unstructured strings. Update
// structs use pointer fields so that an unset field is never
// serialized, keeping "leave unchanged" distinct from "set to empty".
package planka
