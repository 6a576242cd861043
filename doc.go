// Package customtab opens a URL in the system browser and shows the query
// parameters of the redirect that comes back.
//
// The module is organised as:
//  1. callback – turns redirect URIs into callback state (the core),
//  2. session – browser launcher plus the loopback endpoint receiving redirects,
//  3. render – text, JSON and YAML output of callback state,
//  4. app – command options and wiring used by cmd/customtab.
//
// Example:
//
//	customtab -u 'https://idp.example.com/start' --path /callback --format json
//
// The redirect endpoint address is logged at info level; point the remote
// page's redirect at it.
package customtab
