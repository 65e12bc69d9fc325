// Package app contains the glue collection lifecycle: it loads manifests,
// binds every discovered (method, marker) pair into the glue registry, and
// optionally streams the collected glue as messages. It is decoupled from
// any specific entrypoint like a CLI.
package app
