// Package resolvers provides reference resolver implementations for
// the mention resolution engine.
//
// Three adapters are included, each independently substitutable:
//
//   - Filesystem: reads resource paths relative to a base directory on
//     an afero filesystem, inferring the MIME type from the file
//     extension.
//   - Memory: a simple in-process key-value store, useful for tests
//     and ephemeral data.
//   - HTTP: issues a GET against https://<server><path> and passes
//     through the response's declared content type.
//
// All adapters treat "no such resource" as a nil result rather than an
// error; only internal faults surface as errors. The filesystem
// adapter can additionally be paired with a Watcher that reports file
// changes under the base directory, letting a host invalidate cached
// resolutions when their backing files change.
package resolvers
