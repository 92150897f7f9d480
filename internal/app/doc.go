// Package app contains the core application logic. It defines the App
// struct, its configuration, and the synchronous pipeline that turns a
// symbolic dump into a rendered graph document, decoupled from any specific
// entrypoint like a CLI.
package app
