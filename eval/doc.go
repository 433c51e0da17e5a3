// Package eval runs expr-lang scripts against TreeML documents.
//
// Scripts see the variables of an Env and a set of registered functions
// which read the document through path expressions:
//
//	get("server.port") > 1024 && has("server.tls")
//
// See Symbols for the available functions.
package eval
