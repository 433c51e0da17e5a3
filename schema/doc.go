// Package schema compiles TreeML schema documents and validates documents
// against them.
//
// A schema is itself a TreeML document. Each node names the document node
// it describes, and its value is a comma separated list of tokens:
//
//	person : single
//		name : single, string
//		id : single, tokenid
//		friend : optional, tokenidref
//		age : optional, single, integer
//
// Nodes without "single" may repeat. A node named "token" matches any
// name. Identifiers declared by tokenid values are owned by the Schema and
// are reset at the start of each Validate.
package schema
