// Package types declares the response shapes of the Financial Modeling Prep API.
//
// The structs carry FMP's own JSON field names so responses decode without
// translation. They have no behavior; the api package fills them and the tools
// package hands them to LLMs as JSON.
package types
