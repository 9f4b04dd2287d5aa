// Package todosdk provides the wire types for the ticklist HTTP API and a
// typed client for driving it. The server handlers and the e2e suite share
// these types so the contract only exists in one place.
package todosdk
