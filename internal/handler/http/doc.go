// Package http implements the HTTP transport layer of the registry.
//
// It exposes route wiring, request handlers, and middleware for the REST
// API under /api. Cross-cutting concerns such as request tracing, access
// logging, CORS, bearer authentication of mutating routes and write rate
// limiting are handled here before requests reach the service layer.
//
// Every non-2xx response carries a JSON body of the form {"error": "..."}.
package http
