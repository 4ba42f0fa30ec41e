// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// Calling agents are not authenticated; the HTTP surface is meant to sit behind
// whatever gateway the deployment already trusts.
package middleware
