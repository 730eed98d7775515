// Package http implements the REST transport of the job board.
//
// It wires chi routes for users, companies and jobs, decodes and validates
// request bodies, path parameters and query strings, and renders the shared
// success and error envelopes. Tracing, access logging, CORS, compression,
// request timeouts and access token checks are handled here before requests
// reach the service layer.
package http
