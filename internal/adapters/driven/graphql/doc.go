// Package graphql is the GitHub GraphQL transport.
//
// Requests go through the go-github client so that GitHub's error and rate
// limit responses are decoded the same way as REST calls. Authentication is
// supplied by a driven.TokenProvider through an oauth2 transport, and a
// RateLimiter throttles requests proactively and refuses to send when the
// remaining quota is exhausted. Failed requests are never retried.
package graphql
