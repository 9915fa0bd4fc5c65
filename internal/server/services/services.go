// Package services implements the business rules between the HTTP layer and
// the repositories: registration and login, wall posting, status checks.
package services

// QueryLimit caps every find-many query. There is no pagination; list
// endpoints return at most this many rows, newest first.
const QueryLimit = 1000
