/*
Package gitkeeper provides CLI tooling to govern shared git branches.

The primary goal of gitkeeper is to add guardrails around branches a team
operates together: advisory time-bounded locks, point-in-time backups of
the full ref set, and merge-safety analysis before anything mutates them.
*/
package gitkeeper
