/*
Package errors implements custom error interfaces for covault.

The idea is to reuse as many errors from this package as possible and
define a new error only if there is no reasonable exact match. Errors
are registered with a unique code so that they can be returned over the
ABCI interface in a machine readable form. Extension packages register
their own codes, each within its own reserved range.

Use Wrap or Wrapf to add context to an error while preserving the
original root cause, and use the root error's Is method to test for a
match.
*/
package errors
