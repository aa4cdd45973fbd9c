/*
Package covault defines the common interfaces that weave together the
quorum-based transfer authorization engine.

The root package contains only the glue: message and transaction
interfaces, the Handler/Decorator processing model, the key-value store
contracts with savepoint support, and the Address/Condition identity
types. The engine itself lives in the extension packages under x/ and is
assembled by the app package.
*/
package covault
