/*
Package x contains some standard extensions and the interfaces
they are built on.

Extensions are modular pieces that define common functionality:
message types, handlers to process them, and models to persist
their state. The sub-packages here are wired together by an
application, they never import each other's internals.

This top-level package holds the interfaces shared by the
extensions, most notably Authenticator, which decouples the
business logic from how a transaction was authorized.
*/
package x
