/*
Package covaulttest provides mocks and helpers for testing the
extensions. Prefer these doubles over writing your own, so all tests
exercise authentication, transactions and handlers the same way.
*/
package covaulttest
