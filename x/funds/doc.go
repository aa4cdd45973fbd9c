/*
Package funds defines a simple token ledger.

Every account is referenced by an address and holds a set of coins.
The package exposes a Controller that other extensions use to move
value between accounts, and a SendMsg for direct transfers authorized
by the account holder.
*/
package funds
