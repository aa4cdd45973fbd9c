/*
Package vault implements quorum-based multi-party authorization of
value transfers.

A vault is an account controlled by a registry of signers and an owner.
Any signer may initiate a transfer out of the vault, which records a
pending transaction with the initiator's approval already counted.
Other signers approve the pending transaction; the moment the number of
approvals reaches the vault's quorum the transaction is marked executed
and the coins move to the destination. An executed transaction is
terminal and cannot be approved again.

The owner maintains the signer registry and the quorum, and may hand
the vault over using a two-phase handshake: TransferOwnershipMsg
nominates a candidate, who must then send ClaimOwnershipMsg to take
over. Nominating a new candidate supersedes the previous one.

All effects of a single message are atomic. Execution flips the
transaction state and persists it before moving any coins, and a failed
transfer aborts the whole delivery, so no partial state survives.
*/
package vault
