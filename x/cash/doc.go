/*
Package cash defines a simple implementation of sending coins
between wallets.

There is no logic in the coins (tokens), except that the balance
of any coin may not go below zero. Thus, this implementation is
referred to as cash. Simple and safe.

An owner can approve a spender to move a limited amount of funds on the
owner's behalf. Allowances are consumed by TransferFrom and are the way
other extensions pull payments from a wallet.
*/
package cash
