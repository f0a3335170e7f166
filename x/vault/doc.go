/*
Package vault implements a minimal yield pool.

Funds of a pool are held by the pool reserve account. Every deposit credits the
beneficiary with receipt tokens, minted through the cash extension. Receipts
represent a share of the reserve: the first deposit is credited one to one and
any later deposit proportionally to the receipts already minted.
*/
package vault
