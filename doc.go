/*
Package weave defines interfaces used throughout the app, such as: storage,
transactions, handlers etc.
It also contains helpers to work with context, addresses, time and abci
results.

Look into this package to get a brief overview of design decisions made
around interfaces and extension building blocks. Business logic lives in the
x/ extensions, the fee distributing collection engine in x/collect.
*/
package weave
