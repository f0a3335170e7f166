/*
Package collect implements fee-gated collection of publications.

A publication is configured once, by the hub, when it is created. The
configuration declares the price of a collection, who receives the proceeds
and which gates a collector must pass: follower only, an end time and a limit
of collections.

Every collection is processed in two phases. First all gates are checked and
the collection counter is incremented and persisted together with a record of
the planned token movements. Only then the movements are executed: the
treasury cut, the referral cut and a cut for every recipient. Funds are pulled
from the collector using an allowance granted to the engine address. Any
failure aborts the whole transaction.

All shares are expressed in basis points, where 10000 stands for 100%. Every
cut is rounded down. Rounding dust is never pulled from the collector.
*/
package collect
