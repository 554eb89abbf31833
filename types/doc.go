/*
Package types defines mailvet's information model. Which is rather simple and
mainly revolves around [AddressTask] and [ValidationRecord], as well as the
validation [Status] of addresses. An [AddressTask] is a raw input line together
with its original list position, and a [ValidationRecord] is the per-address
verdict eventually written to the report.

Records are plain values: they are created once by the validation worker that
owns the corresponding task and are never mutated afterwards, so they can be
passed around through channels without any locking.
*/
package types
