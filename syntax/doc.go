/*
Package syntax implements mailvet's address syntax validation: it checks that
a raw input line is a plausible bare email address and normalizes it so that
domain extraction downstream is consistent (the domain part gets lowercased,
the local part is left untouched).

[Check] is a pure function without any shared mutable state, so it can be
called from any number of validation workers concurrently.

Please note that this is deliberately not a full RFC 5322 grammar: display
names, group syntax and source routes are rejected outright, as an address
list entry is expected to be a bare addr-spec. Whether the address actually
accepts mail is the business of the domain resolution stage, not of this
package.
*/
package syntax
