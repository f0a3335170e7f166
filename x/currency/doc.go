/*
Package currency keeps the registry of known tokens.

A token must be registered before it can be used to price a publication.
Tokens are loaded from the genesis file or registered with CreateMsg, and can
never be modified afterwards.
*/
package currency
