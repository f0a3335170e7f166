/*
Package utils provides decorators that are not bound to any extension:
panic recovery, savepoints, logging and action tagging.
*/
package utils
