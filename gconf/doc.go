/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration entity, stored under a key derived
from the extension name. Configuration is loaded from the genesis file and can
be updated later by the configuration owner using an update message handled by
UpdateConfigurationHandler.
*/
package gconf
