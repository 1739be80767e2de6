// Package config manages user-level settings stored at ~/.docubook/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the preferred package manager and the default project name offered by the
// create prompt. Every key can be overridden with a DOCUBOOK_* environment
// variable.
package config
