// Package project resolves the switch configuration and package.json paths
// for a project directory, loads both documents, and resets the installed
// dependency state before a fresh install.
package project
