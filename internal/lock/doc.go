// Package lock reads npm package-lock.json files. Only the installed
// version of each top-level dependency is extracted; the file is otherwise
// owned by npm.
package lock
