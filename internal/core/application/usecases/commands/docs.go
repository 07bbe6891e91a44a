// Package commands contains the operations that change stored state.
// Every handler follows the same shape: validate the command, open a unit of
// work, write through its repository, commit.
package commands
