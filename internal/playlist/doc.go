// Package playlist builds the list of tracks handed to the player.
//
// A Playlist is filled one directory at a time with AppendFromDirectory, which keeps entries in the order the
// filesystem returns them, and may then be randomized in place with Shuffle.
package playlist
