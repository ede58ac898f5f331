// Package graph defines the media composition graph types: producers
// (clips, chains, playlists, tractors), their ordered filter
// attachments, and the stable-identity lookup used to find the live
// instance of a logical producer anywhere in an open project.
package graph
