// Package feed talks to the Bing homepage image archive.
//
// Client.Fetch asks the archive for the picture of a given day, derives the
// cache name from the attribution text, and downloads the picture only when
// the cache does not already hold a file of that name. There are no retries;
// a failed request ends the fetch.
package feed
