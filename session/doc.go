// Package session keeps the overrides of many dashboard runs in memory and
// threads each typed command through command.Parse and command.Apply.
//
// A Store is bounded: once Capacity sessions exist the least recently used
// one is evicted. The whole store can be written to and read back from a
// compressed snapshot so overrides survive a restart.
package session
