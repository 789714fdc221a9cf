/*
Package vokram builds n-gram Markov models of word sequences and uses them
to synthesize new, plausible-sounding text.

A model maps every n-token prefix observed in a corpus to the multiset of
tokens seen immediately after it. Generation is a random walk over that
mapping: starting from some prefix, the next word is sampled from the
prefix's successors (weighted by how often each was observed), the window
slides forward by one word, and the process repeats until a word budget is
exhausted or the walk reaches a prefix with no recorded continuation.

Models are immutable once built and safe for concurrent use by any number
of generators, provided each generation is given its own random source.
*/
package vokram
