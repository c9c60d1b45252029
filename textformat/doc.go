// Package textformat reads and writes book records in the flat, line-structured catalog format.
//
// One record looks like this:
//
//	Dune
//	Herbert
//	1965
//	823.1
//	alice bob 0
//
// The first four lines hold title, author, publication year (integer), and catalog number
// (floating point). They are followed by whitespace-separated borrower IDs, front of the
// queue first, terminated by the sentinel token "0". The borrower tokens may span lines,
// whatever follows the sentinel on its line is discarded. A book without borrowers has
// the single token "0" as its queue line.
//
// Records can be concatenated: Encode terminates the queue line with a newline and
// Decoder reads records one after another until the stream ends.
package textformat
