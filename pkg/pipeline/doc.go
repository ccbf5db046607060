// Package pipeline composes independent Intcode machines.
//
// None of these helpers reach inside a machine. They only use the
// resumable RunToOutput contract, so every machine stays exclusively owned
// by the function driving it and all stepping happens on a single
// goroutine per composition:
//
//   - Chain passes a signal through a series of amplifiers once.
//   - Feedback loops the signal through the amplifiers until one halts.
//   - Search tries every phase ordering, spreading orderings over workers.
//   - Probe answers stateless queries against a program with memoisation.
package pipeline
