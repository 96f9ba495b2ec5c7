// Package taketest provides a recording harness for destructor and clone
// accounting in tests.
//
// A Recorder issues tokens; each token counts its Drop and Clone calls back
// into the recorder. Tests assert the totals:
//
//	rec := taketest.NewRecorder()
//	tok := rec.Token("conn")
//
//	b := take.NewBox(tok)
//	out := b.Take()
//	// rec.Drops("conn") == 0: nothing destroyed during the take
//
//	out.Drop()
//	// rec.Drops("conn") == 1: exactly one destructor, by the new owner
//
// Tokens implement the Dropper and Cloner contracts structurally; the
// package imports nothing from the library.
package taketest
