// Package async provides a small generic Future used to carry results that
// are produced on another goroutine.
//
// Validators that need I/O (a uniqueness lookup, a remote policy check) hand
// back a *Future instead of a ready result. Callers wait with Await, which
// also honors context cancellation, or poll with IsComplete.
//
// # Usage
//
//	f := async.Go(ctx, func(ctx context.Context) (bool, error) {
//	    return store.EmailTaken(ctx, email)
//	})
//
//	taken, err := f.Await(ctx)
//
// Resolved wraps a value that is already known, and Then chains a follow-up
// computation onto a Future.
//
// # Error Handling
//
// Await returns the error produced by the callback, or ctx.Err() when the
// context ends first. AwaitWithTimeout returns ErrTimeout.
package async
