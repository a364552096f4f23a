// Package async provides small generic helpers for running a computation in its
// own goroutine and waiting for its result.
//
// Async starts the supplied function and immediately returns a *Future. The
// caller can block on Await, bound the wait with AwaitContext or
// AwaitWithTimeout, select on Done, or poll with IsComplete. Go is a shorthand
// for callbacks that only return an error.
//
// # Usage
//
//	future := async.Async(ctx, values, func(ctx context.Context, v form.Values) (form.Errors, error) {
//	    return validate(ctx, v), nil
//	})
//
//	errs, err := future.AwaitContext(ctx)
//
// # Error Handling
//
// The Future carries whatever error the callback returned. Two conditions are
// reported by the package itself: a context that was already done before the
// callback started (ctx.Err()), and a panic inside the callback, which is
// recovered and wrapped with ErrPanic. AwaitWithTimeout returns ErrTimeout when
// the timeout elapses first.
package async
