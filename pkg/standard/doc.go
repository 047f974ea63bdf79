// Package standard defines the contract between validators and the
// normalizer: any validation engine can be plugged in by implementing
// Validator[T].
//
// A validator returns a Return[T], which is either Ready (the Result is
// known) or Deferred (a *async.Future delivers it later). A Result is a
// closed sum type of Success and Failure; use Match or a type switch on the
// two variants.
//
//	v := standard.ValidatorFunc[string](func(_ context.Context, p payload.Payload) standard.Return[string] {
//	    name := p.Get("name")
//	    if name == "" {
//	        return standard.Ready(standard.Fail[string](standard.NewIssue("name", "required")))
//	    }
//	    return standard.Ready(standard.Succeed(name))
//	})
package standard
