package conform_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/conform"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/payload"
	"github.com/dmitrymomot/formkit/pkg/standard"
	"github.com/dmitrymomot/formkit/pkg/submission"
)

type keyForm struct {
	Key string
}

// keyValidator accepts the payload when "key" equals "valid" and reports
// message otherwise.
func keyValidator(message string) standard.Validator[keyForm] {
	return standard.ValidatorFunc[keyForm](func(_ context.Context, p payload.Payload) standard.Return[keyForm] {
		if p.Get("key") != "valid" {
			return standard.Ready(standard.Fail[keyForm](standard.NewIssue("key", message)))
		}
		return standard.Ready(standard.Succeed(keyForm{Key: p.Get("key")}))
	})
}

func issuesValidator(issues ...standard.Issue) standard.Validator[any] {
	return standard.ValidatorFunc[any](func(context.Context, payload.Payload) standard.Return[any] {
		return standard.Ready(standard.Fail[any](issues...))
	})
}

func resolve[T any](t *testing.T, p payload.Payload, cfg conform.Config[T]) submission.Outcome[T] {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}
	out, err := conform.Resolve(context.Background(), p, nil, cfg)
	require.NoError(t, err)
	return out
}

func TestResolve_SkippedField(t *testing.T) {
	t.Parallel()

	out := resolve(t, payload.New("key", "invalid"), conform.Config[keyForm]{
		Schema: conform.Fixed(keyValidator(conform.MessageSkipped)),
	})

	require.False(t, out.IsValid())
	assert.Equal(t, submission.ErrorMap{"key": nil}, out.Error())
	assert.True(t, out.Error().Suppressed("key"))
}

func TestResolve_NestedSkippedField(t *testing.T) {
	t.Parallel()

	v := standard.ValidatorFunc[any](func(_ context.Context, p payload.Payload) standard.Return[any] {
		kv, _ := p.Tree()["kv"].(map[string]any)
		if kv["key"] != "valid" {
			return standard.Ready(standard.Fail[any](standard.Issue{
				Message: conform.MessageSkipped,
				Path:    []any{standard.PathSegment{Key: "kv"}, standard.PathSegment{Key: "key"}},
			}))
		}
		return standard.Ready(standard.Succeed[any](kv))
	})

	out := resolve(t, payload.New("kv.key", "invalid"), conform.Config[any]{Schema: conform.Fixed[any](v)})
	assert.Equal(t, submission.ErrorMap{"kv.key": nil}, out.Error())
}

func TestResolve_UndefinedMessage(t *testing.T) {
	t.Parallel()

	out := resolve(t, payload.New("key", "invalid"), conform.Config[keyForm]{
		Schema: conform.Fixed(keyValidator(conform.MessageUndefined)),
	})

	assert.False(t, out.IsValid())
	assert.Nil(t, out.Error())
}

func TestResolve_Success(t *testing.T) {
	t.Parallel()

	out := resolve(t, payload.New("key", "valid"), conform.Config[keyForm]{
		Schema: conform.Fixed(keyValidator("must be valid")),
	})

	require.True(t, out.IsValid())
	v, ok := out.Value()
	require.True(t, ok)
	assert.Equal(t, keyForm{Key: "valid"}, v)
	assert.Nil(t, out.Error())
}

func TestReduce_UndefinedIsTerminal(t *testing.T) {
	t.Parallel()

	for _, issues := range [][]standard.Issue{
		{standard.NewIssue("a", conform.MessageUndefined), standard.NewIssue("b", "required")},
		{standard.NewIssue("a", "required"), standard.NewIssue("b", conform.MessageUndefined)},
		{standard.NewIssue("a", "required"), standard.NewIssue("b", conform.MessageUndefined), standard.NewIssue("a", conform.MessageSkipped)},
	} {
		out := conform.Reduce(standard.Fail[int](issues...))
		assert.False(t, out.IsValid())
		assert.Nil(t, out.Error(), "issues: %v", issues)
	}
}

func TestReduce_SkippedIsFieldLocal(t *testing.T) {
	t.Parallel()

	out := conform.Reduce(standard.Fail[int](
		standard.NewIssue("email", "invalid email"),
		standard.NewIssue("password", conform.MessageSkipped),
		standard.NewIssue("password", "too short"),
		standard.NewIssue("email", "already taken"),
	))

	assert.Equal(t, submission.ErrorMap{
		"email":    {"invalid email", "already taken"},
		"password": nil,
	}, out.Error())
}

func TestReduce_SkippedAfterMessages(t *testing.T) {
	t.Parallel()

	out := conform.Reduce(standard.Fail[int](
		standard.NewIssue("name", "required"),
		standard.NewIssue("name", conform.MessageSkipped),
	))
	assert.Equal(t, submission.ErrorMap{"name": nil}, out.Error())
}

func TestReduce_PreservesOrder(t *testing.T) {
	t.Parallel()

	out := conform.Reduce(standard.Fail[int](
		standard.NewIssue("password", "too short"),
		standard.NewIssue("password", "needs a digit"),
		standard.NewIssue("password", "needs a symbol"),
	))
	assert.Equal(t, []string{"too short", "needs a digit", "needs a symbol"}, out.Error().Messages("password"))
}

func TestReduce_Idempotent(t *testing.T) {
	t.Parallel()

	r := standard.Fail[int](
		standard.NewIssue("a", "x"),
		standard.NewIssue("b", conform.MessageSkipped),
		standard.NewIssue("items[0].sku", "y"),
	)
	assert.Equal(t, conform.Reduce(r).Error(), conform.Reduce(r).Error())
}

func TestReduce_NoIssues(t *testing.T) {
	t.Parallel()

	out := conform.Reduce(standard.Fail[int]())
	assert.False(t, out.IsValid())
	assert.NotNil(t, out.Error())
	assert.Empty(t, out.Error())
}

type customKey struct{ name string }

func (k customKey) PathKey() any { return k.name }

type segmentIndex uint8

func TestFieldName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path []any
		want string
	}{
		{name: "root", path: nil, want: ""},
		{name: "plain keys", path: []any{"kv", "key"}, want: "kv.key"},
		{name: "wrapped keys", path: []any{standard.PathSegment{Key: "items"}, standard.PathSegment{Key: 1}}, want: "items[1]"},
		{name: "keyer", path: []any{customKey{name: "profile"}, "bio"}, want: "profile.bio"},
		{name: "sized ints", path: []any{"a", int64(2), segmentIndex(3)}, want: "a[2][3]"},
		{name: "integral float", path: []any{"a", 4.0}, want: "a[4]"},
		{name: "fractional float", path: []any{"a", 1.5}, want: "a[1.5]"},
		{name: "negative index", path: []any{"a", -1}, want: "a[-1]"},
		{name: "wrapped negative float", path: []any{"a", standard.PathSegment{Key: -2.5}}, want: "a[-2.5]"},
		{name: "large unsigned", path: []any{"a", uint64(18446744073709551615)}, want: "a[18446744073709551615]"},
		{name: "nil segment", path: []any{"a", nil, "b"}, want: "a.b"},
		{name: "unrepresentable", path: []any{"a", struct{ X int }{X: 1}}, want: "a.{1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, conform.FieldName(tt.path))
		})
	}
}

func TestResolve_Factory(t *testing.T) {
	t.Parallel()

	var got *submission.Intent
	schema := conform.FromIntent(func(intent *submission.Intent) standard.Validator[keyForm] {
		got = intent
		return keyValidator("must be valid")
	})

	intent := &submission.Intent{Type: "validate", Payload: "key"}
	out, err := conform.Resolve(context.Background(), payload.New("key", "nope"), intent, conform.Config[keyForm]{
		Schema: schema,
		Logger: logger.Discard(),
	})

	require.NoError(t, err)
	assert.Same(t, intent, got)
	assert.Equal(t, submission.ErrorMap{"key": {"must be valid"}}, out.Error())
}

func TestResolve_SchemaErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := conform.Resolve(ctx, payload.New(), nil, conform.Config[int]{Logger: logger.Discard()})
	assert.ErrorIs(t, err, conform.ErrNoSchema)

	nilFactory := conform.FromIntent(func(*submission.Intent) standard.Validator[int] { return nil })
	_, err = conform.Resolve(ctx, payload.New(), nil, conform.Config[int]{Schema: nilFactory, Logger: logger.Discard()})
	assert.ErrorIs(t, err, conform.ErrNoValidator)

	nilResult := standard.ValidatorFunc[int](func(context.Context, payload.Payload) standard.Return[int] {
		return standard.Ready[int](nil)
	})
	_, err = conform.Resolve(ctx, payload.New(), nil, conform.Config[int]{Schema: conform.Fixed[int](nilResult), Logger: logger.Discard()})
	assert.ErrorIs(t, err, conform.ErrNilResult)
}

func deferredValidator(calls *atomic.Int32, delay time.Duration, r standard.Result[string], err error) standard.Validator[string] {
	return standard.ValidatorFunc[string](func(ctx context.Context, _ payload.Payload) standard.Return[string] {
		calls.Add(1)
		return standard.Deferred(async.Go(ctx, func(ctx context.Context) (standard.Result[string], error) {
			select {
			case <-time.After(delay):
				return r, err
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}))
	})
}

func TestResolve_AsyncMismatch(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	v := deferredValidator(&calls, time.Millisecond, standard.Succeed("ok"), nil)

	_, err := conform.Resolve(context.Background(), payload.New(), nil, conform.Config[string]{
		Schema: conform.Fixed(v),
		Logger: logger.Discard(),
	})

	assert.ErrorIs(t, err, conform.ErrAsyncUnsupported)
	assert.EqualValues(t, 1, calls.Load())
}

func TestResolve_Async(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	v := deferredValidator(&calls, 10*time.Millisecond,
		standard.Fail[string](standard.NewIssue("email", "already taken")), nil)

	out, err := conform.Resolve(context.Background(), payload.New(), nil, conform.Config[string]{
		Schema: conform.Fixed(v),
		Async:  true,
		Logger: logger.Discard(),
	})

	require.NoError(t, err)
	assert.Equal(t, submission.ErrorMap{"email": {"already taken"}}, out.Error())
	assert.EqualValues(t, 1, calls.Load())
}

func TestResolve_AsyncWithReadyResult(t *testing.T) {
	t.Parallel()

	out := resolve(t, payload.New("key", "valid"), conform.Config[keyForm]{
		Schema: conform.Fixed(keyValidator("x")),
		Async:  true,
	})
	assert.True(t, out.IsValid())
}

func TestResolve_AsyncError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	boom := errors.New("lookup failed")
	v := deferredValidator(&calls, time.Millisecond, nil, boom)

	_, err := conform.Resolve(context.Background(), payload.New(), nil, conform.Config[string]{
		Schema: conform.Fixed(v),
		Async:  true,
		Logger: logger.Discard(),
	})

	assert.ErrorIs(t, err, conform.ErrValidation)
	assert.ErrorIs(t, err, boom)
}

func TestResolve_AsyncCanceled(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	v := deferredValidator(&calls, time.Minute, standard.Succeed("late"), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := conform.Resolve(ctx, payload.New(), nil, conform.Config[string]{
		Schema: conform.Fixed(v),
		Async:  true,
		Logger: logger.Discard(),
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResolve_ValidatorPanicsPropagate(t *testing.T) {
	t.Parallel()

	v := standard.ValidatorFunc[int](func(context.Context, payload.Payload) standard.Return[int] {
		panic("validator bug")
	})

	assert.PanicsWithValue(t, "validator bug", func() {
		_, _ = conform.Resolve(context.Background(), payload.New(), nil, conform.Config[int]{
			Schema: conform.Fixed[int](v),
			Logger: logger.Discard(),
		})
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	raw, err := submission.EncodeIntent(submission.Intent{Type: "validate", Payload: "key"})
	require.NoError(t, err)

	schema := conform.FromIntent(func(intent *submission.Intent) standard.Validator[keyForm] {
		if intent != nil && intent.Type == "validate" {
			return keyValidator(conform.MessageSkipped)
		}
		return keyValidator("must be valid")
	})
	cfg := conform.Config[keyForm]{Schema: schema, Logger: logger.Discard()}

	sub, err := conform.Parse(context.Background(), payload.New(submission.IntentField, raw, "key", "bad"), cfg)
	require.NoError(t, err)
	assert.False(t, sub.Valid)
	require.NotNil(t, sub.Intent)
	assert.Equal(t, submission.ErrorMap{"key": nil}, sub.Error)

	sub, err = conform.Parse(context.Background(), payload.New("key", "valid"), cfg)
	require.NoError(t, err)
	assert.True(t, sub.Valid)
	assert.Equal(t, keyForm{Key: "valid"}, sub.Value)
}

func TestParse_PropagatesContractViolation(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	_, err := conform.Parse(context.Background(), payload.New(), conform.Config[string]{
		Schema: conform.Fixed(deferredValidator(&calls, time.Millisecond, standard.Succeed("x"), nil)),
		Logger: logger.Discard(),
	})

	assert.ErrorIs(t, err, submission.ErrResolve)
	assert.ErrorIs(t, err, conform.ErrAsyncUnsupported)
}

func TestParseAsync(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	f := conform.ParseAsync(context.Background(), payload.New(), conform.Config[string]{
		Schema: conform.Fixed(deferredValidator(&calls, 5*time.Millisecond, standard.Succeed("done"), nil)),
		Async:  true,
		Logger: logger.Discard(),
	})

	sub, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.True(t, sub.Valid)
	assert.Equal(t, "done", sub.Value)
}

func ExampleReduce() {
	out := conform.Reduce(standard.Fail[any](
		standard.NewIssue("email", "invalid email"),
		standard.NewIssue("email", "already taken"),
		standard.NewIssue("password", conform.MessageSkipped),
	))

	errs := out.Error()
	for _, field := range errs.Fields() {
		fmt.Println(field, errs[field], errs.Suppressed(field))
	}
	// Output:
	// email [invalid email already taken] false
	// password [] true
}
