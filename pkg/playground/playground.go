package playground

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/formkit/pkg/formpath"
	"github.com/dmitrymomot/formkit/pkg/payload"
	"github.com/dmitrymomot/formkit/pkg/standard"
)

// MessageFunc renders the message for a failed validation tag.
type MessageFunc func(fe validator.FieldError) string

type options struct {
	validate *validator.Validate
	messages MessageFunc
}

type Option func(*options)

// WithValidate uses v instead of a fresh validator.New(). v is not modified,
// so it can be shared; FieldError.Field reports names from v's own tag name
// function. Issue paths use form names either way.
func WithValidate(v *validator.Validate) Option {
	return func(o *options) {
		if v != nil {
			o.validate = v
		}
	}
}

// WithMessages overrides how messages are rendered. Returning an empty
// string falls back to the default message.
func WithMessages(fn MessageFunc) Option {
	return func(o *options) { o.messages = fn }
}

type structValidator[T any] struct {
	validate *validator.Validate
	messages MessageFunc
	typ      reflect.Type
}

// New returns a validator that binds the payload into T with payload.Bind
// and checks it with `validate` struct tags.
//
//	type Signup struct {
//		Email string `form:"email" validate:"required,email"`
//	}
//
//	v := playground.New[Signup]()
func New[T any](opts ...Option) standard.Validator[T] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.validate == nil {
		o.validate = validator.New(validator.WithRequiredStructEnabled())
		o.validate.RegisterTagNameFunc(formTagName)
	}

	return &structValidator[T]{
		validate: o.validate,
		messages: o.messages,
		typ:      reflect.TypeFor[T](),
	}
}

func (s *structValidator[T]) Validate(ctx context.Context, p payload.Payload) standard.Return[T] {
	var v T
	if err := p.Bind(&v); err != nil {
		var fieldErr *payload.FieldError
		if errors.As(err, &fieldErr) {
			return standard.Ready(standard.Fail[T](standard.NewIssue(fieldErr.Field, "has an invalid value")))
		}
		return standard.Ready(standard.Fail[T](standard.Issue{Message: err.Error()}))
	}

	err := s.validate.StructCtx(ctx, &v)
	if err == nil {
		return standard.Ready(standard.Succeed(v))
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return standard.Ready(standard.Fail[T](standard.Issue{Message: err.Error()}))
	}

	issues := make([]standard.Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, standard.Issue{
			Message: s.message(fe),
			Path:    fieldPath(s.typ, fe.StructNamespace()),
		})
	}
	return standard.Ready(standard.Fail[T](issues...))
}

func (s *structValidator[T]) message(fe validator.FieldError) string {
	if s.messages != nil {
		if msg := s.messages(fe); msg != "" {
			return msg
		}
	}
	return DefaultMessage(fe)
}

// fieldPath maps a struct namespace such as "Signup.Address.City" to form
// names by walking t, dropping the root type name.
func fieldPath(t reflect.Type, namespace string) []any {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return nil
	}

	segments := formpath.Parse(rest)
	for i, seg := range segments {
		for t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t == nil {
			break
		}

		switch t.Kind() {
		case reflect.Struct:
			name, ok := seg.(string)
			if !ok {
				t = nil
				continue
			}
			f, ok := t.FieldByName(name)
			if !ok {
				t = nil
				continue
			}
			segments[i] = formTagName(f)
			t = f.Type
		case reflect.Slice, reflect.Array, reflect.Map:
			t = t.Elem()
		default:
			t = nil
		}
	}
	return segments
}

// formTagName mirrors payload.Bind naming so namespaces match field names.
func formTagName(f reflect.StructField) string {
	if f.Tag.Get("file") != "" {
		name, _, _ := strings.Cut(f.Tag.Get("file"), ",")
		return name
	}
	tag := f.Tag.Get("form")
	if tag == "-" {
		return "-"
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return strings.ToLower(f.Name)
	}
	return name
}
