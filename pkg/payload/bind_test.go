package payload_test

import (
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/payload"
)

type address struct {
	City string `form:"city"`
	Zip  string `form:"zip"`
}

type signupForm struct {
	Email    string    `form:"email"`
	Age      int       `form:"age"`
	Score    float64   `form:"score"`
	Remember bool      `form:"remember"`
	Roles    []string  `form:"roles"`
	Ref      *string   `form:"ref"`
	Birthday time.Time `form:"birthday"`
	Address  address   `form:"address"`
	Billing  *address  `form:"billing"`
	Internal string    `form:"-"`
	Nickname string
	Avatar   *multipart.FileHeader   `file:"avatar"`
	Docs     []*multipart.FileHeader `file:"docs"`
}

func TestBind(t *testing.T) {
	t.Parallel()

	p := payload.New(
		"email", "a@b.co",
		"age", "31",
		"score", "9.5",
		"remember", "on",
		"roles", "admin",
		"roles", "editor",
		"ref", "campaign",
		"birthday", "1990-04-01",
		"address.city", "Berlin",
		"address.zip", "10115",
		"internal", "nope",
		"nickname", "neo",
	)
	p.AddFile("avatar", &multipart.FileHeader{Filename: "../../etc/me.png"})
	p.AddFile("docs", &multipart.FileHeader{Filename: "a.pdf"})
	p.AddFile("docs", &multipart.FileHeader{Filename: "b.pdf"})

	var form signupForm
	require.NoError(t, p.Bind(&form))

	assert.Equal(t, "a@b.co", form.Email)
	assert.Equal(t, 31, form.Age)
	assert.InDelta(t, 9.5, form.Score, 0.0001)
	assert.True(t, form.Remember)
	assert.Equal(t, []string{"admin", "editor"}, form.Roles)
	require.NotNil(t, form.Ref)
	assert.Equal(t, "campaign", *form.Ref)
	assert.Equal(t, time.Date(1990, 4, 1, 0, 0, 0, 0, time.UTC), form.Birthday)
	assert.Equal(t, address{City: "Berlin", Zip: "10115"}, form.Address)
	assert.Nil(t, form.Billing, "pointer struct without submitted fields stays nil")
	assert.Empty(t, form.Internal)
	assert.Equal(t, "neo", form.Nickname)
	require.NotNil(t, form.Avatar)
	assert.Equal(t, "me.png", form.Avatar.Filename)
	assert.Len(t, form.Docs, 2)
}

func TestBind_PointerStruct(t *testing.T) {
	t.Parallel()

	var form signupForm
	require.NoError(t, payload.New("billing.city", "Paris").Bind(&form))
	require.NotNil(t, form.Billing)
	assert.Equal(t, "Paris", form.Billing.City)
}

func TestBind_CommaSeparatedSlice(t *testing.T) {
	t.Parallel()

	var form signupForm
	require.NoError(t, payload.New("roles", "a, b,c").Bind(&form))
	assert.Equal(t, []string{"a", "b", "c"}, form.Roles)
}

func TestBind_EmptyNumericLeavesZero(t *testing.T) {
	t.Parallel()

	var form signupForm
	require.NoError(t, payload.New("age", "").Bind(&form))
	assert.Zero(t, form.Age)
}

func TestBind_ConversionError(t *testing.T) {
	t.Parallel()

	var form signupForm
	err := payload.New("address.zip", "x", "age", "old").Bind(&form)
	require.Error(t, err)
	assert.ErrorIs(t, err, payload.ErrBind)

	var fieldErr *payload.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "age", fieldErr.Field)
}

func TestBind_InvalidTarget(t *testing.T) {
	t.Parallel()

	var form signupForm
	assert.ErrorIs(t, payload.New().Bind(form), payload.ErrBind)
	assert.ErrorIs(t, payload.New().Bind((*signupForm)(nil)), payload.ErrBind)

	s := "x"
	assert.ErrorIs(t, payload.New().Bind(&s), payload.ErrBind)
}
