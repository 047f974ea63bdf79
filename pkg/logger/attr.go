package logger

import "log/slog"

func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field is the name of a form field.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Fields is the number of fields carrying errors.
func Fields(n int) slog.Attr {
	return slog.Int("fields", n)
}

// Issues is the number of issues reported by a validator.
func Issues(n int) slog.Attr {
	return slog.Int("issues", n)
}

// Intent logs the intent type. Empty types produce no attribute.
func Intent(intentType string) slog.Attr {
	if intentType == "" {
		return slog.Attr{}
	}
	return slog.String("intent", intentType)
}

func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

func Async(ok bool) slog.Attr {
	return slog.Bool("async", ok)
}
