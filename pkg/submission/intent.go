package submission

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/formkit/pkg/payload"
)

// IntentField is the reserved payload name carrying the serialized intent.
const IntentField = "__intent__"

// Intent describes why a submission is being (re)validated, e.g. a single
// field revalidated on blur. Its meaning is up to the form engine.
type Intent struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// EncodeIntent serializes an intent for IntentField.
func EncodeIntent(intent Intent) (string, error) {
	b, err := json.Marshal(intent)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidIntent, err)
	}
	return string(b), nil
}

// DecodeIntent reads the intent from p. It returns nil when p carries none.
func DecodeIntent(p payload.Payload) (*Intent, error) {
	raw := p.Get(IntentField)
	if raw == "" {
		return nil, nil
	}

	var intent Intent
	if err := json.Unmarshal([]byte(raw), &intent); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIntent, err)
	}
	if intent.Type == "" {
		return nil, fmt.Errorf("%w: missing type", ErrInvalidIntent)
	}
	return &intent, nil
}
