package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name    string
		msg     Message
		missing []string
	}{
		{name: "complete", msg: Message{Name: "A", Email: "a@x.com", Message: "hi"}},
		{name: "no message", msg: Message{Name: "A", Email: "a@x.com"}, missing: []string{"message"}},
		{name: "blank after trim", msg: Message{Name: "  ", Email: "a@x.com", Message: "\t"}, missing: []string{"name", "message"}},
		{name: "empty", msg: Message{}, missing: []string{"name", "email", "message"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Normalize().Validate()
			if tt.missing == nil {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.missing, verr.Fields)
		})
	}
}

func TestMessage_ValidateRejectsBadAddress(t *testing.T) {
	err := Message{Name: "A", Email: "not an address", Message: "hi"}.Validate()
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestMessage_Render(t *testing.T) {
	msg := Message{Name: "Ada", Email: "ada@x.com", Message: "<b>hi</b>\nthere", Company: "Acme"}

	assert.Equal(t, "New contact from Ada", msg.Subject())
	assert.Contains(t, msg.Text(), "Company: Acme\n")
	assert.NotContains(t, msg.Text(), "Budget:")
	assert.Contains(t, msg.HTML(), "&lt;b&gt;hi&lt;/b&gt;<br>there")
	assert.NotContains(t, msg.HTML(), "<b>hi</b>")
}
