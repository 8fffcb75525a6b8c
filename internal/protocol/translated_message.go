package protocol

import "fmt"

// MaxSubstitutions is the largest parameter count a single count byte holds.
const MaxSubstitutions = 255

// TranslatedMessage is a client-side translation key plus the values
// substituted into it, in order.
type TranslatedMessage struct {
	Template      string
	Substitutions []string
}

func ReadTranslatedMessage(b *Buffer) (TranslatedMessage, error) {
	template, err := ReadString(b)
	if err != nil {
		return TranslatedMessage{}, fmt.Errorf("read message template: %w", err)
	}
	count, err := b.ReadByte()
	if err != nil {
		return TranslatedMessage{}, fmt.Errorf("read substitution count: %w", err)
	}
	msg := TranslatedMessage{Template: template, Substitutions: make([]string, 0, count)}
	for i := 0; i < int(count); i++ {
		s, err := ReadString(b)
		if err != nil {
			return TranslatedMessage{}, fmt.Errorf("read substitution %d: %w", i, err)
		}
		msg.Substitutions = append(msg.Substitutions, s)
	}
	return msg, nil
}

func WriteTranslatedMessage(b *Buffer, msg TranslatedMessage) error {
	if len(msg.Substitutions) > MaxSubstitutions {
		return fmt.Errorf("%w: %d substitutions", ErrValueOutOfRange, len(msg.Substitutions))
	}
	WriteString(b, msg.Template)
	b.WriteByte(byte(len(msg.Substitutions)))
	for _, s := range msg.Substitutions {
		WriteString(b, s)
	}
	return nil
}
