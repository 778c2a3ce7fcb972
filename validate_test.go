package mdtok

import (
	"bytes"
	"errors"
	"testing"
)

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{'o', 'k', 0xff, 0xfe, 0xfd}
	err := ValidateInput(data)
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
	var inputErr *InputError
	if !errors.As(err, &inputErr) || inputErr.Offset != 2 {
		t.Fatalf("expected offset 2, got %v", err)
	}
}

func TestValidateInputRejectsBinary(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateInput(data); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputRejectsControlHeavyInput(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefgh\x01"), 10)
	err := ValidateInput(data)
	var inputErr *InputError
	if !errors.As(err, &inputErr) || !errors.Is(err, ErrBinaryInput) || inputErr.Offset != 8 {
		t.Fatalf("expected ErrBinaryInput at offset 8, got %v", err)
	}
}

func TestValidateInputAcceptsText(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		[]byte("plain\r\n\ttext é ü _x_\n"),
		append(bytes.Repeat([]byte("a"), 200), 0x1b),
		[]byte("\x01"),
	} {
		if err := ValidateInput(data); err != nil {
			t.Fatalf("unexpected error for %q: %v", data, err)
		}
	}
}
