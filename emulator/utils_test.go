package emulator

import (
	"testing"
)

func TestAdd32Overflow(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	if _, err := add32Overflow(1, 2); err != nil {
		t.Error("unexpected overflow")
	}
	v, err := add32Overflow(0x7fffffff, 1)
	assert(err != nil)
	assert(v == -0x80000000)
}

func TestSub32Overflow(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	if _, err := sub32Overflow(5, 3); err != nil {
		t.Error("unexpected overflow")
	}
	v, err := sub32Overflow(-0x80000000, 1)
	assert(err != nil)
	assert(v == 0x7fffffff)
}

func TestAccessSizeRoundTrip(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	assert(accessSizeToU32(ACCESS_BYTE, accessSizeU32(ACCESS_BYTE, 0x1234)) == 0x34)
	assert(accessSizeToU32(ACCESS_HALFWORD, accessSizeU32(ACCESS_HALFWORD, 0x12345678)) == 0x5678)
	assert(accessSizeToU32(ACCESS_WORD, accessSizeU32(ACCESS_WORD, 0x12345678)) == 0x12345678)
}
