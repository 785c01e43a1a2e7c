package egcapi

import (
	"reflect"
	"testing"
)

func TestDecodeFlags_EveryMask(t *testing.T) {
	for mask := 0; mask < 64; mask++ {
		f := DecodeFlags(mask)
		values := f.values()
		for bit := 0; bit < 6; bit++ {
			want := mask&(1<<bit) != 0
			if values[bit] != want {
				t.Fatalf("DecodeFlags(%d) bit %d = %v, want %v", mask, bit, values[bit], want)
			}
		}
		if got := f.Mask(); got != mask {
			t.Fatalf("DecodeFlags(%d).Mask() = %d, want %d", mask, got, mask)
		}
	}
}

func TestDecodeFlags_Five(t *testing.T) {
	got := DecodeFlags(5)
	want := Flags{StreamCommand: true, Screenshot: true}
	if got != want {
		t.Fatalf("DecodeFlags(5) = %+v, want %+v", got, want)
	}
}

func TestDecodeFlags_IgnoresHighBits(t *testing.T) {
	if got := DecodeFlags(64 | 2); got != (Flags{Record: true}) {
		t.Fatalf("DecodeFlags(66) = %+v, want record only", got)
	}
}

func TestFlags_NamesAndHas(t *testing.T) {
	f := DecodeFlags(flagRecord | flagStream | flagLiveCommentary)

	want := []string{"record", "stream", "live_commentary"}
	if got := f.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	if !f.Has("stream") {
		t.Fatalf("Has(stream) = false, want true")
	}
	if f.Has("screenshot") {
		t.Fatalf("Has(screenshot) = true, want false")
	}
	if f.Has("bogus") {
		t.Fatalf("Has(bogus) = true, want false")
	}
	if names := (Flags{}).Names(); names != nil {
		t.Fatalf("empty Names() = %v, want nil", names)
	}
}
