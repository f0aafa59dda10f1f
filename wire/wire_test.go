package wire

import (
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/platinummonkey/boxnote/boxerr"
)

func TestEachDecodesEachWireType(t *testing.T) {
	var data []byte
	data = protowire.AppendTag(data, 1, protowire.VarintType)
	data = protowire.AppendVarint(data, 42)
	data = protowire.AppendTag(data, 2, protowire.BytesType)
	data = protowire.AppendBytes(data, []byte("hello"))
	data = protowire.AppendTag(data, 3, protowire.Fixed32Type)
	data = protowire.AppendFixed32(data, protowire.EncodeFixed32(3.5))
	data = protowire.AppendTag(data, 4, protowire.Fixed64Type)
	data = protowire.AppendFixed64(data, protowire.EncodeFixed64(7.25))

	var got []Field
	if err := Each(data, func(f Field) error {
		got = append(got, f)
		return nil
	}); err != nil {
		t.Fatalf("Each: %v", err)
	}

	if len(got) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(got))
	}
	if got[0].Number != 1 || got[0].Uint64() != 42 {
		t.Errorf("field 1: %+v", got[0])
	}
	if got[1].Number != 2 || got[1].Str() != "hello" {
		t.Errorf("field 2: %+v", got[1])
	}
	if got[2].Number != 3 || got[2].Float32() != 3.5 {
		t.Errorf("field 3: %+v", got[2])
	}
	if got[3].Number != 4 || got[3].Float64() != 7.25 {
		t.Errorf("field 4: %+v", got[3])
	}
}

func TestEachSkipsUnknownTagsButStillCallsFn(t *testing.T) {
	var data []byte
	data = protowire.AppendTag(data, 99, protowire.VarintType)
	data = protowire.AppendVarint(data, 7)

	count := 0
	if err := Each(data, func(f Field) error {
		count++
		if f.Number != 99 {
			t.Errorf("expected field number 99, got %d", f.Number)
		}
		return nil
	}); err != nil {
		t.Fatalf("Each: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected fn called once for unrecognized field number, got %d", count)
	}
}

func TestEachMalformedDataReturnsProtobufDecodeError(t *testing.T) {
	err := Each([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, func(Field) error {
		return nil
	})
	if err == nil {
		t.Fatal("expected error for malformed data")
	}
	if be, ok := err.(*boxerr.Error); !ok || be.Kind != boxerr.ProtobufDecode {
		t.Fatalf("expected boxerr.ProtobufDecode, got %v", err)
	}
}

func TestEachStopsOnCallbackError(t *testing.T) {
	var data []byte
	data = protowire.AppendTag(data, 1, protowire.VarintType)
	data = protowire.AppendVarint(data, 1)
	data = protowire.AppendTag(data, 2, protowire.VarintType)
	data = protowire.AppendVarint(data, 2)

	calls := 0
	sentinel := testError("stop")
	err := Each(data, func(f Field) error {
		calls++
		return sentinel
	})
	if err != sentinel {
		t.Fatalf("expected sentinel error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one callback before stopping, got %d", calls)
	}
}

type testError string

func (e testError) Error() string { return string(e) }
