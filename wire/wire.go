// Package wire provides a minimal, tag-tolerant protobuf field reader used
// by the record decoders. It deliberately does not generate or require
// .pb.go stubs: every message in this format is small and flat, so each
// record decoder walks its own fields with a plain tag switch, using this
// package only for the low-level varint/fixed/length-delimited framing.
// Unknown tags are always tolerated (simply skipped), matching prost's
// default forward-compatible decode behavior.
package wire

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/platinummonkey/boxnote/boxerr"
)

// Field is one decoded top-level (tag, value) pair.
type Field struct {
	Number protowire.Number
	Type   protowire.Type

	varint  uint64
	fixed32 uint32
	fixed64 uint64
	bytes   []byte
}

// Str interprets the field as a length-delimited UTF-8 string.
func (f Field) Str() string { return string(f.bytes) }

// Bytes interprets the field as raw length-delimited bytes.
func (f Field) Bytes() []byte { return f.bytes }

// Int64 interprets the field as a varint-encoded signed integer.
func (f Field) Int64() int64 { return int64(f.varint) }

// Uint64 interprets the field as a varint-encoded unsigned integer.
func (f Field) Uint64() uint64 { return f.varint }

// Uint32 interprets the field as a 32-bit fixed-width unsigned integer.
func (f Field) Uint32() uint32 { return f.fixed32 }

// Float32 interprets the field's fixed32 bit pattern as an IEEE-754 float.
func (f Field) Float32() float32 {
	return protowire.DecodeFixed32(f.fixed32)
}

// Float64 interprets the field's fixed64 bit pattern as an IEEE-754 double.
func (f Field) Float64() float64 {
	return protowire.DecodeFixed64(f.fixed64)
}

// Each walks every top-level field of a protobuf-framed message, invoking
// fn once per varint, fixed32, fixed64, or length-delimited field in wire
// order. Fields of any other wire type (groups) are consumed without
// calling fn. Malformed framing aborts with a ProtobufDecode error; an
// unrecognized field number is left to the caller to ignore (fn is called
// regardless of number).
func Each(data []byte, fn func(Field) error) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return boxerr.New(boxerr.ProtobufDecode, "malformed field tag")
		}
		data = data[n:]

		f := Field{Number: num, Type: typ}

		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return boxerr.New(boxerr.ProtobufDecode, "malformed varint field")
			}
			f.varint = v
			data = data[n:]
		case protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(data)
			if n < 0 {
				return boxerr.New(boxerr.ProtobufDecode, "malformed fixed32 field")
			}
			f.fixed32 = v
			data = data[n:]
		case protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(data)
			if n < 0 {
				return boxerr.New(boxerr.ProtobufDecode, "malformed fixed64 field")
			}
			f.fixed64 = v
			data = data[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return boxerr.New(boxerr.ProtobufDecode, "malformed length-delimited field")
			}
			f.bytes = v
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return boxerr.New(boxerr.ProtobufDecode, "malformed field of unsupported wire type")
			}
			data = data[n:]
			continue
		}

		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}
