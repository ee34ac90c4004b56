// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Binary encoding shared by GobEncode and MarshalMsgpack: a sign byte
// followed by the little-endian limb sequence, each limb as a fixed 4-byte
// field. This is grounded on db47h-decimal/decimal_marsh.go's approach of
// hand-rolling a compact binary form rather than reflecting over the
// struct, since the unexported mag/neg fields aren't visible to either
// codec by default.
func (x *Int) marshalBinary() []byte {
	buf := make([]byte, 1+4*len(x.mag))
	if x.neg {
		buf[0] = 1
	}
	for i, w := range x.mag {
		binary.LittleEndian.PutUint32(buf[1+4*i:], uint32(w))
	}
	return buf
}

func (x *Int) unmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("bignum: unmarshal: empty payload")
	}
	if (len(data)-1)%4 != 0 {
		return fmt.Errorf("bignum: unmarshal: payload length %d is not 1+4n", len(data))
	}
	neg := data[0] != 0
	mag := make([]Word, (len(data)-1)/4)
	for i := range mag {
		mag[i] = Word(binary.LittleEndian.Uint32(data[1+4*i:]))
	}
	mag = normalize(mag)
	if len(mag) == 0 && neg {
		return fmt.Errorf("bignum: unmarshal: zero magnitude with sign bit set")
	}
	x.mag, x.neg = mag, neg
	return nil
}

// GobEncode implements gob.GobEncoder, letting *Int values pass through
// encoding/gob without exporting the mag/neg fields (spec §6.1's opaque
// value type).
func (x *Int) GobEncode() ([]byte, error) {
	return x.marshalBinary(), nil
}

// GobDecode implements gob.GobDecoder.
func (x *Int) GobDecode(data []byte) error {
	return x.unmarshalBinary(data)
}

// MarshalMsgpack implements msgpack.Marshaler, encoding an *Int as a
// msgpack binary blob using the same layout as GobEncode.
func (x *Int) MarshalMsgpack() ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeBytes(x.marshalBinary()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalMsgpack implements msgpack.Unmarshaler.
func (x *Int) UnmarshalMsgpack(data []byte) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	raw, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	return x.unmarshalBinary(raw)
}
