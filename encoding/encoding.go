// Package encoding offers (de)serialization for the three protocol messages
// (commitment, challenge, response) so the proof can run over any transport.
// It uses canonical CBOR; each message is self-contained and prefixed with a
// format version.
package encoding

import (
	"errors"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// formatVersion is bumped on any incompatible change to the message layout.
const formatVersion uint8 = 1

var errBadVersion = errors.New("encoding: message encoded with an incompatible format version")

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// Serialize writes from to writer as a versioned canonical CBOR message.
func Serialize(writer io.Writer, from any) error {
	encoder := encMode.NewEncoder(writer)

	if err := encoder.Encode(formatVersion); err != nil {
		return err
	}
	return encoder.Encode(from)
}

// Deserialize reads a message from reader into into, which must be a
// pointer. It fails if the message was written with a different format
// version.
func Deserialize(reader io.Reader, into any) error {
	decoder := cbor.NewDecoder(reader)

	var version uint8
	if err := decoder.Decode(&version); err != nil {
		return err
	}
	if version != formatVersion {
		return errBadVersion
	}
	return decoder.Decode(into)
}
