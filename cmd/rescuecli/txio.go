package main

import (
	"encoding/binary"
	"io"

	"github.com/iov-one/rescue/cmd/rescued/app"
)

// Commands pass transactions to each other as frames: a big endian uint32
// length of the protobuf encoded transaction followed by the encoding itself.
// Framing allows many transactions to be streamed through a single pipe.
const txHeaderSize = 4

// writeTx writes a single transaction frame and returns the number of bytes
// written.
func writeTx(w io.Writer, tx *app.Tx) (int, error) {
	raw, err := tx.Marshal()
	if err != nil {
		return 0, err
	}
	frame := make([]byte, txHeaderSize+len(raw))
	binary.BigEndian.PutUint32(frame, uint32(len(raw)))
	copy(frame[txHeaderSize:], raw)
	return w.Write(frame)
}

// readTx reads a single transaction frame. io.EOF is returned only when the
// input ends before a new frame starts.
func readTx(r io.Reader) (*app.Tx, int, error) {
	var header [txHeaderSize]byte
	n, err := io.ReadFull(r, header[:])
	if err != nil {
		return nil, n, err
	}
	raw := make([]byte, binary.BigEndian.Uint32(header[:]))
	m, err := io.ReadFull(r, raw)
	n += m
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, n, err
	}
	var tx app.Tx
	if err := tx.Unmarshal(raw); err != nil {
		return nil, n, err
	}
	return &tx, n, nil
}
