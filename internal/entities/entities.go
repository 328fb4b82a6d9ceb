package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrDonationUnavailable = errors.New("donation is not available")
	ErrAssignmentNotFound  = errors.New("delivery assignment not found")
	ErrInvalidPayload      = errors.New("invalid cached payload")
)

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unmarshal(data []byte, v any) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(v); err != nil {
		return errors.Join(ErrInvalidPayload, err)
	}
	return nil
}

func init() {
	gob.Register(Session{})
	gob.Register(CartSnapshot{})
	gob.Register(CartLine{})
	gob.Register(DeliveryAssignment{})
}
