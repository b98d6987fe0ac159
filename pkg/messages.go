package pkg

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Wire schema of the move-search service. Unknown keys in a response are
// ignored; missing required keys are an error.

type MessageType int

const (
	TypeBestMoveRequest MessageType = iota
	TypeBestMoveResponse
	TypeErrorResponse
)

func (m MessageType) String() string {
	switch m {
	case TypeBestMoveRequest:
		return "TypeBestMoveRequest"
	case TypeBestMoveResponse:
		return "TypeBestMoveResponse"
	case TypeErrorResponse:
		return "TypeErrorResponse"
	default:
		return "Unknown MessageType"
	}
}

type MessageInterface interface {
	Type() MessageType
}

var validate = validator.New()

// BestMoveRequest asks for the reply to fen, searched depth plies deep.
type BestMoveRequest struct {
	Fen   string `json:"fen" validate:"required"`
	Depth int    `json:"depth" validate:"min=1"`
}

func (m BestMoveRequest) Type() MessageType {
	return TypeBestMoveRequest
}

// BestMoveResponse is the position after the engine's reply.
type BestMoveResponse struct {
	Fen string `json:"fen" validate:"required"`
}

func (m BestMoveResponse) Type() MessageType {
	return TypeBestMoveResponse
}

// UnmarshalJSON reads the "fen" key only. encoding/json would also accept
// "FEN" or "Fen".
func (m *BestMoveResponse) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	m.Fen = ""
	if raw, ok := fields["fen"]; ok {
		return json.Unmarshal(raw, &m.Fen)
	}
	return nil
}

// ErrorResponse is the body the service may send along a failure status.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (m ErrorResponse) Type() MessageType {
	return TypeErrorResponse
}

// Encode validates m before marshalling it.
func Encode(m MessageInterface) ([]byte, error) {
	if err := validate.Struct(m); err != nil {
		return nil, fmt.Errorf("%s: %w", m.Type(), err)
	}
	return json.Marshal(m)
}

// Decode unmarshals data into m and validates the result.
func Decode(data []byte, m MessageInterface) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("%s: %w", m.Type(), err)
	}
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("%s: %w", m.Type(), err)
	}
	return nil
}
