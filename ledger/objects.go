package ledger

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Methods of the read API.
const (
	MethodGetObject             = "sui_getObject"
	MethodGetDynamicFieldObject = "suix_getDynamicFieldObject"
)

// Error codes of object lookups.
const (
	CodeNotExists            = "notExists"
	CodeDynamicFieldNotFound = "dynamicFieldNotFound"
	DataTypeMoveObject       = "moveObject"
	DynamicFieldTypeAddress  = "address"
)

// ObjectOptions selects what sui_getObject returns.
type ObjectOptions struct {
	ShowContent bool `json:"showContent"`
}

// DynamicFieldName is the key of a dynamic field lookup.
type DynamicFieldName struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ObjectResponse is the result of an object lookup. Exactly one of Data and Error is set.
type ObjectResponse struct {
	Data  *ObjectData  `json:"data,omitempty"`
	Error *ObjectError `json:"error,omitempty"`
}

type ObjectError struct {
	Code     string `json:"code"`
	ObjectID string `json:"object_id,omitempty"`
}

type ObjectData struct {
	ObjectID string       `json:"objectId"`
	Version  string       `json:"version"`
	Digest   string       `json:"digest,omitempty"`
	Type     string       `json:"type,omitempty"`
	Content  *MoveContent `json:"content,omitempty"`
}

type MoveContent struct {
	DataType string          `json:"dataType"`
	Type     string          `json:"type"`
	Fields   json.RawMessage `json:"fields"`
}

// PollFields are the fields of a poll object.
type PollFields struct {
	Question   string     `json:"question"`
	Options    []string   `json:"options"`
	VoteCounts []U64      `json:"vote_counts"`
	Voters     TableField `json:"voters"`
}

// TableField is a nested table whose entries are dynamic fields of ID.
type TableField struct {
	Type   string      `json:"type"`
	Fields TableFields `json:"fields"`
}

type TableFields struct {
	ID   UID `json:"id"`
	Size U64 `json:"size"`
}

type UID struct {
	ID string `json:"id"`
}

// U64 is a u64 rendered as a decimal string, as large integers are on the wire.
// Plain JSON numbers are accepted too.
type U64 uint64

func (u U64) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(u), 10))
}

func (u *U64) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n uint64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("u64: %s", data)
		}
		*u = U64(n)
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("u64: %w", err)
	}
	*u = U64(n)
	return nil
}
