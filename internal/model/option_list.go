package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// OptionList is the canonical storage form of a question's options: a JSON
// array written once at authoring time. Reads never re-derive the format.
type OptionList []string

func (o OptionList) Value() (driver.Value, error) {
	if o == nil {
		o = OptionList{}
	}
	return json.Marshal([]string(o))
}

func (o *OptionList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*o = nil
		return nil
	case []byte:
		return json.Unmarshal(v, (*[]string)(o))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(o))
	default:
		return fmt.Errorf("unsupported options column type %T", value)
	}
}

func (OptionList) GormDataType() string {
	return "jsonb"
}
