package stripedomain

import (
	"bytes"
	"encoding/json"
)

// ExpandableID aceita tanto o id em texto quanto o objeto expandido
type ExpandableID string

func (e *ExpandableID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*e = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*e = ExpandableID(id)
		return nil
	}

	var obj Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*e = ExpandableID(obj.ID)
	return nil
}
