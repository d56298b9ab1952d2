package utils

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson indenta o valor com dois espaços; []byte é tratado como JSON já serializado
func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			fmt.Println(err)
			return string(raw)
		}
		in = decoded
	}

	out, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		fmt.Println(err)
		return ""
	}

	return string(out)
}
