package callback

import (
	"net/url"
	"strings"
)

// decodeQuery decodes a raw query keeping first-seen name order, a repeated
// name takes the last value. Pairs with invalid escapes are skipped.
func decodeQuery(rawQuery string) Parameters {
	var result Parameters
	var index map[string]int
	for rawQuery != "" {
		var pair string
		pair, rawQuery, _ = strings.Cut(rawQuery, "&")
		if pair == "" {
			continue
		}
		rawName, rawValue, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(rawName)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}
		if index == nil {
			index = map[string]int{}
		}
		if pos, ok := index[name]; ok {
			result[pos].Value = value
			continue
		}
		index[name] = len(result)
		result = append(result, Parameter{Name: name, Value: value})
	}
	return result
}
