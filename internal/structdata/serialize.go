package structdata

import (
	"encoding/json"

	"git.home.luguber.info/inful/storyrender/internal/errors"
)

// Serialize encodes a schema value as compact JSON suitable for embedding
// verbatim in a linked-data script block.
func Serialize(s Schema) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, errors.SeverityFatal, "schema serialization failed")
	}
	return string(data), nil
}

// Parse is the inverse of Serialize: it decodes a serialized graph back into
// its concrete schema value, dispatching on the @type tag. Parsing the output
// of Serialize reproduces a value deep-equal to the input.
func Parse(data string) (Schema, error) {
	var probe struct {
		Type string `json:"@type"`
	}
	if err := json.Unmarshal([]byte(data), &probe); err != nil {
		return nil, errors.ContentDecodeError(err)
	}

	switch probe.Type {
	case TypePerson:
		return decodeInto[Person](data)
	case TypeWebSite:
		return decodeInto[WebSite](data)
	case TypeBlogPosting:
		return decodeInto[BlogPosting](data)
	case TypeBreadcrumbList:
		return decodeInto[BreadcrumbList](data)
	default:
		return nil, errors.New(errors.CategoryContent, errors.SeverityFatal, "unknown schema type").
			WithContext("type", probe.Type)
	}
}

func decodeInto[T Schema](data string) (Schema, error) {
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, errors.ContentDecodeError(err)
	}
	return v, nil
}
