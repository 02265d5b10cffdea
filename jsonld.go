package promptblog

import (
	"encoding/json"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const schemaContext = "https://schema.org"

// JSONLD is a schema.org object. Keys keep insertion order so "@context"
// and "@type" always lead the serialized script.
type JSONLD = *orderedmap.OrderedMap[string, any]

// ldNode returns a new object of the given @type followed by the key/value
// pairs in kv. Keys must be strings.
func ldNode(typ string, kv ...any) JSONLD {
	m := orderedmap.New[string, any]()
	if typ != "" {
		m.Set("@type", typ)
	}
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1])
	}
	return m
}

// ldDocument is ldNode with a leading @context, for top-level objects.
func ldDocument(typ string, kv ...any) JSONLD {
	m := orderedmap.New[string, any]()
	m.Set("@context", schemaContext)
	m.Set("@type", typ)
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1])
	}
	return m
}

// MarshalJSONLD serializes data for embedding in an application/ld+json
// script. "</" is escaped so the payload cannot close the script element.
func MarshalJSONLD(data JSONLD) (string, error) {
	if data == nil {
		return "{}", nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(b), "</", `<\/`), nil
}
