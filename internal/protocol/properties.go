package protocol

import "strconv"

// NewProperty creates a string property.
func NewProperty(key, value string) Property {
	return Property{Key: key, Value: value}
}

// NewIntProperty creates a property with a decimal-formatted value.
func NewIntProperty(key string, v int) Property {
	return Property{Key: key, Value: strconv.Itoa(v)}
}

// Lookup returns the value of the first property with the given key.
func (c Command) Lookup(key string) (string, bool) {
	for _, p := range c.Properties {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}
