package stream

import "github.com/agnes1/TreeML/ir"

// TagCollector records the document tags, splitting "key::value" tags into
// a map. A later tag with the same key replaces an earlier one.
type TagCollector struct {
	Tags   []string
	Values map[string]string
}

func NewTagCollector() *TagCollector {
	return &TagCollector{Values: map[string]string{}}
}

func (c *TagCollector) Emit(e *Event) error {
	switch e.Type {
	case EventStart:
		c.Tags = nil
		c.Values = map[string]string{}
	case EventTag:
		c.Tags = append(c.Tags, e.Tag)
		if k, v, ok := ir.SplitTag(e.Tag); ok {
			c.Values[k] = v
		}
	}
	return nil
}

// Get returns the value of the tag with the given key.
func (c *TagCollector) Get(key string) (string, bool) {
	v, ok := c.Values[key]
	return v, ok
}
