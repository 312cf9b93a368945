// Package visual defines the values written to a surface: slot stacks and
// styled caption text.
package visual

// Material names the look of a slot, e.g. "DIAMOND" or "RED_STAINED_GLASS".
type Material string

// Air is the material of an empty slot.
const Air Material = "AIR"

// Stack is the concrete value shown in one slot.
type Stack struct {
	Material Material `yaml:"material"`
	Amount   int      `yaml:"amount,omitempty"`
	Name     string   `yaml:"name,omitempty"`
	Lore     []string `yaml:"lore,omitempty"`
}

// Render makes Stack an Item of itself.
func (s Stack) Render() Stack {
	return s
}

// WithMaterial returns a copy of s showing material m.
func (s Stack) WithMaterial(m Material) Stack {
	c := s
	c.Lore = append([]string(nil), s.Lore...)
	c.Material = m
	return c
}

// Empty reports whether the stack shows nothing.
func (s Stack) Empty() bool {
	return s.Material == "" || s.Material == Air
}

// Item is an opaque payload that can be rendered into a Stack.
type Item interface {
	Render() Stack
}
