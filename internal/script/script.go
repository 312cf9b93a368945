// Package script reads and writes YAML menu scripts: the title, paging
// policy, items and animations of one menu.
package script

import "github.com/ivlev/gridmenu/internal/visual"

// Script is the file form of one menu.
type Script struct {
	Version    string         `yaml:"version"`
	Title      string         `yaml:"title"`
	Pagination PaginationSpec `yaml:"pagination"`
	Items      []ItemSpec     `yaml:"items"`
	Animations Animations     `yaml:"animations,omitempty"`
}

// PaginationSpec configures paging and auto-flow placement.
type PaginationSpec struct {
	PageSize int           `yaml:"page_size,omitempty"`
	Iterator *IteratorSpec `yaml:"iterator,omitempty"`
}

// IteratorSpec mirrors iterator.Builder. Unset positions are omitted.
type IteratorSpec struct {
	Slot        *int   `yaml:"slot,omitempty"`
	Row         *int   `yaml:"row,omitempty"`
	Column      *int   `yaml:"column,omitempty"`
	End         *int   `yaml:"end,omitempty"`
	Orientation string `yaml:"orientation,omitempty"`
	Blacklist   []int  `yaml:"blacklist,omitempty"`
	Overwrite   bool   `yaml:"overwrite,omitempty"`
}

// ItemSpec is a stack placed on the menu. Items without a slot flow
// through the iterator.
type ItemSpec struct {
	visual.Stack `yaml:",inline"`
	Slot         *int `yaml:"slot,omitempty"`
	Page         int  `yaml:"page,omitempty"`
}

// Animations lists the animators started with the menu.
type Animations struct {
	Content  []ContentSpec `yaml:"content,omitempty"`
	Captions []CaptionSpec `yaml:"captions,omitempty"`
}

// Timing is shared by both animation kinds. Unit is one of ticks, ms, s, m.
type Timing struct {
	Period int    `yaml:"period,omitempty"`
	Delay  int    `yaml:"delay,omitempty"`
	Unit   string `yaml:"unit,omitempty"`
}

// ContentSpec describes a slot material animation. Item defaults to the
// item pinned at Slot on the first page. Copy names an earlier content
// animation to start from; frames listed here are appended to its frames.
// Loop left unset keeps the copied value.
type ContentSpec struct {
	ID        string            `yaml:"id,omitempty"`
	Copy      string            `yaml:"copy,omitempty"`
	Slot      *int              `yaml:"slot,omitempty"`
	Item      *visual.Stack     `yaml:"item,omitempty"`
	Frames    []string          `yaml:"frames,omitempty"`
	Materials map[string]string `yaml:"materials,omitempty"`
	Loop      *bool             `yaml:"loop,omitempty"`
	Timing    `yaml:",inline"`
}

// CaptionSpec describes a caption animation.
type CaptionSpec struct {
	ID     string               `yaml:"id,omitempty"`
	Copy   string               `yaml:"copy,omitempty"`
	Type   string               `yaml:"type,omitempty"`
	Frames []string             `yaml:"frames,omitempty"`
	Colors map[string]StyleSpec `yaml:"colors,omitempty"`
	Loop   *bool                `yaml:"loop,omitempty"`
	Timing `yaml:",inline"`
}

// StyleSpec is the file form of visual.Style. Color is a name such as
// "gold" or a single code character.
type StyleSpec struct {
	Color         string `yaml:"color,omitempty"`
	Bold          bool   `yaml:"bold,omitempty"`
	Underline     bool   `yaml:"underline,omitempty"`
	Italic        bool   `yaml:"italic,omitempty"`
	Obfuscated    bool   `yaml:"obfuscated,omitempty"`
	Strikethrough bool   `yaml:"strikethrough,omitempty"`
}
