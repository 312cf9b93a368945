package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/gridmenu/internal/scheduler"
	"github.com/ivlev/gridmenu/internal/slot"
)

// ErrInvalidScript wraps every problem found by Validate.
var ErrInvalidScript = errors.New("invalid menu script")

// WriteScript validates s and writes it to path.
func WriteScript(s *Script, path string) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return os.WriteFile(path, data, 0644)
}

// ReadScript decodes the menu at path and validates it.
func ReadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

// Validate checks what can be checked without building anything: slot and
// page ranges, timing, and that every copy names an earlier animation of the
// same kind. All problems are reported together.
func (s *Script) Validate() error {
	var errs []error
	if s.Pagination.PageSize < 0 {
		errs = append(errs, fmt.Errorf("page_size %d is negative", s.Pagination.PageSize))
	}
	if it := s.Pagination.Iterator; it != nil {
		for _, p := range []*int{it.Slot, it.End} {
			if p != nil && (*p < 0 || *p > slot.Count) {
				errs = append(errs, fmt.Errorf("iterator position %d is off the grid", *p))
			}
		}
	}
	for i, item := range s.Items {
		if item.Material == "" {
			errs = append(errs, fmt.Errorf("item %d has no material", i))
		}
		if item.Slot != nil {
			if err := slot.Check(*item.Slot); err != nil {
				errs = append(errs, fmt.Errorf("item %d: %w", i, err))
			}
		}
		if item.Page < 0 {
			errs = append(errs, fmt.Errorf("item %d: page %d is negative", i, item.Page))
		}
	}

	ids := make(map[string]bool)
	for i, c := range s.Animations.Content {
		errs = append(errs, checkAnimation("content", i, c.ID, c.Copy, c.Timing, ids)...)
		if c.Slot != nil {
			if err := slot.Check(*c.Slot); err != nil {
				errs = append(errs, fmt.Errorf("content animation %d: %w", i, err))
			}
		}
	}
	ids = make(map[string]bool)
	for i, c := range s.Animations.Captions {
		errs = append(errs, checkAnimation("caption", i, c.ID, c.Copy, c.Timing, ids)...)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidScript, errors.Join(errs...))
}

func checkAnimation(kind string, i int, id, copyOf string, t Timing, ids map[string]bool) []error {
	var errs []error
	if copyOf != "" && !ids[copyOf] {
		errs = append(errs, fmt.Errorf("%s animation %d copies unknown %q", kind, i, copyOf))
	}
	if id != "" {
		if ids[id] {
			errs = append(errs, fmt.Errorf("%s animation %d: duplicate id %q", kind, i, id))
		}
		ids[id] = true
	}
	if t.Period < 0 || t.Delay < 0 {
		errs = append(errs, fmt.Errorf("%s animation %d: negative timing", kind, i))
	}
	if _, err := scheduler.ParseTimeUnit(t.Unit); err != nil {
		errs = append(errs, fmt.Errorf("%s animation %d: %w", kind, i, err))
	}
	return errs
}
