package form

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/formstate/pkg/logger"
)

// HandleChange stores raw as the value of field and starts a validation pass.
// For checkbox inputs the checked state is stored as a bool.
// Unknown fields are added.
func (c *Controller) HandleChange(field string, raw any, kind InputKind) {
	value := raw
	if kind == InputCheckbox {
		value = checkedState(raw)
	}
	c.mutate("change", field, func() {
		c.values[field] = value
	})
}

// HandleBlur marks field as touched and starts a validation pass.
func (c *Controller) HandleBlur(field string) {
	c.mutate("blur", field, func() {
		c.touched[field] = true
	})
}

// SetFieldValue stores value, marks field as touched and starts a validation pass.
func (c *Controller) SetFieldValue(field string, value any) {
	c.mutate("set", field, func() {
		c.values[field] = value
		c.touched[field] = true
	})
}

// Reset restores the initial values and clears touched and errors.
// The submitting flag is left alone. Validation passes still running are
// superseded and will not be applied.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.values = cloneValues(c.initial)
	c.touched = Touched{}
	c.errors = Errors{}
	c.revision++
	c.applied = c.revision
	rev := c.revision
	c.persistLocked()
	c.mu.Unlock()

	c.log.Debug("form reset", logger.Revision(rev))
}

func (c *Controller) mutate(event, field string, fn func()) {
	c.mu.Lock()
	fn()
	c.revision++
	rev := c.revision
	snapshot := cloneValues(c.values)
	c.persistLocked()
	c.mu.Unlock()

	c.log.Debug("form event", logger.Event(event), logger.Field(field), logger.Revision(rev))
	c.startPass(rev, snapshot)
}

func checkedState(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if s == "on" || s == "checked" {
			return true
		}
		b, err := strconv.ParseBool(s)
		return err == nil && b
	default:
		return false
	}
}
