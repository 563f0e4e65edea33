package form

import (
	"github.com/goliatone/go-formhelper/internal/inflect"
	"github.com/goliatone/go-formhelper/pkg/attrs"
	"github.com/goliatone/go-formhelper/pkg/formctx"
	"github.com/goliatone/go-formhelper/pkg/layout"
	"github.com/goliatone/go-formhelper/pkg/widgets"
)

// resolveControl decides, from the control type and the form alignment, the
// template aliases, injected classes and structural flags of a control. It
// works on copies and never renders.
func resolveControl(c control, st layout.State) control {
	c.input = c.input.Clone()
	if c.label != nil {
		label := *c.label
		label.attrs = label.attrs.Clone()
		c.label = &label
	}
	c.aliases = append([]alias(nil), c.aliases...)
	inlineScope := st.Is(layout.ModeInline)
	horizontal := st.Is(layout.ModeHorizontal)
	c.inline = boolOr(c.opts.Inline, false) || inlineScope

	switch {
	case widgets.IsDatetimeType(c.kind):
		resolveDatetime(&c)
	case c.kind == "checkbox":
		resolveCheckbox(&c, horizontal)
	case c.kind == "radio":
		resolveRadio(&c)
	case c.kind == "select" && c.opts.Multiple == MultipleCheckbox:
		resolveMultiCheckbox(&c)
	case c.kind == "select":
		if c.custom {
			c.injectFormControl = false
			attrs.InjectClasses(c.input, "custom-select")
		}
	case c.kind == "file":
		resolveFile(&c, horizontal)
	case c.kind == widgets.WidgetStatic:
		c.required = false
		c.hiddenField = boolOr(c.opts.HiddenField, true)
	case c.kind == "range":
		if c.custom {
			c.injectFormControl = false
			attrs.InjectClasses(c.input, "custom-range")
		}
	}
	return c
}

func groupLabelID(field string) string {
	return formctx.DomID(field + "-group-label")
}

func resolveDatetime(c *control) {
	if c.kind == "datetime" && len(c.opts.Parts) == 0 {
		c.kind = widgets.NativeType(c.kind)
	}
	if c.kind == "time" && len(c.opts.Parts) == 0 {
		c.input.SetDefault("step", "1")
	}
	c.groupLabel = true
	c.setVar("groupId", groupLabelID(c.field))
	c.alias("label", "datetimeLabel")
	c.alias("select", "dateWidgetPart")
	c.alias("inputContainer", "datetimeContainer")
	c.alias("inputContainerError", "datetimeContainerError")
}

func resolveCheckbox(c *control, horizontal bool) {
	prefix := "form-check"
	if c.custom {
		prefix = "custom-control"
	}
	attrs.InjectClasses(c.input, prefix+"-input")
	if c.label != nil {
		attrs.InjectClasses(c.label.attrs, prefix+"-label")
	}
	c.alias("label", "checkboxLabel")
	c.hiddenField = boolOr(c.opts.HiddenField, true)

	if c.custom {
		if horizontal {
			c.alias("checkboxFormGroup", "customCheckboxFormGroup")
		} else {
			c.alias("checkboxContainer", "customCheckboxContainer")
			c.alias("checkboxContainerError", "customCheckboxContainerError")
		}
	}
	if horizontal {
		c.inline = false
	}
	if c.inline {
		if c.custom {
			c.alias("checkboxContainer", "customCheckboxInlineContainer")
			c.alias("checkboxContainerError", "customCheckboxInlineContainerError")
		} else {
			c.alias("checkboxContainer", "checkboxInlineContainer")
			c.alias("checkboxContainerError", "checkboxInlineContainerError")
		}
	}
}

func resolveRadio(c *control) {
	prefix := "form-check"
	wrapper := "radioWrapper"
	if c.custom {
		prefix = "custom-control"
		wrapper = "customRadioWrapper"
	}
	if c.inline {
		wrapper = "radioInlineWrapper"
		if c.custom {
			wrapper = "customRadioInlineWrapper"
		}
	}
	attrs.InjectClasses(c.input, prefix+"-input")
	c.itemLabelAttrs = attrs.InjectClasses(nil, prefix+"-label")
	c.itemWrapper = wrapper
	c.hiddenField = boolOr(c.opts.HiddenField, true)
	c.groupLabel = true
	c.setVar("groupId", groupLabelID(c.field))
	c.alias("label", "radioLabel")
}

func resolveMultiCheckbox(c *control) {
	c.kind = "multicheckbox"
	c.widget = widgets.WidgetMultiCheckbox
	prefix := "form-check"
	wrapper := "checkboxWrapper"
	if c.custom {
		prefix = "custom-control"
		wrapper = "customCheckboxWrapper"
	}
	if c.inline {
		wrapper = "checkboxInlineWrapper"
		if c.custom {
			wrapper = "customCheckboxInlineWrapper"
		}
	}
	attrs.InjectClasses(c.input, prefix+"-input")
	c.itemLabelAttrs = attrs.InjectClasses(nil, prefix+"-label")
	c.itemWrapper = wrapper
	c.hiddenField = boolOr(c.opts.HiddenField, true)
	c.groupLabel = true
	c.setVar("groupId", groupLabelID(c.field))
	c.alias("label", "multicheckboxLabel")
}

func resolveFile(c *control, horizontal bool) {
	if !c.custom {
		if horizontal {
			c.alias("label", "fileLabel")
		}
		return
	}
	if c.label != nil {
		attrs.InjectClasses(c.label.attrs, "custom-file-label")
	}
	c.alias("label", "customFileLabel")
	c.alias("formGroup", "customFileFormGroup")

	if len(c.opts.Prepend) == 0 && len(c.opts.Append) == 0 {
		return
	}
	if c.opts.Label == nil || !c.opts.Label.Disabled {
		label := c.label
		if label == nil {
			label = &labelState{attrs: attrs.InjectClasses(nil, "custom-file-label"), escape: true}
		}
		if c.opts.Label == nil || c.opts.Label.Text == "" {
			label.text = inflect.Label(c.field)
		}
		c.inputGroupLabel = label
	}
	c.label = nil
	c.alias("formGroup", "customFileInputGroupFormGroup")
	c.alias("inputGroupContainer", "customFileInputGroupContainer")
}
