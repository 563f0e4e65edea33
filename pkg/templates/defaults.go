package templates

// Grid placeholders appear in horizontal templates and are replaced with
// column classes when a horizontal form is opened.
const (
	GridLeft   = "{{grid.left}}"
	GridMiddle = "{{grid.middle}}"
	GridRight  = "{{grid.right}}"
	GridOffset = "{{grid.offset}}"
)

// Alignment set names.
const (
	SetDefault    = "default"
	SetHorizontal = "horizontal"
	SetInline     = "inline"
)

// Base returns the Bootstrap 4 base template set.
func Base() Set {
	return Set{
		"button":                `<button{{attrs}}>{{text}}</button>`,
		"checkbox":              `<input type="checkbox" name="{{name}}" value="{{value}}"{{attrs}}>`,
		"checkboxFormGroup":     `{{input}}{{label}}`,
		"checkboxLabel":         `<label{{attrs}}>{{text}}{{tooltip}}</label>`,
		"checkboxWrapper":       `<div class="form-check">{{label}}</div>`,
		"checkboxInlineWrapper": `<div class="form-check form-check-inline">{{label}}</div>`,
		"checkboxContainer": `<div{{containerAttrs}} class="{{containerClass}}form-group form-check{{variant}} {{type}}{{required}}">` +
			`{{content}}{{help}}</div>`,
		"checkboxContainerError": `<div{{containerAttrs}} class="{{containerClass}}form-group form-check{{variant}} {{formGroupPosition}}{{type}}{{required}} is-invalid">` +
			`{{content}}{{error}}{{help}}</div>`,
		"checkboxInlineContainer": `<div{{containerAttrs}} class="{{containerClass}}form-check{{variant}} form-check-inline align-top {{type}}{{required}}">` +
			`{{content}}{{help}}</div>`,
		"checkboxInlineContainerError": `<div{{containerAttrs}} class="{{containerClass}}form-check{{variant}} form-check-inline align-top {{formGroupPosition}}{{type}}{{required}} is-invalid">` +
			`{{content}}{{error}}{{help}}</div>`,
		"customCheckboxContainer": `<div{{containerAttrs}} class="{{containerClass}}form-group custom-control custom-checkbox {{type}}{{required}}">` +
			`{{content}}{{help}}</div>`,
		"customCheckboxContainerError": `<div{{containerAttrs}} class="{{containerClass}}form-group custom-control custom-checkbox {{formGroupPosition}}{{type}}{{required}} is-invalid">` +
			`{{content}}{{error}}{{help}}</div>`,
		"customCheckboxInlineContainer": `<div{{containerAttrs}} class="{{containerClass}}form-group custom-control custom-checkbox custom-control-inline {{type}}{{required}}">` +
			`{{content}}{{help}}</div>`,
		"customCheckboxInlineContainerError": `<div{{containerAttrs}} class="{{containerClass}}form-group custom-control custom-checkbox custom-control-inline {{formGroupPosition}}{{type}}{{required}} is-invalid">` +
			`{{content}}{{error}}{{help}}</div>`,
		"customCheckboxWrapper":         `<div class="custom-control custom-checkbox">{{label}}</div>`,
		"customCheckboxInlineWrapper":   `<div class="custom-control custom-checkbox custom-control-inline">{{label}}</div>`,
		"customRadioWrapper":            `<div class="custom-control custom-radio">{{label}}</div>`,
		"customRadioInlineWrapper":      `<div class="custom-control custom-radio custom-control-inline">{{label}}</div>`,
		"customFileLabel":               `<label{{attrs}}>{{text}}{{tooltip}}</label>`,
		"customFileFormGroup":           `<div class="custom-file">{{input}}{{label}}</div>`,
		"customFileInputGroupFormGroup": `{{input}}`,
		"customFileInputGroupContainer": `<div{{attrs}}>{{prepend}}<div class="custom-file">{{content}}{{label}}</div>{{append}}</div>`,
		"datetimeContainer": `<div{{containerAttrs}} class="{{containerClass}}form-group {{type}}{{required}}" role="group" aria-labelledby="{{groupId}}">` +
			`{{content}}{{help}}</div>`,
		"datetimeContainerError": `<div{{containerAttrs}} class="{{containerClass}}form-group {{formGroupPosition}}{{type}}{{required}} is-invalid" role="group" aria-labelledby="{{groupId}}">` +
			`{{content}}{{error}}{{help}}</div>`,
		"datetimeLabel":          `<label{{attrs}}>{{text}}{{tooltip}}</label>`,
		"dateWidget":             `{{year}}{{month}}{{day}}{{hour}}{{minute}}{{second}}{{meridian}}`,
		"dateWidgetPart":         `<select name="{{name}}" data-part="{{part}}"{{attrs}}>{{content}}</select>`,
		"elementWrapper":         `{{content}}`,
		"error":                  `<div class="invalid-feedback">{{content}}</div>`,
		"errorTooltip":           `<div class="invalid-tooltip">{{content}}</div>`,
		"errorList":              `<ul>{{content}}</ul>`,
		"errorItem":              `<li>{{text}}</li>`,
		"file":                   `<input type="file" name="{{name}}"{{attrs}}>`,
		"floatingLabel":          `<label{{attrs}}>{{text}}{{tooltip}}</label>`,
		"formStart":              `<form{{attrs}}>`,
		"formEnd":                `</form>`,
		"formErrors":             `<div class="alert alert-danger" role="alert">{{content}}</div>`,
		"formGroup":              `{{label}}{{input}}`,
		"formGroupFloatingLabel": `{{input}}{{label}}`,
		"help":                   `<small{{attrs}}>{{content}}</small>`,
		"hiddenBlock":            `<div style="display:none;">{{content}}</div>`,
		"input":                  `<input type="{{type}}" name="{{name}}"{{attrs}}>`,
		"inputSubmit":            `<input type="{{type}}"{{attrs}}>`,
		"inputContainer":         `<div{{containerAttrs}} class="{{containerClass}}form-group {{type}}{{required}}">{{content}}{{help}}</div>`,
		"inputContainerError": `<div{{containerAttrs}} class="{{containerClass}}form-group {{formGroupPosition}}{{type}}{{required}} is-invalid">` +
			`{{content}}{{error}}{{help}}</div>`,
		"inputGroupContainer": `<div{{attrs}}>{{prepend}}{{content}}{{append}}</div>`,
		"inputGroupAddon":     `<div class="{{class}}">{{content}}</div>`,
		"inputGroupText":      `<span class="input-group-text">{{content}}</span>`,
		"label":               `<label{{attrs}}>{{text}}{{tooltip}}</label>`,
		"legend":              `<legend>{{text}}</legend>`,
		"multicheckboxContainer": `<div{{containerAttrs}} class="{{containerClass}}form-group {{type}}{{required}}" role="group" aria-labelledby="{{groupId}}">` +
			`{{content}}{{help}}</div>`,
		"multicheckboxContainerError": `<div{{containerAttrs}} class="{{containerClass}}form-group {{formGroupPosition}}{{type}}{{required}} is-invalid" role="group" aria-labelledby="{{groupId}}">` +
			`{{content}}{{error}}{{help}}</div>`,
		"multicheckboxLabel":      `<label{{attrs}}>{{text}}{{tooltip}}</label>`,
		"multicheckboxWrapper":    `<fieldset class="form-group">{{content}}</fieldset>`,
		"multicheckboxTitle":      `<legend class="col-form-label pt-0">{{text}}</legend>`,
		"nestingLabel":            `{{hidden}}{{input}}<label{{attrs}}>{{text}}{{tooltip}}</label>`,
		"nestingLabelNestedInput": `{{hidden}}<label{{attrs}}>{{input}}{{text}}{{tooltip}}</label>`,
		"option":                  `<option value="{{value}}"{{attrs}}>{{text}}</option>`,
		"optgroup":                `<optgroup label="{{label}}"{{attrs}}>{{content}}</optgroup>`,
		"radio":                   `<input type="radio" name="{{name}}" value="{{value}}"{{attrs}}>`,
		"radioContainer": `<div{{containerAttrs}} class="{{containerClass}}form-group {{type}}{{required}}" role="group" aria-labelledby="{{groupId}}">` +
			`{{content}}{{help}}</div>`,
		"radioContainerError": `<div{{containerAttrs}} class="{{containerClass}}form-group {{formGroupPosition}}{{type}}{{required}} is-invalid" role="group" aria-labelledby="{{groupId}}">` +
			`{{content}}{{error}}{{help}}</div>`,
		"radioLabel":         `<label{{attrs}}>{{text}}{{tooltip}}</label>`,
		"radioWrapper":       `<div class="form-check">{{label}}</div>`,
		"radioInlineWrapper": `<div class="form-check form-check-inline">{{label}}</div>`,
		"select":             `<select name="{{name}}"{{attrs}}>{{content}}</select>`,
		"selectMultiple":     `<select name="{{name}}[]" multiple="multiple"{{attrs}}>{{content}}</select>`,
		"staticControl":      `<p{{attrs}}>{{content}}</p>`,
		"submitContainer":    `<div{{containerAttrs}} class="{{containerClass}}submit">{{content}}</div>`,
		"textarea":           `<textarea name="{{name}}"{{attrs}}>{{value}}</textarea>`,
		"tooltip":            `<span data-toggle="tooltip" title="{{content}}" class="fas fa-info-circle"></span>`,
	}
}

// Inline returns the overrides applied to inline forms.
func Inline() Set {
	return Set{
		"elementWrapper": `<div class="col-auto">{{content}}</div>`,
		"checkboxInlineContainer": `<div{{containerAttrs}} class="{{containerClass}}form-check{{variant}} {{type}}{{required}}">` +
			`{{content}}{{help}}</div>`,
		"checkboxInlineContainerError": `<div{{containerAttrs}} class="{{containerClass}}form-check{{variant}} {{formGroupPosition}}{{type}}{{required}} is-invalid">` +
			`{{content}}{{error}}{{help}}</div>`,
		"datetimeContainer": `<div{{containerAttrs}} class="{{containerClass}}form-group {{formGroupPosition}}{{type}}{{required}}">` +
			`{{content}}{{help}}</div>`,
		"datetimeContainerError": `<div{{containerAttrs}} class="{{containerClass}}form-group {{formGroupPosition}}{{type}}{{required}} is-invalid">` +
			`{{content}}{{error}}{{help}}</div>`,
		"datetimeLabel": `<label{{attrs}}>{{text}}{{tooltip}}</label>`,
		"radioContainer": `<div{{containerAttrs}} class="{{containerClass}}form-group {{formGroupPosition}}{{type}}{{required}}" role="group" aria-labelledby="{{groupId}}">` +
			`{{content}}{{help}}</div>`,
		"radioContainerError": `<div{{containerAttrs}} class="{{containerClass}}form-group {{formGroupPosition}}{{type}}{{required}} is-invalid" role="group" aria-labelledby="{{groupId}}">` +
			`{{content}}{{error}}{{help}}</div>`,
		"radioLabel": `<span{{attrs}}>{{text}}{{tooltip}}</span>`,
		"multicheckboxContainer": `<div{{containerAttrs}} class="{{containerClass}}form-group d-flex {{formGroupPosition}}{{type}}{{required}}" role="group" aria-labelledby="{{groupId}}">` +
			`{{content}}{{help}}</div>`,
		"multicheckboxContainerError": `<div{{containerAttrs}} class="{{containerClass}}form-group d-flex {{formGroupPosition}}{{type}}{{required}} is-invalid" role="group" aria-labelledby="{{groupId}}">` +
			`{{content}}{{error}}{{help}}</div>`,
		"multicheckboxLabel":   `<span{{attrs}}>{{text}}{{tooltip}}</span>`,
		"multicheckboxWrapper": `<fieldset class="form-group">{{content}}</fieldset>`,
		"multicheckboxTitle":   `<legend class="col-form-label float-none pt-0">{{text}}</legend>`,
	}
}

// Horizontal returns the overrides applied to horizontal forms. Labels use
// labelAttrs/labelClass so the grid classes can be merged into a single class
// attribute.
func Horizontal() Set {
	return Set{
		"label":                         `<label{{labelAttrs}} class="{{labelClass}}col-form-label ` + GridLeft + `">{{text}}{{tooltip}}</label>`,
		"fileLabel":                     `<label{{labelAttrs}} class="{{labelClass}}col-form-label pt-1 ` + GridLeft + `">{{text}}{{tooltip}}</label>`,
		"datetimeLabel":                 `<label{{labelAttrs}} class="{{labelClass}}col-form-label pt-1 ` + GridLeft + `">{{text}}{{tooltip}}</label>`,
		"radioLabel":                    `<label{{labelAttrs}} class="{{labelClass}}col-form-label pt-0 ` + GridLeft + `">{{text}}{{tooltip}}</label>`,
		"multicheckboxLabel":            `<label{{labelAttrs}} class="{{labelClass}}col-form-label pt-0 ` + GridLeft + `">{{text}}{{tooltip}}</label>`,
		"formGroup":                     `{{label}}<div class="` + GridMiddle + `">{{input}}{{error}}{{help}}</div>`,
		"formGroupFloatingLabel":        `<div class="` + GridOffset + ` form-floating">{{input}}{{label}}{{error}}{{help}}</div>`,
		"checkboxFormGroup":             `<div class="` + GridOffset + `"><div class="form-check{{variant}}">{{input}}{{label}}{{error}}{{help}}</div></div>`,
		"checkboxInlineFormGroup":       `<div class="` + GridOffset + `"><div class="form-check{{variant}} form-check-inline">{{input}}{{label}}</div></div>`,
		"customCheckboxFormGroup":       `<div class="` + GridOffset + `"><div class="custom-control custom-checkbox">{{input}}{{label}}{{error}}{{help}}</div></div>`,
		"customFileFormGroup":           `<div class="` + GridOffset + `"><div class="custom-file">{{input}}{{label}}</div>{{error}}{{help}}</div>`,
		"customFileInputGroupFormGroup": `<div class="` + GridOffset + `">{{input}}{{error}}{{help}}</div>`,
		"submitContainer":               `<div{{containerAttrs}} class="{{containerClass}}form-group row"><div class="` + GridOffset + `">{{content}}</div></div>`,
		"inputContainer":                `<div{{containerAttrs}} class="{{containerClass}}form-group row {{type}}{{required}}">{{content}}</div>`,
		"inputContainerError":           `<div{{containerAttrs}} class="{{containerClass}}form-group row {{formGroupPosition}}{{type}}{{required}} is-invalid">{{content}}</div>`,
		"checkboxContainer":             `<div{{containerAttrs}} class="{{containerClass}}form-group row {{type}}{{required}}">{{content}}</div>`,
		"checkboxContainerError":        `<div{{containerAttrs}} class="{{containerClass}}form-group row {{formGroupPosition}}{{type}}{{required}} is-invalid">{{content}}</div>`,
		"customCheckboxContainer":       `<div{{containerAttrs}} class="{{containerClass}}form-group row {{type}}{{required}}">{{content}}</div>`,
		"customCheckboxContainerError":  `<div{{containerAttrs}} class="{{containerClass}}form-group row {{formGroupPosition}}{{type}}{{required}} is-invalid">{{content}}</div>`,
		"datetimeContainer":             `<div{{containerAttrs}} class="{{containerClass}}form-group row {{type}}{{required}}" role="group" aria-labelledby="{{groupId}}">{{content}}</div>`,
		"datetimeContainerError":        `<div{{containerAttrs}} class="{{containerClass}}form-group row {{formGroupPosition}}{{type}}{{required}} is-invalid" role="group" aria-labelledby="{{groupId}}">{{content}}</div>`,
		"radioContainer":                `<div{{containerAttrs}} class="{{containerClass}}form-group row {{type}}{{required}}" role="group" aria-labelledby="{{groupId}}">{{content}}</div>`,
		"radioContainerError":           `<div{{containerAttrs}} class="{{containerClass}}form-group row {{formGroupPosition}}{{type}}{{required}} is-invalid" role="group" aria-labelledby="{{groupId}}">{{content}}</div>`,
		"multicheckboxContainer":        `<div{{containerAttrs}} class="{{containerClass}}form-group row {{type}}{{required}}" role="group" aria-labelledby="{{groupId}}">{{content}}</div>`,
		"multicheckboxContainerError":   `<div{{containerAttrs}} class="{{containerClass}}form-group row {{formGroupPosition}}{{type}}{{required}} is-invalid" role="group" aria-labelledby="{{groupId}}">{{content}}</div>`,
	}
}

// Alignments returns the built-in alignment override sets keyed by mode name.
func Alignments() map[string]Set {
	return map[string]Set{
		SetDefault:    {},
		SetInline:     Inline(),
		SetHorizontal: Horizontal(),
	}
}
