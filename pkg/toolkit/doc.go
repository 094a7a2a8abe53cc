// Package toolkit holds the concrete controls that registered widget tags
// render to.
//
// Every control is a widget.ComponentFunc driven by a props map. Native
// callbacks use camelCase props (onClick, onChange, onClose, onBlur) holding
// Go funcs; the control binds them to the lowercase DOM handler props
// (onclick, oninput, onchange, onblur) of the elements it renders. A control
// knows nothing about dispatch: the decorators in package dispatch supply
// the native callbacks.
//
// Group containers (CheckboxGroup, RadioGroup, ChipGroup, SwitchGroup, Tabs)
// own their selection state. They mark the item controls among their
// descendants as checked or active and route each item's DOM handler into
// the container's own onChange.
package toolkit
